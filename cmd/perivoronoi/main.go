// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command perivoronoi generates a periodic Voronoi mesh of a rectangular
// domain and writes it as two tab-separated relations: nodes (id, x, y) and
// edges (id, node1, node2).
package main

import (
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/2dChan/perivoronoi"
)

func main() {
	var (
		lx          = flag.Float64("lx", 2, "domain width")
		ly          = flag.Float64("ly", 1, "domain height")
		n           = flag.Int("n", 64, "number of sites")
		delta       = flag.Float64("delta", 0.8, "spacing ratio (lower packs tighter)")
		maxAttempts = flag.Int("max-attempts", 100000, "sampler rejection budget")
		seed        = flag.Int64("seed", 0, "random seed for site sampling")
		nodePath    = flag.String("nodes", "nodes.txt", "output path of the node relation")
		edgePath    = flag.String("edges", "edges.txt", "output path of the edge relation")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := perivoronoi.Config{
		Lx:          *lx,
		Ly:          *ly,
		N:           *n,
		Delta:       *delta,
		MaxAttempts: *maxAttempts,
	}

	start := time.Now()
	mesh, err := perivoronoi.Generate(cfg, perivoronoi.WithSeed(*seed))
	if err != nil {
		logger.Fatal("mesh generation failed", zap.Error(err))
	}

	if err := mesh.WriteFiles(*nodePath, *edgePath); err != nil {
		logger.Fatal("writing mesh relations failed", zap.Error(err))
	}

	logger.Info("periodic mesh written",
		zap.Int("sites", cfg.N),
		zap.Int("nodes", len(mesh.Nodes)),
		zap.Int("edges", len(mesh.Edges)),
		zap.String("nodes_file", *nodePath),
		zap.String("edges_file", *edgePath),
		zap.Duration("elapsed", time.Since(start)),
	)
}
