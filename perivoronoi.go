// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/2dChan/perivoronoi/r2voronoi"
)

// Generate samples cfg.N sites and derives the periodic Voronoi mesh of the
// domain rectangle. The run is a one-shot batch computation: any stage failure
// is terminal and no partial result is returned.
func Generate(cfg Config, setters ...Option) (*Mesh, error) {
	opts, err := buildOptions(setters)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sites, err := SampleSites(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}
	return generate(cfg, opts, sites)
}

// GenerateFromSites derives the periodic Voronoi mesh from an already placed
// site set, bypassing the sampler. Given the same sites it is fully
// deterministic. The sites must satisfy the sampler's spacing invariants for
// the downstream geometry to be well conditioned.
func GenerateFromSites(cfg Config, sites []r2.Point, setters ...Option) (*Mesh, error) {
	opts, err := buildOptions(setters)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return generate(cfg, opts, sites)
}

func generate(cfg Config, opts Options, sites []r2.Point) (*Mesh, error) {
	box := cfg.box()

	raw, err := r2voronoi.NewDiagram(sites, r2voronoi.WithEps(opts.Eps))
	if err != nil {
		return nil, errors.Wrap(err, "voronoi diagram of raw sites")
	}

	boundary := boundarySites(raw, box)
	enlarged := make([]r2.Point, len(sites), len(sites)+len(boundary)*len(mirrorOffsets))
	copy(enlarged, sites)
	enlarged = append(enlarged, mirrorSites(sites, boundary, cfg.Lx, cfg.Ly)...)

	periodic, err := r2voronoi.NewDiagram(enlarged, r2voronoi.WithEps(opts.Eps))
	if err != nil {
		return nil, errors.Wrap(err, "voronoi diagram of mirrored sites")
	}

	table, edges, err := clipToBox(periodic, box)
	if err != nil {
		return nil, errors.Wrap(err, "clipping to domain rectangle")
	}

	edges = collapseShortEdges(table, edges, opts.CollapseFraction*cfg.Lx)

	return buildMesh(table, edges), nil
}
