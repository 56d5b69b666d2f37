// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets for
// triangulations and Voronoi diagrams.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates uniformly distributed random points inside the
// rectangle [0,width] x [0,height]. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, width, height float64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = r2.Point{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}

	return points
}
