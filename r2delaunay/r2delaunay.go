// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements Delaunay triangulations of planar point sets,
// built on a convex hull reduction: points are lifted onto the paraboloid
// z = x^2 + y^2, and the lower hull of the lifted cloud projects back down to
// the Delaunay triangulation.
package r2delaunay

import (
	"errors"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// Triangulation is a Delaunay triangulation of a planar point set.
type Triangulation struct {
	Points    []r2.Point
	Triangles [][3]int
	// OnHull[i] reports whether Points[i] lies on the convex hull of the
	// point set. Hull points are exactly the points whose Voronoi cell is
	// unbounded.
	OnHull []bool
	// NOTE: Sorted per vertex by shared-edge chaining; the chain is open for
	// hull vertices.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles incident to the
// vertex vIdx, sorted consistently around it. For hull vertices the fan does
// not close.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the three corner points of the triangle tIdx.
func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Points[t[0]], dt.Points[t[1]], dt.Points[t[2]]
}

// TriangulationOptions holds tunable parameters for NewTriangulation.
type TriangulationOptions struct {
	Eps float64
}

// TriangulationOption configures a TriangulationOptions value.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the epsilon used by the underlying convex hull computation.
// It must be in (0, 1).
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 || eps >= 1 {
			return errors.New("r2delaunay: eps must be in (0, 1)")
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of points.
// At least 4 points are required and the points must not be all collinear.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numPoints := len(points)
	if numPoints < 4 {
		return nil,
			errors.New("r2delaunay: insufficient points for triangulation (minimum 4 required)")
	}

	lifted := make([]r3.Vector, numPoints)
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("r2delaunay: inconsistent number of indices returned from QuickHull")
	}

	dt := &Triangulation{
		Points: points,
		OnHull: make([]bool, numPoints),
	}

	// Lower-hull faces of the lifted cloud project to Delaunay triangles.
	// QuickHull winds its faces so that the cross product of the edge vectors
	// points into the hull, so the lower hull is norm.Z > 0. Every other face
	// belongs to the upper hull, whose vertices are exactly the 2D convex hull
	// points.
	for base := 0; base < len(ch.Indices); base += 3 {
		a, b, c := ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]
		if a >= numPoints || b >= numPoints || c >= numPoints {
			return nil, errors.New("r2delaunay: inconsistent indices returned from QuickHull")
		}
		norm := lifted[b].Sub(lifted[a]).Cross(lifted[c].Sub(lifted[a]))
		if norm.Z > 0 {
			tri := [3]int{a, b, c}
			sortTriangleVerticesCCW(&tri, points)
			dt.Triangles = append(dt.Triangles, tri)
		} else {
			dt.OnHull[a] = true
			dt.OnHull[b] = true
			dt.OnHull[c] = true
		}
	}

	numTriangles := len(dt.Triangles)
	if numTriangles == 0 {
		return nil, errors.New("r2delaunay: degenerate point set (all points collinear)")
	}

	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	dt.IncidentTriangleOffsets = make([]int, numPoints+1)
	for _, tri := range dt.Triangles {
		for _, v := range tri {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := 0; i < numPoints; i++ {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numPoints)
	copy(nxt, dt.IncidentTriangleOffsets[:numPoints])
	for i, tri := range dt.Triangles {
		for _, v := range tri {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := 0; i < numPoints; i++ {
		incidentTriangles := dt.IncidentTriangles(i)
		sortIncidentTriangleIndicesCCW(i, incidentTriangles, dt.Triangles)
	}

	return dt, nil
}

func sortTriangleVerticesCCW(t *[3]int, points []r2.Point) {
	p0, p1, p2 := points[t[0]], points[t[1]], points[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n < 2 {
		return
	}

	// For hull vertices the fan is open; the chain must begin at the triangle
	// that has no predecessor among the incident set.
	start := 0
	for i, tIdx := range incidentTris {
		prv := PrevVertex(tris[tIdx], vIdx)
		hasPred := false
		for j, uIdx := range incidentTris {
			if i == j {
				continue
			}
			if NextVertex(tris[uIdx], vIdx) == prv {
				hasPred = true
				break
			}
		}
		if !hasPred {
			start = i
			break
		}
	}
	incidentTris[0], incidentTris[start] = incidentTris[start], incidentTris[0]

	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i + 1; j < n; j++ {
			prv := PrevVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

// PrevVertex returns the vertex preceding vIdx in the triangle's cyclic order.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the vertex following vIdx in the triangle's cyclic order.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
