// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/2dChan/perivoronoi/r2delaunay"
)

const (
	defaultEps = 1e-12
)

// Diagram is a Voronoi diagram of a planar point set. Vertices are the
// circumcenters of the Delaunay triangles; each cell is the flat slice
// CellVertices[CellOffsets[i]:CellOffsets[i+1]] of vertex indices, ordered
// consistently around the site.
//
// A cell with CellUnbounded[i] set extends to infinity: its vertex sequence is
// an open chain, not a closed cycle. There is no reserved "infinite vertex"
// id; unboundedness is carried by the flag alone.
type Diagram struct {
	Sites    []r2.Point
	Vertices []r2.Point

	CellVertices  []int
	CellNeighbors []int
	CellOffsets   []int
	CellUnbounded []bool
}

// NumCells returns the number of cells in the diagram.
func (vd *Diagram) NumCells() int {
	return len(vd.Sites)
}

// Cell returns the cell of the i-th site.
// It returns an error if the index is out of range.
func (vd *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= vd.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, vd.NumCells())
	}
	return Cell{idx: i, vd: vd}, nil
}

// DiagramOptions holds tunable parameters for NewDiagram.
type DiagramOptions struct {
	Eps float64
}

// DiagramOption configures a DiagramOptions value.
type DiagramOption func(*DiagramOptions) error

// WithEps sets the epsilon passed through to the triangulation.
// It must be in (0, 1).
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 || eps >= 1 {
			return errors.New("r2voronoi: eps must be in (0, 1)")
		}
		o.Eps = eps
		return nil
	}
}

// NewDiagram computes the Voronoi diagram of sites via their Delaunay
// triangulation.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	dt, err := r2delaunay.NewTriangulation(sites, r2delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, err
	}

	numTriangles := len(dt.Triangles)
	numNeighbors := len(dt.IncidentTriangleIndices)
	vd := &Diagram{
		Sites:         dt.Points,
		Vertices:      make([]r2.Point, numTriangles),
		CellVertices:  dt.IncidentTriangleIndices,
		CellNeighbors: make([]int, numNeighbors),
		CellOffsets:   dt.IncidentTriangleOffsets,
		CellUnbounded: dt.OnHull,
	}

	for i := 0; i < numTriangles; i++ {
		a, b, c := dt.TriangleVertices(i)
		vd.Vertices[i] = circumcenter(a, b, c)
	}

	for vIdx := range dt.Points {
		offset := dt.IncidentTriangleOffsets[vIdx]
		it := dt.IncidentTriangles(vIdx)
		for i, tIdx := range it {
			vd.CellNeighbors[offset+i] = r2delaunay.NextVertex(dt.Triangles[tIdx], vIdx)
		}
	}

	return vd, nil
}

// circumcenter returns the circumcenter of the triangle abc. Coordinates are
// computed relative to a to limit cancellation.
func circumcenter(a, b, c r2.Point) r2.Point {
	rb := b.Sub(a)
	rc := c.Sub(a)

	d := 2 * rb.Cross(rc)
	bb := rb.Dot(rb)
	cc := rc.Dot(rc)
	ux := (rc.Y*bb - rb.Y*cc) / d
	uy := (rb.X*cc - rc.X*bb) / d

	return r2.Point{X: a.X + ux, Y: a.Y + uy}
}
