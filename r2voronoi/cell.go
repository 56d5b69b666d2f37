// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi implements Voronoi diagrams of planar point sets, built on
// Delaunay triangulation.
package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	vd  *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.vd.Sites[c.idx]
}

// Unbounded reports whether the cell extends to infinity. The vertex sequence
// of an unbounded cell is an open chain rather than a closed cycle.
func (c Cell) Unbounded() bool {
	return c.vd.CellUnbounded[c.idx]
}

// NumVertices returns the number of vertices in the cell.
func (c Cell) NumVertices() int {
	return c.vd.CellOffsets[c.idx+1] - c.vd.CellOffsets[c.idx]
}

// VertexIndices returns the indices of the vertices that form the cell in the
// Diagram's Vertices, ordered consistently around the site.
func (c Cell) VertexIndices() []int {
	return c.vd.CellVertices[c.vd.CellOffsets[c.idx]:c.vd.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.vd.CellOffsets[c.idx]
	end := c.vd.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.vd.Vertices[c.vd.CellVertices[start+i]], nil
}

// NumEdges returns the number of boundary edges of the cell: one per
// consecutive vertex pair, including the closing pair for bounded cells. The
// open chain of an unbounded cell has no closing edge.
func (c Cell) NumEdges() int {
	n := c.NumVertices()
	if c.Unbounded() {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return n
}

// EdgeVertexIndices returns the pair of vertex indices forming the i-th
// boundary edge of the cell, walking the cell's vertex sequence cyclically.
// It returns an error if the index is out of range.
func (c Cell) EdgeVertexIndices(i int) (int, int, error) {
	n := c.NumEdges()
	if i < 0 || i >= n {
		return 0, 0, fmt.Errorf("EdgeVertexIndices: index %d out of range [0 %d)", i, n)
	}
	ids := c.VertexIndices()
	return ids[i], ids[(i+1)%len(ids)], nil
}

// NumNeighbors returns the number of neighboring cells recorded for the cell,
// one per incident Delaunay triangle.
func (c Cell) NumNeighbors() int {
	return c.vd.CellOffsets[c.idx+1] - c.vd.CellOffsets[c.idx]
}

// NeighborIndices returns the indices of the neighboring cells in the Diagram,
// ordered consistently around the site.
func (c Cell) NeighborIndices() []int {
	return c.vd.CellNeighbors[c.vd.CellOffsets[c.idx]:c.vd.CellOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	start := c.vd.CellOffsets[c.idx]
	end := c.vd.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	nc, err := c.vd.Cell(c.vd.CellNeighbors[start+i])
	if err != nil {
		return Cell{}, err
	}
	return nc, nil
}
