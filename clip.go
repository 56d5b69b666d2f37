// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/2dChan/perivoronoi/r2voronoi"
)

// vertexTable is the mutable vertex store owned by the clipping and collapsing
// stages. Ids of the vertices inherited from the Voronoi diagram equal their
// diagram indices; ids of vertices created at boundary intersections grow
// monotonically from there.
type vertexTable struct {
	coords map[int]r2.Point
	nextID int
}

func newVertexTable(vertices []r2.Point) *vertexTable {
	t := &vertexTable{
		coords: make(map[int]r2.Point, len(vertices)),
		nextID: len(vertices),
	}
	for i, p := range vertices {
		t.coords[i] = p
	}
	return t
}

func (t *vertexTable) add(p r2.Point) int {
	id := t.nextID
	t.coords[id] = p
	t.nextID++
	return id
}

func (t *vertexTable) point(id int) r2.Point {
	return t.coords[id]
}

func (t *vertexTable) set(id int, p r2.Point) {
	t.coords[id] = p
}

func (t *vertexTable) remove(id int) {
	delete(t.coords, id)
}

func (t *vertexTable) sortedIDs() []int {
	ids := make([]int, 0, len(t.coords))
	for id := range t.coords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// clipToBox reduces the enlarged diagram to a planar graph confined to the
// domain rectangle. It walks every cell's edge sequence and keeps an edge iff
// at least one endpoint lies in or on the box; this discards the mirror
// geometry outside the domain while retaining the cell boundaries that
// straddle it. Each kept edge that crosses the box boundary then has its
// outside endpoint replaced by a freshly allocated vertex at the intersection
// point, and the superseded outside vertices are purged.
//
// The extraction pass completes in full before the intersection pass starts:
// the intersection pass relies on the deduplicated edge set.
func clipToBox(vd *r2voronoi.Diagram, box r2.Rect) (*vertexTable, [][2]int, error) {
	t := newVertexTable(vd.Vertices)

	seen := make(map[[2]int]struct{})
	var edges [][2]int
	for i := 0; i < vd.NumCells(); i++ {
		c, err := vd.Cell(i)
		if err != nil {
			return nil, nil, err
		}
		for j := 0; j < c.NumEdges(); j++ {
			a, b, err := c.EdgeVertexIndices(j)
			if err != nil {
				return nil, nil, err
			}
			if !box.ContainsPoint(t.point(a)) && !box.ContainsPoint(t.point(b)) {
				continue
			}
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	// Every kept edge has at least one endpoint inside the box, so an edge
	// crossing the boundary has exactly one endpoint outside and exactly one
	// intersection to stitch in.
	outside := make(map[int]bool)
	for k := range edges {
		a, b := edges[k][0], edges[k][1]
		pa, pb := t.point(a), t.point(b)
		aIn := box.ContainsPoint(pa)
		bIn := box.ContainsPoint(pb)
		if aIn && bIn {
			continue
		}
		hits := segmentRectIntersections(pa, pb, box)
		if len(hits) == 0 {
			continue
		}
		if aIn {
			id := t.add(hits[0])
			outside[b] = true
			edges[k] = [2]int{a, id}
		} else {
			id := t.add(hits[len(hits)-1])
			outside[a] = true
			edges[k] = [2]int{b, id}
		}
	}
	for id := range outside {
		t.remove(id)
	}

	return t, edges, nil
}

// segmentRectIntersections returns the intersection points of the segment pq
// with the outline of box, ordered by distance from p. Touching a corner
// yields a single point.
func segmentRectIntersections(p, q r2.Point, box r2.Rect) []r2.Point {
	corners := [4]r2.Point{
		{X: box.X.Lo, Y: box.Y.Lo},
		{X: box.X.Hi, Y: box.Y.Lo},
		{X: box.X.Hi, Y: box.Y.Hi},
		{X: box.X.Lo, Y: box.Y.Hi},
	}

	r := q.Sub(p)
	type hit struct {
		t float64
		p r2.Point
	}
	var hits []hit
	for i := range corners {
		c1 := corners[i]
		c2 := corners[(i+1)%len(corners)]
		s := c2.Sub(c1)
		denom := r.Cross(s)
		if denom == 0 {
			continue
		}
		w := c1.Sub(p)
		tt := w.Cross(s) / denom
		u := w.Cross(r) / denom
		if tt < 0 || tt > 1 || u < 0 || u > 1 {
			continue
		}
		hits = append(hits, hit{t: tt, p: p.Add(r.Mul(tt))})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	points := make([]r2.Point, 0, len(hits))
	for i, h := range hits {
		if i > 0 && h.p == hits[i-1].p {
			continue
		}
		points = append(points, h.p)
	}
	return points
}
