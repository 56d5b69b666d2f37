// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"sort"

	"github.com/golang/geo/r2"
)

// collapseShortEdges removes edges shorter than minLen from the clipped graph.
// A collapse overwrites the higher endpoint's coordinates with the lower's and
// deletes the edge. Edges are processed in ascending canonical order, and each
// length is measured against the current coordinates, so when a vertex takes
// part in several short edges the merges chain in that processing order.
// Afterwards, vertices left with identical coordinates are merged by value
// (lowest id wins) and the surviving edges are rewritten accordingly.
func collapseShortEdges(t *vertexTable, edges [][2]int, minLen float64) [][2]int {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	kept := edges[:0]
	for _, e := range edges {
		pa := t.point(e[0])
		pb := t.point(e[1])
		if pb.Sub(pa).Norm() < minLen {
			t.set(e[1], pa)
			continue
		}
		kept = append(kept, e)
	}

	alias := make(map[int]int)
	rep := make(map[r2.Point]int)
	for _, id := range t.sortedIDs() {
		p := t.point(id)
		if r, ok := rep[p]; ok {
			alias[id] = r
			t.remove(id)
		} else {
			rep[p] = id
		}
	}

	seen := make(map[[2]int]struct{})
	out := kept[:0]
	for _, e := range kept {
		a, b := e[0], e[1]
		if r, ok := alias[a]; ok {
			a = r
		}
		if r, ok := alias[b]; ok {
			b = r
		}
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		m := [2]int{a, b}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
