// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"github.com/golang/geo/r2"

	"github.com/2dChan/perivoronoi/r2voronoi"
)

// mirrorOffsets enumerates the nonzero translations of the 3x3 periodic image
// grid in a fixed order. The diagonal images matter for cells touching the
// domain corners, so all eight are required.
var mirrorOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// boundarySites returns, in ascending site order, the indices of the sites
// whose cell is unbounded or has at least one vertex outside the domain
// rectangle. One offending vertex is enough; scanning the cell stops there.
func boundarySites(vd *r2voronoi.Diagram, box r2.Rect) []int {
	var out []int
	for i := 0; i < vd.NumCells(); i++ {
		if vd.CellUnbounded[i] {
			out = append(out, i)
			continue
		}
		for _, vIdx := range vd.CellVertices[vd.CellOffsets[i]:vd.CellOffsets[i+1]] {
			if !box.ContainsPoint(vd.Vertices[vIdx]) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// mirrorSites returns the eight periodic images (x+k*lx, y+l*ly) of every
// boundary site, enumerated per site in the fixed mirrorOffsets order.
func mirrorSites(sites []r2.Point, boundary []int, lx, ly float64) []r2.Point {
	mirrors := make([]r2.Point, 0, len(boundary)*len(mirrorOffsets))
	for _, i := range boundary {
		p := sites[i]
		for _, off := range mirrorOffsets {
			mirrors = append(mirrors, r2.Point{
				X: p.X + float64(off[0])*lx,
				Y: p.Y + float64(off[1])*ly,
			})
		}
	}
	return mirrors
}
