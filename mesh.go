// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Node is a mesh node with a dense 1-based id.
type Node struct {
	ID int
	P  r2.Point
}

// Edge connects two node ids of the same mesh.
type Edge struct {
	ID   int
	A, B int
}

// Mesh is the final periodic tessellation: nodes inside the domain rectangle
// and the edges connecting them, densely renumbered.
type Mesh struct {
	Nodes []Node
	Edges []Edge
}

// buildMesh renumbers the vertices referenced by edges into dense 1-based
// node ids, ordered by original vertex id, and pairs every edge with its two
// node ids.
func buildMesh(t *vertexTable, edges [][2]int) *Mesh {
	used := make(map[int]bool, 2*len(edges))
	for _, e := range edges {
		used[e[0]] = true
		used[e[1]] = true
	}
	ids := make([]int, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	mesh := &Mesh{
		Nodes: make([]Node, 0, len(ids)),
		Edges: make([]Edge, 0, len(edges)),
	}
	renumber := make(map[int]int, len(ids))
	for i, id := range ids {
		renumber[id] = i + 1
		mesh.Nodes = append(mesh.Nodes, Node{ID: i + 1, P: t.point(id)})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	for i, e := range edges {
		a := renumber[e[0]]
		b := renumber[e[1]]
		if a > b {
			a, b = b, a
		}
		mesh.Edges = append(mesh.Edges, Edge{ID: i + 1, A: a, B: b})
	}
	return mesh
}

// WriteNodes writes the node relation: one tab-separated "id x y" row per
// node, coordinates with six decimals.
func (m *Mesh) WriteNodes(w io.Writer) error {
	for _, n := range m.Nodes {
		if _, err := fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", n.ID, n.P.X, n.P.Y); err != nil {
			return errors.Wrap(err, "writing node relation")
		}
	}
	return nil
}

// WriteEdges writes the edge relation: one tab-separated "id node1 node2" row
// per edge, referencing ids from the node relation.
func (m *Mesh) WriteEdges(w io.Writer) error {
	for _, e := range m.Edges {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", e.ID, e.A, e.B); err != nil {
			return errors.Wrap(err, "writing edge relation")
		}
	}
	return nil
}

// WriteFiles writes the node and edge relations to the two given paths.
func (m *Mesh) WriteFiles(nodePath, edgePath string) error {
	if err := writeFile(nodePath, m.WriteNodes); err != nil {
		return err
	}
	return writeFile(edgePath, m.WriteEdges)
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}
