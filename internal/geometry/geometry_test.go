package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
	"srither/internal/geometry"
)

func TestCounts(t *testing.T) {
	g := geometry.New(2, 3)
	require.Equal(t, 6, g.CellCount())
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 17, g.EdgeCount())
}

func TestEdgesOfCellTopLeft(t *testing.T) {
	g := geometry.New(2, 2)
	edges := g.EdgesOfCell(core.Cell{Row: 0, Col: 0})
	require.Contains(t, edges, core.Edge{Orientation: core.Horizontal, Row: 0, Col: 0})
	require.Contains(t, edges, core.Edge{Orientation: core.Horizontal, Row: 1, Col: 0})
	require.Contains(t, edges, core.Edge{Orientation: core.Vertical, Row: 0, Col: 0})
	require.Contains(t, edges, core.Edge{Orientation: core.Vertical, Row: 0, Col: 1})
}

func TestEdgesOfVertexDegree(t *testing.T) {
	g := geometry.New(2, 2)
	// corner vertex has degree 2
	require.Len(t, g.EdgesOfVertex(core.Vertex{Row: 0, Col: 0}), 2)
	// edge-of-grid (non-corner) vertex has degree 3
	require.Len(t, g.EdgesOfVertex(core.Vertex{Row: 0, Col: 1}), 3)
	// interior vertex has degree 4
	require.Len(t, g.EdgesOfVertex(core.Vertex{Row: 1, Col: 1}), 4)
}

func TestRegionsOfEdgeBoundaryIsOutside(t *testing.T) {
	g := geometry.New(2, 2)
	above, below := g.RegionsOfEdge(core.Edge{Orientation: core.Horizontal, Row: 0, Col: 0})
	require.Equal(t, core.Outside, above)
	require.Equal(t, core.RegionOf(core.Cell{Row: 0, Col: 0}), below)

	left, right := g.RegionsOfEdge(core.Edge{Orientation: core.Vertical, Row: 0, Col: 2})
	require.Equal(t, core.RegionOf(core.Cell{Row: 0, Col: 1}), left)
	require.Equal(t, core.Outside, right)
}

func TestRegionsOfEdgeInterior(t *testing.T) {
	g := geometry.New(2, 2)
	above, below := g.RegionsOfEdge(core.Edge{Orientation: core.Horizontal, Row: 1, Col: 0})
	require.Equal(t, core.RegionOf(core.Cell{Row: 0, Col: 0}), above)
	require.Equal(t, core.RegionOf(core.Cell{Row: 1, Col: 0}), below)
}

func TestAllEdgesCountMatchesEdgeCount(t *testing.T) {
	g := geometry.New(3, 4)
	n := 0
	g.AllEdges(func(core.Edge) { n++ })
	require.Equal(t, g.EdgeCount(), n)
}

func TestEdgeIndexIsInjective(t *testing.T) {
	g := geometry.New(3, 3)
	seen := make(map[int]core.Edge)
	g.AllEdges(func(e core.Edge) {
		idx := g.EdgeIndex(e)
		if prev, ok := seen[idx]; ok {
			t.Fatalf("index %d collides: %v and %v", idx, prev, e)
		}
		seen[idx] = e
	})
	require.Len(t, seen, g.EdgeCount())
}
