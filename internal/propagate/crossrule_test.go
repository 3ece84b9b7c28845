package propagate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
)

func TestCrossSweepCrossesEdgeBetweenSameRegionCells(t *testing.T) {
	p := core.NewPuzzle(1, 2, []int{core.NoClue, core.NoClue})
	e := New(p)

	left := core.RegionOf(core.Cell{Row: 0, Col: 0})
	right := core.RegionOf(core.Cell{Row: 0, Col: 1})
	e.Regions.Union(left, right)

	shared := core.Edge{Orientation: core.Vertical, Row: 0, Col: 1}
	require.Equal(t, core.Unknown, e.Sides.Side(shared))

	require.NoError(t, e.applyCrossSweep())
	require.Equal(t, core.Cross, e.Sides.Side(shared))
}

func TestCrossSweepLeavesUnrelatedEdgesAlone(t *testing.T) {
	p := core.NewPuzzle(1, 2, []int{core.NoClue, core.NoClue})
	e := New(p)

	require.NoError(t, e.applyCrossSweep())
	e.Geo.AllEdges(func(edge core.Edge) {
		require.Equal(t, core.Unknown, e.Sides.Side(edge))
	})
}
