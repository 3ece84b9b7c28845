package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
)

func TestNewPuzzleClue(t *testing.T) {
	p := core.NewPuzzle(2, 2, []int{0, core.NoClue, 3, 1})
	require.Equal(t, 0, p.Clue(core.Cell{Row: 0, Col: 0}))
	require.Equal(t, core.NoClue, p.Clue(core.Cell{Row: 0, Col: 1}))
	require.Equal(t, 3, p.Clue(core.Cell{Row: 1, Col: 0}))
	require.Equal(t, 1, p.Clue(core.Cell{Row: 1, Col: 1}))
}

func TestNewPuzzlePanicsOnBadShape(t *testing.T) {
	require.Panics(t, func() { core.NewPuzzle(0, 2, nil) })
	require.Panics(t, func() { core.NewPuzzle(2, 2, []int{0, 0, 0}) })
	require.Panics(t, func() { core.NewPuzzle(1, 1, []int{9}) })
}

func TestPuzzleInBounds(t *testing.T) {
	p := core.NewPuzzle(2, 3, make([]int, 6))
	require.True(t, p.InBounds(core.Cell{Row: 0, Col: 0}))
	require.True(t, p.InBounds(core.Cell{Row: 1, Col: 2}))
	require.False(t, p.InBounds(core.Cell{Row: 2, Col: 0}))
	require.False(t, p.InBounds(core.Cell{Row: 0, Col: -1}))
}

func TestPuzzleEdgeCount(t *testing.T) {
	p := core.NewPuzzle(2, 3, make([]int, 6))
	// R(C+1) + C(R+1) = 2*4 + 3*3 = 17
	require.Equal(t, 17, p.EdgeCount())
}

func TestRegionOfAndOutsideAreDistinct(t *testing.T) {
	a := core.RegionOf(core.Cell{Row: 0, Col: 0})
	require.NotEqual(t, a, core.Outside)
	require.True(t, core.Outside.Outside)
	require.False(t, a.Outside)
}

func TestSideString(t *testing.T) {
	require.Equal(t, "?", core.Unknown.String())
	require.Equal(t, "L", core.Line.String())
	require.Equal(t, "X", core.Cross.String())
}
