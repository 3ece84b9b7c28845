package propagate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
)

func TestClueRuleAlreadyTightForcesCrossRemaining(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{2})
	e := New(p)
	c := core.Cell{Row: 0, Col: 0}
	edges := e.Geo.EdgesOfCell(c)

	e.Sides.Set(edges[0], core.Line)
	e.Sides.Set(edges[1], core.Line)
	require.NoError(t, e.applyClueRule(c))
	require.Equal(t, core.Cross, e.Sides.Side(edges[2]))
	require.Equal(t, core.Cross, e.Sides.Side(edges[3]))
}

func TestClueRuleSlackExhaustedForcesLineRemaining(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{3})
	e := New(p)
	c := core.Cell{Row: 0, Col: 0}
	edges := e.Geo.EdgesOfCell(c)

	e.Sides.Set(edges[0], core.Cross)
	require.NoError(t, e.applyClueRule(c))
	require.Equal(t, core.Line, e.Sides.Side(edges[1]))
	require.Equal(t, core.Line, e.Sides.Side(edges[2]))
	require.Equal(t, core.Line, e.Sides.Side(edges[3]))
}

func TestClueRuleTooManyLinesIsConflict(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{1})
	e := New(p)
	c := core.Cell{Row: 0, Col: 0}
	edges := e.Geo.EdgesOfCell(c)

	e.Sides.Set(edges[0], core.Line)
	e.Sides.Set(edges[1], core.Line)
	require.ErrorIs(t, e.applyClueRule(c), ErrConflict)
}

func TestClueRuleTooManyCrossesIsConflict(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{3})
	e := New(p)
	c := core.Cell{Row: 0, Col: 0}
	edges := e.Geo.EdgesOfCell(c)

	e.Sides.Set(edges[0], core.Cross)
	e.Sides.Set(edges[1], core.Cross)
	require.ErrorIs(t, e.applyClueRule(c), ErrConflict)
}

func TestClueRuleNoClueIsNoop(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{core.NoClue})
	e := New(p)
	require.NoError(t, e.applyClueRule(core.Cell{Row: 0, Col: 0}))
	require.Equal(t, 4, e.Sides.Remaining())
}
