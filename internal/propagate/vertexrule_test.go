package propagate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
)

// These tests set neighboring edges directly through Sides.Set,
// bypassing apply/enqueue, so the rule under test runs against an exact,
// hand-picked local state instead of whatever a cascading Assign would
// produce.

func TestVertexRuleCornerForcesCrossRemaining(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{core.NoClue})
	e := New(p)

	v := core.Vertex{Row: 0, Col: 0} // corner, degree 2
	vEdge := core.Edge{Orientation: core.Vertical, Row: 0, Col: 0}
	hEdge := core.Edge{Orientation: core.Horizontal, Row: 0, Col: 0}

	e.Sides.Set(vEdge, core.Cross)
	require.NoError(t, e.applyVertexRule(v))
	require.Equal(t, core.Cross, e.Sides.Side(hEdge))
}

func TestVertexRuleOneLineOneUnknownForcesLine(t *testing.T) {
	p := core.NewPuzzle(1, 2, []int{core.NoClue, core.NoClue})
	e := New(p)

	v := core.Vertex{Row: 0, Col: 1} // top-middle, degree 3
	edges := e.Geo.EdgesOfVertex(v)
	require.Len(t, edges, 3)

	e.Sides.Set(edges[0], core.Line)
	e.Sides.Set(edges[1], core.Cross)
	require.NoError(t, e.applyVertexRule(v))
	require.Equal(t, core.Line, e.Sides.Side(edges[2]))
}

func TestVertexRuleZeroLinesOneUnknownForcesCross(t *testing.T) {
	p := core.NewPuzzle(1, 2, []int{core.NoClue, core.NoClue})
	e := New(p)

	v := core.Vertex{Row: 0, Col: 1}
	edges := e.Geo.EdgesOfVertex(v)
	require.Len(t, edges, 3)

	e.Sides.Set(edges[0], core.Cross)
	e.Sides.Set(edges[1], core.Cross)
	require.NoError(t, e.applyVertexRule(v))
	require.Equal(t, core.Cross, e.Sides.Side(edges[2]))
}

func TestVertexRuleDegreeOneStuckIsConflict(t *testing.T) {
	p := core.NewPuzzle(1, 1, []int{core.NoClue})
	e := New(p)

	v := core.Vertex{Row: 0, Col: 0}
	vEdge := core.Edge{Orientation: core.Vertical, Row: 0, Col: 0}
	hEdge := core.Edge{Orientation: core.Horizontal, Row: 0, Col: 0}

	e.Sides.Set(vEdge, core.Line)
	e.Sides.Set(hEdge, core.Cross)
	require.ErrorIs(t, e.applyVertexRule(v), ErrConflict)
}

func TestVertexRuleTooManyLinesIsConflict(t *testing.T) {
	p := core.NewPuzzle(2, 2, []int{core.NoClue, core.NoClue, core.NoClue, core.NoClue})
	e := New(p)

	v := core.Vertex{Row: 1, Col: 1} // interior, degree 4
	edges := e.Geo.EdgesOfVertex(v)
	require.Len(t, edges, 4)

	e.Sides.Set(edges[0], core.Line)
	e.Sides.Set(edges[1], core.Line)
	e.Sides.Set(edges[2], core.Line)
	require.ErrorIs(t, e.applyVertexRule(v), ErrConflict)
}
