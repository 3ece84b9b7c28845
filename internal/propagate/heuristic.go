package propagate

import "srither/internal/core"

// ChooseEdge picks the next Unknown edge to branch on: prefer one
// bordering the most-constrained clued cell (smallest remaining slack
// = min(k-a, 4-b-k)); break ties by preferring an edge incident to a
// vertex that already has one Line edge. It is deterministic given a
// fixed iteration order and is not load-bearing for correctness — only
// for how much search it takes to reach one.
func (e *Engine) ChooseEdge() (core.Edge, bool) {
	bestSlack := -1
	var bestCell core.Cell
	haveCell := false

	e.Geo.AllCells(func(c core.Cell) {
		k := e.Sides.Clue(c)
		if k == core.NoClue {
			return
		}
		a, b := e.Sides.CellCounts(c)
		if len(e.Sides.UnknownEdgesOfCell(c)) == 0 {
			return
		}
		lineSlack := k - a
		crossSlack := 4 - b - k
		slack := lineSlack
		if crossSlack < slack {
			slack = crossSlack
		}
		if !haveCell || slack < bestSlack {
			bestSlack = slack
			bestCell = c
			haveCell = true
		}
	})

	if haveCell {
		return e.pickFromCell(bestCell), true
	}
	return e.firstUnknownEdge()
}

// pickFromCell chooses among c's Unknown edges, preferring one whose
// endpoint vertex already has exactly one Line edge.
func (e *Engine) pickFromCell(c core.Cell) core.Edge {
	unknowns := e.Sides.UnknownEdgesOfCell(c)
	for _, edge := range unknowns {
		for _, v := range incidentVertices(edge) {
			lines, _, _ := e.Sides.VertexCounts(v)
			if lines == 1 {
				return edge
			}
		}
	}
	return unknowns[0]
}

func (e *Engine) firstUnknownEdge() (core.Edge, bool) {
	var found core.Edge
	ok := false
	e.Geo.AllEdges(func(edge core.Edge) {
		if ok {
			return
		}
		if e.Sides.Side(edge) == core.Unknown {
			found = edge
			ok = true
		}
	})
	return found, ok
}
