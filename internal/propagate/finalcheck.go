package propagate

import "srither/internal/core"

// FinalCheck validates the final-solution invariants beyond what
// propagation already maintains incrementally: every clue tight
// (defense in depth — the clue rule already enforces this at
// fixpoint), every vertex at degree 0 or 2 (likewise), the
// non-degenerate-loop requirement, which propagation has no reason to
// check until every edge is decided, and that every Line edge belongs
// to exactly one closed chain (so two separate loops can never pass).
// Call only when Remaining() == 0.
func (e *Engine) FinalCheck() error {
	var clueErr error
	e.Geo.AllCells(func(c core.Cell) {
		if clueErr != nil {
			return
		}
		k := e.Sides.Clue(c)
		if k == core.NoClue {
			return
		}
		a, _ := e.Sides.CellCounts(c)
		if a != k {
			clueErr = ErrConflict
		}
	})
	if clueErr != nil {
		return clueErr
	}

	var vertexErr error
	e.Geo.AllVertices(func(v core.Vertex) {
		if vertexErr != nil {
			return
		}
		a, _, _ := e.Sides.VertexCounts(v)
		if a != 0 && a != 2 {
			vertexErr = ErrConflict
		}
	})
	if vertexErr != nil {
		return vertexErr
	}

	degenerate := true
	e.Geo.AllCells(func(c core.Cell) {
		if !degenerate {
			return
		}
		if !e.Regions.SameClass(core.RegionOf(c), core.Outside) {
			degenerate = false
		}
	})
	if degenerate {
		return ErrDegenerateLoop
	}

	// Every Line edge must belong to one closed chain. This is the
	// last line of defense against two vertex-disjoint loops: the
	// vertex rule already forces degree 0-or-2 everywhere, and the
	// chain-closure rule already rejects a premature sub-loop, but
	// checking directly here costs nothing at a single Remaining()==0
	// call and catches either rule slipping.
	var loopErr error
	var root int
	haveRoot := false
	e.Geo.AllEdges(func(edge core.Edge) {
		if loopErr != nil || e.Sides.Side(edge) != core.Line {
			return
		}
		if !e.Chains.Closed(edge) {
			loopErr = ErrConflict
			return
		}
		r := e.Chains.Root(edge)
		if !haveRoot {
			root, haveRoot = r, true
			return
		}
		if r != root {
			loopErr = ErrConflict
		}
	})
	if loopErr != nil {
		return loopErr
	}
	return nil
}
