package propagate

import "srither/internal/core"

// applyVertexRule enforces that every vertex ends at Line-degree 0 or
// 2, never 1, never >=3 (see DESIGN.md for the boundary case this
// derives beyond the obvious bullets: a vertex with zero Line edges
// and exactly one remaining Unknown edge must force that edge to
// Cross, since committing it to Line would land the vertex at degree
// 1, which no valid solution ever has).
func (e *Engine) applyVertexRule(v core.Vertex) error {
	a, b, d := e.Sides.VertexCounts(v)
	u := d - a - b // remaining Unknown edges

	switch {
	case a > 2:
		return ErrConflict
	case a == 2:
		return e.decideVertexRemaining(v, core.Cross)
	case a == 1:
		switch u {
		case 0:
			return ErrConflict // stuck at degree 1
		case 1:
			return e.decideVertexRemaining(v, core.Line) // the only way to reach 2
		}
	case a == 0:
		if u == 1 {
			return e.decideVertexRemaining(v, core.Cross) // Line would land at degree 1
		}
	}
	return nil
}

// decideVertexRemaining assigns s to every still-Unknown edge incident to v.
func (e *Engine) decideVertexRemaining(v core.Vertex, s core.Side) error {
	for _, edge := range e.Sides.UnknownEdgesOfVertex(v) {
		if err := e.apply(edge, s); err != nil {
			return err
		}
	}
	return nil
}
