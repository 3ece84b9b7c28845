package propagate

import "srither/internal/core"

// applyClueRule enforces the clue rule for one cell: a = #Line around
// it, b = #Cross around it, k its clue.
func (e *Engine) applyClueRule(c core.Cell) error {
	k := e.Sides.Clue(c)
	if k == core.NoClue {
		return nil
	}

	a, b := e.Sides.CellCounts(c)
	if a > k || 4-b < k {
		return ErrConflict
	}

	switch {
	case a == k:
		return e.decideRemaining(c, core.Cross)
	case 4-b == k:
		return e.decideRemaining(c, core.Line)
	}
	return nil
}

// decideRemaining assigns s to every still-Unknown edge of c.
func (e *Engine) decideRemaining(c core.Cell, s core.Side) error {
	for _, edge := range e.Sides.UnknownEdgesOfCell(c) {
		if err := e.apply(edge, s); err != nil {
			return err
		}
	}
	return nil
}
