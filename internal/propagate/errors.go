package propagate

import "errors"

// ErrConflict is returned by Engine.Assign and Engine.Initialize when a
// deduction rule finds the current state unsatisfiable. It is never
// logged or wrapped with context — propagation returns structured
// results only; the caller in internal/search decides whether a
// conflict means backtrack or, at depth zero with no more choices,
// "no solution".
var ErrConflict = errors.New("propagate: conflict")

// ErrDegenerateLoop is returned by Engine.FinalCheck when every edge is
// decided but the Line edges do not separate the outside region from
// any interior cell (the empty drawing, or no Line edges at all).
var ErrDegenerateLoop = errors.New("propagate: degenerate loop")
