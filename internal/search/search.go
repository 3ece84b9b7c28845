// Package search implements DFS with choice-point backtracking:
// propagate to a fixpoint, pick an Unknown edge, try Line then Cross,
// recurse, counting solutions up to the mode's target.
package search

import (
	"srither/internal/core"
	"srither/internal/propagate"
	"srither/internal/solution"
)

// Mode selects how many solutions Run looks for.
type Mode int

const (
	// ModeUnique counts solutions up to two, to prove uniqueness
	// ("count-up-to-two"). This is the top-level solve(puzzle) contract.
	ModeUnique Mode = iota
	// ModeFirst stops at the first solution found, without proving
	// uniqueness — an explicit, documented divergence from the
	// top-level contract for callers that only want a witness.
	ModeFirst
)

// Outcome classifies a Run result.
type Outcome int

const (
	// None: the puzzle is unsatisfiable.
	None Outcome = iota
	// Found: ModeFirst found a solution (uniqueness not checked).
	Found
	// Unique: ModeUnique found exactly one solution.
	Unique
	// Multiple: ModeUnique found a second solution.
	Multiple
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Found:
		return "found"
	case Unique:
		return "unique"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Result is what Run returns.
type Result struct {
	Outcome Outcome
	// Solution is set when Outcome is Found or Unique.
	Solution *solution.Solution
	// ChoicePoints counts the DFS choice points actually taken, for bench
	// reporting; it is not part of the solver's correctness contract.
	ChoicePoints int
	// BudgetExceeded reports whether Budget cut a branch short before the
	// search could fully explore it. It qualifies every Outcome, not
	// just None: a Result{Outcome: None, BudgetExceeded: true} means
	// "don't know", not "unsatisfiable", and a Result{Outcome: Unique,
	// BudgetExceeded: true} means a solution was found but a second one
	// in an unexplored branch can't be ruled out.
	BudgetExceeded bool
}

// Run solves puzzle in the given Mode. Budget caps the number of DFS
// choice points taken (0 means unbounded), a wall-clock-free budget
// callers can impose on the search.
func Run(puzzle *core.Puzzle, mode Mode, budget int) Result {
	engine := propagate.New(puzzle)
	d := &dfs{engine: engine, budget: budget}

	if err := engine.Initialize(); err != nil {
		return Result{Outcome: None}
	}

	target := 1
	if mode == ModeUnique {
		target = 2
	}

	var found []*solution.Solution
	d.search(&found, target)

	result := Result{ChoicePoints: d.used, BudgetExceeded: d.budgetHit}
	switch {
	case len(found) == 0:
		result.Outcome = None
	case mode == ModeFirst:
		result.Outcome = Found
		result.Solution = found[0]
	case len(found) == 1:
		result.Outcome = Unique
		result.Solution = found[0]
	default:
		result.Outcome = Multiple
	}
	return result
}

type dfs struct {
	engine    *propagate.Engine
	budget    int
	used      int
	budgetHit bool
}

func (d *dfs) search(found *[]*solution.Solution, target int) {
	if len(*found) >= target {
		return
	}

	// A branch that propagation has already fully decided is resolved
	// regardless of budget: the budget bounds the number of choice
	// points taken, not whether a terminal board already in hand gets
	// recorded.
	if d.engine.Remaining() == 0 {
		if err := d.engine.FinalCheck(); err == nil {
			*found = append(*found, solution.New(d.engine.Geo, d.engine.Sides.Side))
		}
		return
	}

	if d.budget > 0 && d.used >= d.budget {
		d.budgetHit = true
		return
	}

	edge, ok := d.engine.ChooseEdge()
	if !ok {
		return
	}
	d.used++

	tok := d.engine.Journal.Mark()
	if err := d.engine.Assign(edge, core.Line); err == nil {
		d.search(found, target)
	}
	d.engine.Journal.Rollback(tok)

	if len(*found) >= target {
		return
	}
	if d.budget > 0 && d.used >= d.budget {
		// The Cross branch is exactly as unexplored as a branch cut off
		// by the budget check at the top of this function, so it must
		// mark the same flag: skipping it can hide a second solution.
		d.budgetHit = true
		return
	}

	if err := d.engine.Assign(edge, core.Cross); err == nil {
		d.search(found, target)
	}
	d.engine.Journal.Rollback(tok)
}
