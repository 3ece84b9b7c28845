// Package constants collects the fixed numbers governing grid shape,
// clue range, and solver limits in one place.
package constants

// Clue range: every cell clue is in [0, MaxClue] or NoClue (unclued).
const (
	MinClue = 0
	MaxClue = 3
)

// Vertex degree: a solved loop touches each vertex 0 or 2 times.
const (
	DegreeOff = 0
	DegreeOn  = 2
)

// CellEdges is the number of edges bordering any interior cell.
const CellEdges = 4

// SolutionCountTarget is the count search.Run's ModeUnique mode stops
// at: finding a second solution is enough to know the puzzle isn't
// unique, without enumerating the rest.
const SolutionCountTarget = 2

// DefaultBudget is the choice-point ceiling applied when no explicit
// budget is configured. 0 means unbounded.
const DefaultBudget = 0
