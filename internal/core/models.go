// Package core holds the value types shared by every solver package:
// grid coordinates, the tri-state side assignment, and the immutable
// Puzzle the propagator and search build on.
package core

import "fmt"

// Side is the tri-state assignment of a lattice edge.
type Side uint8

const (
	Unknown Side = iota
	Line
	Cross
)

// String renders a Side the way the ASCII board does: "?" for Unknown,
// "L" for Line, "X" for Cross. Primarily for diagnostics and tests.
func (s Side) String() string {
	switch s {
	case Line:
		return "L"
	case Cross:
		return "X"
	default:
		return "?"
	}
}

// NoClue marks a cell that carries no digit.
const NoClue = -1

// Cell is a grid coordinate, 0 <= Row < R, 0 <= Col < C. The virtual
// outside region is represented separately (see Outside) rather than as
// a Cell, since it has no (Row, Col).
type Cell struct {
	Row, Col int
}

// Region identifies a member of the cell union-find: either an interior
// Cell or the virtual Outside region. Every same-region deduction is
// phrased in terms of Region, never bare Cell, so boundary edges need no
// special case.
type Region struct {
	Cell    Cell
	Outside bool
}

// Outside is the singleton Region representing the plane outside the grid.
var Outside = Region{Outside: true}

// RegionOf wraps a Cell as an interior Region.
func RegionOf(c Cell) Region { return Region{Cell: c} }

func (r Region) String() string {
	if r.Outside {
		return "O"
	}
	return fmt.Sprintf("(%d,%d)", r.Cell.Row, r.Cell.Col)
}

// Orientation distinguishes the two edge kinds: Horizontal and Vertical.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Edge identifies a lattice edge. A Horizontal edge at (Row, Col)
// separates cell (Row-1, Col) from cell (Row, Col), for 0 <= Row <= R,
// 0 <= Col < C. A Vertical edge at (Row, Col) separates cell
// (Row, Col-1) from cell (Row, Col), for 0 <= Row < R, 0 <= Col <= C.
type Edge struct {
	Orientation Orientation
	Row, Col    int
}

func (e Edge) String() string {
	k := "H"
	if e.Orientation == Vertical {
		k = "V"
	}
	return fmt.Sprintf("%s(%d,%d)", k, e.Row, e.Col)
}

// Vertex is a lattice corner, 0 <= Row <= R, 0 <= Col <= C.
type Vertex struct {
	Row, Col int
}

func (v Vertex) String() string { return fmt.Sprintf("V(%d,%d)", v.Row, v.Col) }

// Puzzle is the immutable input to the solver: grid dimensions plus
// the clue carried by each cell (NoClue for an unclued cell). Clues
// never change after Parse builds a Puzzle.
type Puzzle struct {
	Rows, Cols int
	clues      []int8 // len == Rows*Cols, row-major
}

// NewPuzzle builds a Puzzle from row-major clues (NoClue for "no digit").
// It panics if len(clues) != rows*cols or a clue is outside {NoClue,0..3};
// callers reading untrusted input should validate with puzzle.Parse
// instead, which returns a structured error.
func NewPuzzle(rows, cols int, clues []int) *Puzzle {
	if rows <= 0 || cols <= 0 {
		panic("core: puzzle dimensions must be positive")
	}
	if len(clues) != rows*cols {
		panic("core: clue slice length must equal rows*cols")
	}
	p := &Puzzle{Rows: rows, Cols: cols, clues: make([]int8, len(clues))}
	for i, c := range clues {
		if c != NoClue && (c < 0 || c > 3) {
			panic("core: clue out of range")
		}
		p.clues[i] = int8(c)
	}
	return p
}

// Clue returns the digit carried by c, or NoClue.
func (p *Puzzle) Clue(c Cell) int {
	return int(p.clues[c.Row*p.Cols+c.Col])
}

// InBounds reports whether c is a valid interior cell of the puzzle.
func (p *Puzzle) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < p.Rows && c.Col >= 0 && c.Col < p.Cols
}

// EdgeCount returns R(C+1) + C(R+1), the total number of lattice edges.
func (p *Puzzle) EdgeCount() int {
	return p.Rows*(p.Cols+1) + p.Cols*(p.Rows+1)
}
