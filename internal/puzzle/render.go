package puzzle

import (
	"strconv"
	"strings"

	"srither/internal/core"
	"srither/internal/geometry"
)

// SideFunc looks up the decided side of an edge, satisfied by both
// solution.Solution.Side and sidemap.SideMap.Side.
type SideFunc func(core.Edge) core.Side

// Render draws the grid in the solver's ASCII convention: vertices as
// '+', horizontal/vertical edges as '-'/'|' when Line, clue digits (or
// a blank) at cell centers, and Unknown edges as '?'.
func Render(geo *geometry.Geometry, puzzle *core.Puzzle, side SideFunc) string {
	return render(geo, puzzle, side, false)
}

// RenderCompact is Render with Unknown edges drawn as blank space
// instead of '?', for dumping a fully- or mostly-decided grid without
// the visual noise of the filler glyph.
func RenderCompact(geo *geometry.Geometry, puzzle *core.Puzzle, side SideFunc) string {
	return render(geo, puzzle, side, true)
}

func render(geo *geometry.Geometry, puzzle *core.Puzzle, side SideFunc, compact bool) string {
	rows, cols := puzzle.Rows, puzzle.Cols
	var b strings.Builder

	for gr := 0; gr <= 2*rows; gr++ {
		for gc := 0; gc <= 2*cols; gc++ {
			switch {
			case gr%2 == 0 && gc%2 == 0:
				b.WriteByte('+')
			case gr%2 == 0:
				r, c := gr/2, (gc-1)/2
				b.WriteByte(hEdgeGlyph(side(core.Edge{Orientation: core.Horizontal, Row: r, Col: c}), compact))
			case gc%2 == 0:
				r, c := (gr-1)/2, gc/2
				b.WriteByte(vEdgeGlyph(side(core.Edge{Orientation: core.Vertical, Row: r, Col: c}), compact))
			default:
				r, c := (gr-1)/2, (gc-1)/2
				b.WriteByte(clueGlyph(puzzle.Clue(core.Cell{Row: r, Col: c})))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hEdgeGlyph(s core.Side, compact bool) byte {
	switch s {
	case core.Line:
		return '-'
	case core.Cross:
		return ' '
	default:
		if compact {
			return ' '
		}
		return '?'
	}
}

func vEdgeGlyph(s core.Side, compact bool) byte {
	switch s {
	case core.Line:
		return '|'
	case core.Cross:
		return ' '
	default:
		if compact {
			return ' '
		}
		return '?'
	}
}

func clueGlyph(k int) byte {
	if k == core.NoClue {
		return ' '
	}
	return strconv.Itoa(k)[0]
}
