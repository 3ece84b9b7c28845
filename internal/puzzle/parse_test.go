package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/core"
	"srither/internal/puzzle"
)

func TestParseSimpleGrid(t *testing.T) {
	data := []byte("2.\n.3\n")
	p, err := puzzle.Parse(data, "grid.txt")
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows)
	require.Equal(t, 2, p.Cols)
	require.Equal(t, 2, p.Clue(core.Cell{Row: 0, Col: 0}))
	require.Equal(t, core.NoClue, p.Clue(core.Cell{Row: 0, Col: 1}))
	require.Equal(t, core.NoClue, p.Clue(core.Cell{Row: 1, Col: 0}))
	require.Equal(t, 3, p.Clue(core.Cell{Row: 1, Col: 1}))
}

func TestParseIgnoresLeadingAndTrailingBlankLines(t *testing.T) {
	data := []byte("\n\n2.\n.3\n\n\n")
	p, err := puzzle.Parse(data, "grid.txt")
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows)
	require.Equal(t, 2, p.Cols)
}

func TestParseIgnoresTrailingWhitespacePerLine(t *testing.T) {
	data := []byte("2.   \n.3\t\n")
	p, err := puzzle.Parse(data, "grid.txt")
	require.NoError(t, err)
	require.Equal(t, 2, p.Cols)
}

func TestParseAcceptsUnderscoreAndDashAsNoClue(t *testing.T) {
	data := []byte("-_\n_-\n")
	p, err := puzzle.Parse(data, "grid.txt")
	require.NoError(t, err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			require.Equal(t, core.NoClue, p.Clue(core.Cell{Row: r, Col: c}))
		}
	}
}

func TestParseRejectsRowLengthMismatch(t *testing.T) {
	data := []byte("2.\n.3.\n")
	_, err := puzzle.Parse(data, "grid.txt")
	require.Error(t, err)

	var perr *puzzle.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "grid.txt", perr.File)
	require.Equal(t, 2, perr.Line)
}

func TestParseRejectsOutOfRangeDigit(t *testing.T) {
	data := []byte("25\n..\n")
	_, err := puzzle.Parse(data, "grid.txt")
	require.Error(t, err)

	var perr *puzzle.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, perr.Line)
	require.Equal(t, 2, perr.Col)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := puzzle.Parse([]byte("\n\n\n"), "grid.txt")
	require.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := puzzle.ParseFile("/nonexistent/puzzle.txt")
	require.Error(t, err)
}
