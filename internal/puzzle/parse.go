// Package puzzle implements puzzle I/O: parsing an ASCII grid into a
// core.Puzzle, and rendering a decided side assignment back out as the
// same ASCII convention.
package puzzle

import (
	"fmt"
	"os"
	"strings"

	"srither/internal/core"
)

// ParseError reports a malformed puzzle file with enough context for
// the CLI to print "file:line:col: message".
type ParseError struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

// ParseFile reads and parses the puzzle at path.
func ParseFile(path string) (*core.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes the ASCII grid format. filename is used only to label
// ParseError locations.
func Parse(data []byte, filename string) (*core.Puzzle, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rawLines := strings.Split(text, "\n")

	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimRight(l, " \t")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	rows := lines[start:end]

	if len(rows) == 0 {
		return nil, &ParseError{File: filename, Line: 1, Col: 1, Msg: "empty puzzle: zero rows"}
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &ParseError{File: filename, Line: start + 1, Col: 1, Msg: "empty puzzle: zero columns"}
	}

	clues := make([]int, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ParseError{
				File: filename, Line: start + i + 1, Col: len(row) + 1,
				Msg: fmt.Sprintf("row has %d columns, want %d", len(row), cols),
			}
		}
		for j := 0; j < cols; j++ {
			idx := i*cols + j
			ch := row[j]
			switch {
			case ch >= '0' && ch <= '3':
				clues[idx] = int(ch - '0')
			case ch >= '4' && ch <= '9':
				return nil, &ParseError{
					File: filename, Line: start + i + 1, Col: j + 1,
					Msg: fmt.Sprintf("clue digit %q out of range 0-3", ch),
				}
			default:
				clues[idx] = core.NoClue
			}
		}
	}

	return core.NewPuzzle(len(rows), cols, clues), nil
}
