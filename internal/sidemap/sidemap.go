// Package sidemap holds the authoritative per-edge tri-state assignment
// and per-cell clues. Each edge is encoded as a pair of bits in two
// bitset.BitSet vectors (one for "is Line", one for "is Cross") rather
// than a []core.Side slice, a compact bit-vector-per-predicate
// encoding for a dense boolean-per-index table.
package sidemap

import (
	"github.com/bits-and-blooms/bitset"

	"srither/internal/core"
	"srither/internal/geometry"
	"srither/internal/journal"
)

// SetResult reports what Set actually did.
type SetResult uint8

const (
	// Unchanged: the edge already carried this value; no-op.
	Unchanged SetResult = iota
	// Changed: the edge went from Unknown to Line or Cross.
	Changed
	// Conflict: the edge already carried the opposite decided value.
	Conflict
)

// SideMap is the mutable, journaled edge/clue state of one puzzle.
type SideMap struct {
	geo    *geometry.Geometry
	puzzle *core.Puzzle
	j      *journal.Journal

	line  *bitset.BitSet
	cross *bitset.BitSet
}

// New builds a SideMap with every edge Unknown, journaled through j.
func New(geo *geometry.Geometry, puzzle *core.Puzzle, j *journal.Journal) *SideMap {
	n := uint(geo.EdgeCount())
	return &SideMap{
		geo:    geo,
		puzzle: puzzle,
		j:      j,
		line:   bitset.New(n),
		cross:  bitset.New(n),
	}
}

// Side returns the current assignment of e.
func (m *SideMap) Side(e core.Edge) core.Side {
	idx := uint(m.geo.EdgeIndex(e))
	switch {
	case m.line.Test(idx):
		return core.Line
	case m.cross.Test(idx):
		return core.Cross
	default:
		return core.Unknown
	}
}

// Clue returns the clue carried by c, or core.NoClue.
func (m *SideMap) Clue(c core.Cell) int { return m.puzzle.Clue(c) }

// Set assigns s (Line or Cross) to e. Ok-to-change is monotone: Unknown
// may become Line or Cross; an edge already holding s is a no-op; an
// edge already holding the opposite value is a Conflict. The mutation
// (if any) is recorded on the journal so a Rollback to a Token taken
// before this call restores Unknown.
func (m *SideMap) Set(e core.Edge, s core.Side) SetResult {
	if s == core.Unknown {
		panic("sidemap: Set requires Line or Cross, not Unknown")
	}
	idx := uint(m.geo.EdgeIndex(e))
	cur := m.Side(e)
	if cur == s {
		return Unchanged
	}
	if cur != core.Unknown {
		return Conflict
	}
	if s == core.Line {
		m.line.Set(idx)
		m.j.Record(func() { m.line.Clear(idx) })
	} else {
		m.cross.Set(idx)
		m.j.Record(func() { m.cross.Clear(idx) })
	}
	return Changed
}

// CellCounts returns (#Line, #Cross) among the 4 edges bordering c.
func (m *SideMap) CellCounts(c core.Cell) (lines, crosses int) {
	for _, e := range m.geo.EdgesOfCell(c) {
		switch m.Side(e) {
		case core.Line:
			lines++
		case core.Cross:
			crosses++
		}
	}
	return
}

// VertexCounts returns (#Line, #Cross, degree) among the edges incident to v.
func (m *SideMap) VertexCounts(v core.Vertex) (lines, crosses, degree int) {
	edges := m.geo.EdgesOfVertex(v)
	degree = len(edges)
	for _, e := range edges {
		switch m.Side(e) {
		case core.Line:
			lines++
		case core.Cross:
			crosses++
		}
	}
	return
}

// UnknownEdgesOfCell returns the still-Unknown edges bordering c.
func (m *SideMap) UnknownEdgesOfCell(c core.Cell) []core.Edge {
	all := m.geo.EdgesOfCell(c)
	out := make([]core.Edge, 0, 4)
	for _, e := range all {
		if m.Side(e) == core.Unknown {
			out = append(out, e)
		}
	}
	return out
}

// UnknownEdgesOfVertex returns the still-Unknown edges incident to v.
func (m *SideMap) UnknownEdgesOfVertex(v core.Vertex) []core.Edge {
	edges := m.geo.EdgesOfVertex(v)
	out := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if m.Side(e) == core.Unknown {
			out = append(out, e)
		}
	}
	return out
}

// Remaining reports how many edges are still Unknown across the whole grid.
func (m *SideMap) Remaining() int {
	return int(m.line.Len()) - int(m.line.Count()) - int(m.cross.Count())
}

// Geometry exposes the shared Geometry (read-only neighborhood tables).
func (m *SideMap) Geometry() *geometry.Geometry { return m.geo }
