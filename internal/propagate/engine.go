// Package propagate implements a worklist-driven constraint
// propagator: a fixpoint over the clue, vertex, same-region/cross and
// chain-closure rules. Every decision, whether from Engine.Assign or
// from a rule, goes through Engine.apply, which keeps the side-map, the
// cell-region union-find and the edge-chain union-find mutually
// consistent and journaled for the search layer to snapshot/restore.
package propagate

import (
	"srither/internal/core"
	"srither/internal/geometry"
	"srither/internal/journal"
	"srither/internal/sidemap"
	"srither/internal/unionfind"
)

// Engine owns one puzzle's full reversible state: the side-map and
// both union-finds, all sharing one journal.Journal so a single
// Mark/Rollback pair covers every component the search layer needs to
// undo together.
type Engine struct {
	Geo     *geometry.Geometry
	Journal *journal.Journal
	Sides   *sidemap.SideMap
	Regions *unionfind.RegionUF
	Chains  *unionfind.ChainUF

	cellQueue      []core.Cell
	cellQueued     []bool
	vertexQueue    []core.Vertex
	vertexQueued   []bool
	crossSweep     bool
	closurePending bool
}

// New builds an Engine for puzzle with every edge Unknown.
func New(puzzle *core.Puzzle) *Engine {
	geo := geometry.New(puzzle.Rows, puzzle.Cols)
	j := &journal.Journal{}
	return &Engine{
		Geo:          geo,
		Journal:      j,
		Sides:        sidemap.New(geo, puzzle, j),
		Regions:      unionfind.NewRegionUF(geo, j),
		Chains:       unionfind.NewChainUF(geo, j),
		cellQueued:   make([]bool, geo.CellCount()),
		vertexQueued: make([]bool, geo.VertexCount()),
	}
}

// Initialize seeds the worklist with every clued cell and runs to a
// fixpoint. Call once after New, before any Assign.
func (e *Engine) Initialize() error {
	e.Geo.AllCells(func(c core.Cell) {
		if e.Sides.Clue(c) != core.NoClue {
			e.enqueueCell(c)
		}
	})
	e.crossSweep = true
	return e.drain()
}

// Assign decides edge e as s (core.Line or core.Cross), then runs the
// worklist to a fixpoint. It returns ErrConflict without side effects
// surviving a caller-issued Rollback to a Token taken before the call.
func (e *Engine) Assign(edge core.Edge, s core.Side) error {
	if err := e.apply(edge, s); err != nil {
		return err
	}
	return e.drain()
}

// Remaining reports how many edges are still Unknown.
func (e *Engine) Remaining() int { return e.Sides.Remaining() }

func (e *Engine) enqueueCell(c core.Cell) {
	idx := e.Geo.CellIndex(c)
	if e.cellQueued[idx] {
		return
	}
	e.cellQueued[idx] = true
	e.cellQueue = append(e.cellQueue, c)
}

func (e *Engine) enqueueVertex(v core.Vertex) {
	idx := e.Geo.VertexIndex(v)
	if e.vertexQueued[idx] {
		return
	}
	e.vertexQueued[idx] = true
	e.vertexQueue = append(e.vertexQueue, v)
}

// enqueueEdgeNeighborhood marks the two cells and endpoints touched by
// e as dirty, so the next drain pass re-examines every rule the new
// decision could affect.
func (e *Engine) enqueueEdgeNeighborhood(edge core.Edge) {
	x, y := e.Geo.RegionsOfEdge(edge)
	if !x.Outside {
		e.enqueueCell(x.Cell)
	}
	if !y.Outside {
		e.enqueueCell(y.Cell)
	}
	if edge.Orientation == core.Horizontal {
		e.enqueueVertex(core.Vertex{Row: edge.Row, Col: edge.Col})
		e.enqueueVertex(core.Vertex{Row: edge.Row, Col: edge.Col + 1})
	} else {
		e.enqueueVertex(core.Vertex{Row: edge.Row, Col: edge.Col})
		e.enqueueVertex(core.Vertex{Row: edge.Row + 1, Col: edge.Col})
	}
}

// apply performs exactly one edge decision and its immediate structural
// consequences (region union for Cross, chain merge for Line), without
// draining the rest of the worklist.
func (e *Engine) apply(edge core.Edge, s core.Side) error {
	res := e.Sides.Set(edge, s)
	switch res {
	case sidemap.Conflict:
		return ErrConflict
	case sidemap.Unchanged:
		return nil
	}

	e.enqueueEdgeNeighborhood(edge)

	if s == core.Cross {
		x, y := e.Geo.RegionsOfEdge(edge)
		if e.Regions.Union(x, y) {
			e.crossSweep = true
		}
		return nil
	}

	return e.mergeChainAt(edge)
}

// mergeChainAt registers edge as a new Line chain link and folds it
// into any neighboring chain at each of its two endpoints. SameClass at
// an endpoint means edge's own chain already reaches back to itself
// there: the chain has just closed into a cycle. Whether that's the
// one solution loop or a premature sub-loop can't be decided here — a
// deduction still sitting in the worklist may yet cross out every
// other edge — so closure only marks closurePending; drain checks it
// once the worklist is fully quiet.
func (e *Engine) mergeChainAt(edge core.Edge) error {
	e.Chains.AddEdge(edge)
	for _, w := range incidentVertices(edge) {
		other, ok := e.otherLineEdgeAt(w, edge)
		if !ok {
			continue
		}
		if e.Chains.SameClass(edge, other) {
			e.Chains.Close(edge)
			e.closurePending = true
			continue
		}
		e.Chains.Merge(edge, other, w)
	}
	return nil
}

func incidentVertices(e core.Edge) [2]core.Vertex {
	if e.Orientation == core.Horizontal {
		return [2]core.Vertex{{Row: e.Row, Col: e.Col}, {Row: e.Row, Col: e.Col + 1}}
	}
	return [2]core.Vertex{{Row: e.Row, Col: e.Col}, {Row: e.Row + 1, Col: e.Col}}
}

// otherLineEdgeAt returns the Line edge incident to w other than
// exclude, if any. The vertex rule caps #Line-incident at 2, so there
// is at most one.
func (e *Engine) otherLineEdgeAt(w core.Vertex, exclude core.Edge) (core.Edge, bool) {
	for _, f := range e.Geo.EdgesOfVertex(w) {
		if f == exclude {
			continue
		}
		if e.Sides.Side(f) == core.Line {
			return f, true
		}
	}
	return core.Edge{}, false
}

// drain processes the worklist to a fixpoint: cells, then vertices,
// then (if anything unioned) a full cross-rule sweep, then a pending
// chain closure — repeating until nothing is left to do. The result is
// confluent and order-independent: any processing order reaches the
// same fixpoint. Closure is checked last and only once every other
// queue is empty, so a closing edge forced mid-cascade never sees a
// false conflict from a straggler this same drain would have crossed
// out moments later.
func (e *Engine) drain() error {
	for {
		if len(e.cellQueue) > 0 {
			c := e.cellQueue[0]
			e.cellQueue = e.cellQueue[1:]
			e.cellQueued[e.Geo.CellIndex(c)] = false
			if err := e.applyClueRule(c); err != nil {
				return err
			}
			continue
		}
		if len(e.vertexQueue) > 0 {
			v := e.vertexQueue[0]
			e.vertexQueue = e.vertexQueue[1:]
			e.vertexQueued[e.Geo.VertexIndex(v)] = false
			if err := e.applyVertexRule(v); err != nil {
				return err
			}
			continue
		}
		if e.crossSweep {
			e.crossSweep = false
			if err := e.applyCrossSweep(); err != nil {
				return err
			}
			continue
		}
		if e.closurePending {
			e.closurePending = false
			if e.Sides.Remaining() != 0 {
				return ErrConflict
			}
			continue
		}
		return nil
	}
}
