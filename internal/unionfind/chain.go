package unionfind

import (
	"srither/internal/core"
	"srither/internal/geometry"
	"srither/internal/journal"
)

type endpointPair struct{ a, b core.Vertex }

// ChainUF is the edge-chain union-find: a disjoint set over Line
// edges, merged whenever two Line edges share an endpoint vertex. Each
// class remembers its two open (free) endpoints, or that it has closed
// into a cycle — after each Line assignment the propagator asks this
// union-find whether the new edge joined its own chain, i.e. closed a
// loop.
type ChainUF struct {
	geo *geometry.Geometry
	uf  *UnionFind
	j   *journal.Journal

	active []bool
	open   []endpointPair
	closed []bool
}

// NewChainUF builds a ChainUF big enough to index every lattice edge;
// only edges later added with AddEdge participate in the disjoint set.
func NewChainUF(geo *geometry.Geometry, j *journal.Journal) *ChainUF {
	n := geo.EdgeCount()
	return &ChainUF{
		geo:    geo,
		uf:     New(n, j),
		j:      j,
		active: make([]bool, n),
		open:   make([]endpointPair, n),
		closed: make([]bool, n),
	}
}

func endpointsOf(e core.Edge) (core.Vertex, core.Vertex) {
	if e.Orientation == core.Horizontal {
		return core.Vertex{Row: e.Row, Col: e.Col}, core.Vertex{Row: e.Row, Col: e.Col + 1}
	}
	return core.Vertex{Row: e.Row, Col: e.Col}, core.Vertex{Row: e.Row + 1, Col: e.Col}
}

func (c *ChainUF) setActive(idx int, v bool) {
	old := c.active[idx]
	if old == v {
		return
	}
	c.active[idx] = v
	c.j.Record(func() { c.active[idx] = old })
}

func (c *ChainUF) setOpen(idx int, p endpointPair) {
	old := c.open[idx]
	c.open[idx] = p
	c.j.Record(func() { c.open[idx] = old })
}

func (c *ChainUF) setClosed(idx int, v bool) {
	old := c.closed[idx]
	if old == v {
		return
	}
	c.closed[idx] = v
	c.j.Record(func() { c.closed[idx] = old })
}

// AddEdge registers a newly-decided Line edge as a fresh singleton
// chain. Call this once, before looking for neighbors to Merge with.
func (c *ChainUF) AddEdge(e core.Edge) {
	idx := c.geo.EdgeIndex(e)
	u, v := endpointsOf(e)
	c.setActive(idx, true)
	c.setOpen(idx, endpointPair{u, v})
	c.setClosed(idx, false)
}

// Root returns an opaque class id for e's chain. e must have been
// added with AddEdge (directly or via a prior Merge).
func (c *ChainUF) Root(e core.Edge) int { return c.uf.Find(c.geo.EdgeIndex(e)) }

// SameClass reports whether e1 and e2 currently belong to the same chain.
func (c *ChainUF) SameClass(e1, e2 core.Edge) bool { return c.Root(e1) == c.Root(e2) }

// Closed reports whether e's chain has already closed into a cycle.
func (c *ChainUF) Closed(e core.Edge) bool { return c.closed[c.Root(e)] }

// Endpoints returns e's chain's two open (free) endpoints. Valid only
// when Closed(e) is false.
func (c *ChainUF) Endpoints(e core.Edge) (core.Vertex, core.Vertex) {
	p := c.open[c.Root(e)]
	return p.a, p.b
}

// Close marks e's whole chain as closed (a complete cycle with no free
// endpoints). The propagator calls it on every self-merge (an edge
// joining a chain it already belongs to); whether that closed loop is
// the complete solution is checked separately, not by Close.
func (c *ChainUF) Close(e core.Edge) { c.setClosed(c.Root(e), true) }

// Merge joins e1's and e2's chains at their shared vertex `at`. If they
// are already the same class, Merge performs no structural change and
// reports selfMerge=true — the caller (the propagator) is responsible
// for checking whether a self-merge this early is a premature closure
// before deciding whether to call Close. Otherwise Merge links the two
// classes and recomputes the merged chain's two open endpoints by
// discarding `at` from each side.
func (c *ChainUF) Merge(e1, e2 core.Edge, at core.Vertex) (selfMerge bool) {
	idx1, idx2 := c.geo.EdgeIndex(e1), c.geo.EdgeIndex(e2)
	r1, r2 := c.uf.Find(idx1), c.uf.Find(idx2)
	if r1 == r2 {
		return true
	}
	other1 := otherEndpoint(c.open[r1], at)
	other2 := otherEndpoint(c.open[r2], at)
	winner, _ := c.uf.Link(idx1, idx2)
	c.setOpen(winner, endpointPair{other1, other2})
	c.setClosed(winner, false)
	return false
}

func otherEndpoint(p endpointPair, at core.Vertex) core.Vertex {
	if p.a == at {
		return p.b
	}
	return p.a
}
