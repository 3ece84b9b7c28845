// Package unionfind implements a journaled disjoint-set: union-by-rank
// with path compression, with every parent and rank write recorded on
// a shared journal.Journal so a Rollback to an earlier Token undoes
// links and compressions alike. The rank/parent layout follows the
// classic array-based disjoint-set structure; ChainUF and RegionUF
// build domain meaning on top of it.
package unionfind

import "srither/internal/journal"

// UnionFind is a plain disjoint-set over the integers [0, n), journaled
// through j. It carries no domain semantics of its own — RegionUF and
// ChainUF attach that.
type UnionFind struct {
	parent []int
	rank   []int
	j      *journal.Journal
}

// New builds a UnionFind over n singleton classes.
func New(n int, j *journal.Journal) *UnionFind {
	u := &UnionFind{parent: make([]int, n), rank: make([]int, n), j: j}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *UnionFind) setParent(x, p int) {
	old := u.parent[x]
	if old == p {
		return
	}
	u.parent[x] = p
	u.j.Record(func() { u.parent[x] = old })
}

func (u *UnionFind) setRank(x, r int) {
	old := u.rank[x]
	if old == r {
		return
	}
	u.rank[x] = r
	u.j.Record(func() { u.rank[x] = old })
}

// Find returns the root of the class containing x, compressing the
// path traversed (each rewritten link is journaled, so the compression
// itself is exactly reversible).
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		u.setParent(x, root)
		x = next
	}
	return root
}

// Connected reports whether a and b are currently in the same class.
func (u *UnionFind) Connected(a, b int) bool { return u.Find(a) == u.Find(b) }

// Link merges the classes of a and b by rank. It reports ok=false
// without mutating anything when a and b are already in the same
// class; otherwise it links them and returns the index that became
// the surviving root.
func (u *UnionFind) Link(a, b int) (winner int, ok bool) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return ra, false
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.setParent(ra, rb)
		winner = rb
	case u.rank[ra] > u.rank[rb]:
		u.setParent(rb, ra)
		winner = ra
	default:
		u.setParent(rb, ra)
		u.setRank(ra, u.rank[ra]+1)
		winner = ra
	}
	return winner, true
}
