package unionfind

import (
	"srither/internal/core"
	"srither/internal/geometry"
	"srither/internal/journal"
)

// RegionUF is the cell-region union-find: a disjoint set over interior
// cells plus the virtual Outside region. Two regions in the same class
// are provably separated only by Cross edges; merging them is how the
// cross rule propagates.
type RegionUF struct {
	geo *geometry.Geometry
	uf  *UnionFind
}

// NewRegionUF builds a RegionUF for geo, with Outside given its own slot.
func NewRegionUF(geo *geometry.Geometry, j *journal.Journal) *RegionUF {
	return &RegionUF{geo: geo, uf: New(geo.CellCount()+1, j)}
}

func (r *RegionUF) index(region core.Region) int {
	if region.Outside {
		return r.geo.CellCount()
	}
	return r.geo.CellIndex(region.Cell)
}

// Find returns an opaque class id for region's class. Two regions are
// in the same class iff Find returns the same id.
func (r *RegionUF) Find(region core.Region) int { return r.uf.Find(r.index(region)) }

// SameClass reports whether a and b are already known to be on the
// same side of the (eventually completed) loop.
func (r *RegionUF) SameClass(a, b core.Region) bool {
	return r.uf.Connected(r.index(a), r.index(b))
}

// Union merges a's and b's classes. It reports merged=false when they
// were already in one class.
func (r *RegionUF) Union(a, b core.Region) (merged bool) {
	_, ok := r.uf.Link(r.index(a), r.index(b))
	return ok
}
