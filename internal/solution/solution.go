// Package solution holds the immutable snapshot a completed solve
// produces: a copy of the final edge assignment, detached from the
// mutable, journaled Engine that built it.
package solution

import (
	"srither/internal/core"
	"srither/internal/geometry"
)

// Solution is a read-only copy of one fully-decided side-map.
type Solution struct {
	geo   *geometry.Geometry
	sides []core.Side
}

// New snapshots side(e) for every edge of geo via side.
func New(geo *geometry.Geometry, side func(core.Edge) core.Side) *Solution {
	s := &Solution{geo: geo, sides: make([]core.Side, geo.EdgeCount())}
	geo.AllEdges(func(e core.Edge) {
		s.sides[geo.EdgeIndex(e)] = side(e)
	})
	return s
}

// Side returns the decided assignment of e.
func (s *Solution) Side(e core.Edge) core.Side { return s.sides[s.geo.EdgeIndex(e)] }

// Geometry exposes the shared neighborhood tables.
func (s *Solution) Geometry() *geometry.Geometry { return s.geo }
