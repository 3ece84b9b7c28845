package propagate

import "srither/internal/core"

// applyCrossSweep enforces the same-region/cross rule: any Unknown
// edge whose two bordering regions are already in the same cell-region
// class must be Cross (a Line there would separate cells already
// proven to be on the same side of the loop). It runs as a full pass
// whenever a region union could have created new same-class pairs; a
// single Engine.Assign call can chain several such passes if each one
// merges further classes.
func (e *Engine) applyCrossSweep() error {
	var found error
	e.Geo.AllEdges(func(edge core.Edge) {
		if found != nil {
			return
		}
		if e.Sides.Side(edge) != core.Unknown {
			return
		}
		x, y := e.Geo.RegionsOfEdge(edge)
		if !e.Regions.SameClass(x, y) {
			return
		}
		if err := e.apply(edge, core.Cross); err != nil {
			found = err
		}
	})
	return found
}
