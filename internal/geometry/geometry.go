// Package geometry precomputes the neighborhood tables a Slither Link
// solver consults on every deduction: the edges around a cell, the
// edges around a vertex, the two regions an edge separates, and the
// four corner vertices of a cell. Everything here is pure and
// read-only once built, computed once and indexed into for the life
// of the process.
package geometry

import "srither/internal/core"

// Geometry holds the precomputed neighborhood tables for one puzzle
// shape (Rows x Cols). Build once per Puzzle and share across the
// solver's side-map, union-finds and propagator.
type Geometry struct {
	Rows, Cols int

	numH, numV int // horizontal / vertical edge counts

	edgesOfCell   [][4]core.Edge   // indexed by CellIndex
	cornersOfCell [][4]core.Vertex // indexed by CellIndex
	edgesOfVertex [][]core.Edge    // indexed by VertexIndex, len 2 or 3 or 4
	regionsOfEdge [][2]core.Region // indexed by EdgeIndex
}

// New builds the Geometry for an R x C grid.
func New(rows, cols int) *Geometry {
	g := &Geometry{
		Rows: rows,
		Cols: cols,
		numH: (rows + 1) * cols,
		numV: rows * (cols + 1),
	}

	nCells := rows * cols
	g.edgesOfCell = make([][4]core.Edge, nCells)
	g.cornersOfCell = make([][4]core.Vertex, nCells)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			g.edgesOfCell[idx] = [4]core.Edge{
				{Orientation: core.Horizontal, Row: r, Col: c},     // top
				{Orientation: core.Horizontal, Row: r + 1, Col: c}, // bottom
				{Orientation: core.Vertical, Row: r, Col: c},       // left
				{Orientation: core.Vertical, Row: r, Col: c + 1},   // right
			}
			g.cornersOfCell[idx] = [4]core.Vertex{
				{Row: r, Col: c},
				{Row: r, Col: c + 1},
				{Row: r + 1, Col: c},
				{Row: r + 1, Col: c + 1},
			}
		}
	}

	nVerts := (rows + 1) * (cols + 1)
	g.edgesOfVertex = make([][]core.Edge, nVerts)
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			idx := r*(cols+1) + c
			var edges []core.Edge
			if c-1 >= 0 {
				edges = append(edges, core.Edge{Orientation: core.Horizontal, Row: r, Col: c - 1})
			}
			if c < cols {
				edges = append(edges, core.Edge{Orientation: core.Horizontal, Row: r, Col: c})
			}
			if r-1 >= 0 {
				edges = append(edges, core.Edge{Orientation: core.Vertical, Row: r - 1, Col: c})
			}
			if r < rows {
				edges = append(edges, core.Edge{Orientation: core.Vertical, Row: r, Col: c})
			}
			g.edgesOfVertex[idx] = edges
		}
	}

	g.regionsOfEdge = make([][2]core.Region, g.numH+g.numV)
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			above := core.Outside
			if r-1 >= 0 {
				above = core.RegionOf(core.Cell{Row: r - 1, Col: c})
			}
			below := core.Outside
			if r < rows {
				below = core.RegionOf(core.Cell{Row: r, Col: c})
			}
			g.regionsOfEdge[g.HIndex(r, c)] = [2]core.Region{above, below}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			left := core.Outside
			if c-1 >= 0 {
				left = core.RegionOf(core.Cell{Row: r, Col: c - 1})
			}
			right := core.Outside
			if c < cols {
				right = core.RegionOf(core.Cell{Row: r, Col: c})
			}
			g.regionsOfEdge[g.VIndex(r, c)] = [2]core.Region{left, right}
		}
	}

	return g
}

// CellIndex linearizes a Cell into [0, Rows*Cols).
func (g *Geometry) CellIndex(c core.Cell) int { return c.Row*g.Cols + c.Col }

// VertexIndex linearizes a Vertex into [0, (Rows+1)*(Cols+1)).
func (g *Geometry) VertexIndex(v core.Vertex) int { return v.Row*(g.Cols+1) + v.Col }

// HIndex linearizes a Horizontal edge into [0, numH).
func (g *Geometry) HIndex(row, col int) int { return row*g.Cols + col }

// VIndex linearizes a Vertical edge into [numH, numH+numV).
func (g *Geometry) VIndex(row, col int) int { return g.numH + row*(g.Cols+1) + col }

// EdgeIndex linearizes any Edge into [0, EdgeCount()).
func (g *Geometry) EdgeIndex(e core.Edge) int {
	if e.Orientation == core.Horizontal {
		return g.HIndex(e.Row, e.Col)
	}
	return g.VIndex(e.Row, e.Col)
}

// EdgeCount returns the total number of lattice edges.
func (g *Geometry) EdgeCount() int { return g.numH + g.numV }

// CellCount returns Rows*Cols.
func (g *Geometry) CellCount() int { return g.Rows * g.Cols }

// VertexCount returns (Rows+1)*(Cols+1).
func (g *Geometry) VertexCount() int { return (g.Rows + 1) * (g.Cols + 1) }

// EdgesOfCell returns the 4 edges bordering c, in top/bottom/left/right order.
func (g *Geometry) EdgesOfCell(c core.Cell) [4]core.Edge { return g.edgesOfCell[g.CellIndex(c)] }

// CornersOfCell returns the 4 corner vertices of c, in TL/TR/BL/BR order.
func (g *Geometry) CornersOfCell(c core.Cell) [4]core.Vertex {
	return g.cornersOfCell[g.CellIndex(c)]
}

// EdgesOfVertex returns the 2-4 edges incident to v.
func (g *Geometry) EdgesOfVertex(v core.Vertex) []core.Edge {
	return g.edgesOfVertex[g.VertexIndex(v)]
}

// RegionsOfEdge returns the two regions e separates. For a Horizontal
// edge the order is (above, below); for Vertical it is (left, right).
// One side is core.Outside when e lies on the grid boundary.
func (g *Geometry) RegionsOfEdge(e core.Edge) (core.Region, core.Region) {
	pair := g.regionsOfEdge[g.EdgeIndex(e)]
	return pair[0], pair[1]
}

// AllEdges invokes fn once per lattice edge.
func (g *Geometry) AllEdges(fn func(core.Edge)) {
	for r := 0; r <= g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fn(core.Edge{Orientation: core.Horizontal, Row: r, Col: c})
		}
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c <= g.Cols; c++ {
			fn(core.Edge{Orientation: core.Vertical, Row: r, Col: c})
		}
	}
}

// AllCells invokes fn once per interior cell.
func (g *Geometry) AllCells(fn func(core.Cell)) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fn(core.Cell{Row: r, Col: c})
		}
	}
}

// AllVertices invokes fn once per lattice vertex.
func (g *Geometry) AllVertices(fn func(core.Vertex)) {
	for r := 0; r <= g.Rows; r++ {
		for c := 0; c <= g.Cols; c++ {
			fn(core.Vertex{Row: r, Col: c})
		}
	}
}
