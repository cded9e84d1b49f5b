package grid

import "github.com/katalvlaran/lvmaze/topology"

// Rand is the injected uniform source. Intn returns a value in [0, n) and
// is only called with n > 0.
type Rand interface {
	Intn(n int) int
}

// Grid maps coordinates to cells for one width×height run of a Topology.
// Width and Height are the dimensions Build was called with; for a
// hexagonal grid Width is already doubled by the caller.
type Grid struct {
	Width, Height int

	topo  topology.Topology
	cells map[topology.Coord]*Cell
	order []*Cell // row-major, bottom row first
}

// Cell is one node of the maze. It is owned by the Grid that built it.
type Cell struct {
	// Coord is the identity of the cell.
	Coord topology.Coord

	visited bool
	walls   topology.WallSet

	neighbors []*Cell
	cached    bool
}

// Passage is one carved edge between two adjacent cells, stored with A
// before B in the grid's canonical order.
type Passage struct {
	A, B topology.Coord
}
