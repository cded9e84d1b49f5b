package grid

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/topology"
)

// Build creates a fully walled cell for every coordinate that topo accepts
// in a width×height rectangle.
// Returns ErrNilTopology if topo is nil and ErrInvalidDimensions if the
// dimensions are non-positive or topo does not support them.
// Complexity: O(W×H) time and memory.
func Build(width, height int, topo topology.Topology) (*Grid, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if width <= 0 || height <= 0 || !topo.Supports(width, height) {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrInvalidDimensions, topo.Kind(), width, height)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		topo:   topo,
		cells:  make(map[topology.Coord]*Cell, width*height),
	}
	walls := topo.AllWalls()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := topology.Coord{X: x, Y: y}
			if !topo.IsValid(c, width, height) {
				continue
			}
			cell := &Cell{Coord: c, walls: walls}
			g.cells[c] = cell
			g.order = append(g.order, cell)
		}
	}

	return g, nil
}

// Topology returns the layout the grid was built with.
func (g *Grid) Topology() topology.Topology {
	return g.topo
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.order)
}

// Cells returns every cell in row-major order. The slice is shared.
func (g *Grid) Cells() []*Cell {
	return g.order
}

// Has reports whether c is a cell of the grid.
func (g *Grid) Has(c topology.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Get returns the cell at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Get(c topology.Coord) (*Cell, error) {
	cell, ok := g.cells[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return cell, nil
}

// NeighborsOf returns the cells adjacent to c in topology offset order.
// The result is cached on the cell and shared; callers must not modify it.
// Complexity: O(d) the first time, O(1) afterwards.
func (g *Grid) NeighborsOf(c topology.Coord) ([]*Cell, error) {
	cell, err := g.Get(c)
	if err != nil {
		return nil, err
	}
	return g.neighbors(cell), nil
}

// neighbors fills the per-cell cache on first use.
func (g *Grid) neighbors(cell *Cell) []*Cell {
	if cell.cached {
		return cell.neighbors
	}
	offs := g.topo.Offsets()
	out := make([]*Cell, 0, len(offs))
	for _, o := range offs {
		nc := cell.Coord.Add(o)
		if !g.topo.IsValid(nc, g.Width, g.Height) {
			continue
		}
		if n, ok := g.cells[nc]; ok {
			out = append(out, n)
		}
	}
	cell.neighbors = out
	cell.cached = true

	return out
}

// RandomCell picks uniformly among the canonical cells reached from (0,0)
// by the topology stride: any cell for Square, an even/even cell for
// Hexagon. The chosen coordinate always exists.
// Complexity: O(1).
func (g *Grid) RandomCell(rng Rand) *Cell {
	s := g.topo.Stride()
	nx := (g.Width + s - 1) / s
	ny := (g.Height + s - 1) / s
	c := topology.Coord{X: s * rng.Intn(nx), Y: s * rng.Intn(ny)}

	return g.cells[c]
}

// Visited counts cells whose visited flag is set.
func (g *Grid) Visited() int {
	n := 0
	for _, c := range g.order {
		if c.visited {
			n++
		}
	}
	return n
}

// Passages lists the carved edges: pairs of adjacent cells whose shared
// wall has been removed. Each edge appears once, ordered by the grid's
// row-major cell order.
// Complexity: O(W×H×d).
func (g *Grid) Passages() []Passage {
	offs, dirs := g.topo.Offsets(), g.topo.Directions()
	var out []Passage
	for _, cell := range g.order {
		for i, o := range offs {
			nc := cell.Coord.Add(o)
			if !g.Has(nc) || cell.walls.Has(dirs[i]) {
				continue
			}
			if !before(cell.Coord, nc) {
				continue
			}
			out = append(out, Passage{A: cell.Coord, B: nc})
		}
	}
	return out
}

// before orders coordinates row-major, matching Build.
func before(a, b topology.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
