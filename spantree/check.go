package spantree

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/topology"
)

// Analyze builds the Report for g without judging it.
func Analyze(g *grid.Grid) Report {
	cells := g.Cells()
	ds := newDisjointSet(len(cells))
	for _, c := range cells {
		ds.add(c.Coord)
	}

	rep := Report{Cells: len(cells), Acyclic: true}
	for _, p := range g.Passages() {
		rep.Edges++
		if !ds.union(p.A, p.B) {
			rep.Acyclic = false
		}
	}
	rep.Components = ds.sets

	return rep
}

// Check returns the Report for g and an error if the passages are not a
// spanning tree: ErrCycle first, then ErrDisconnected, then ErrEdgeCount.
func Check(g *grid.Grid) (Report, error) {
	rep := Analyze(g)
	switch {
	case !rep.Acyclic:
		return rep, ErrCycle
	case rep.Components != 1:
		return rep, fmt.Errorf("%w: %d components", ErrDisconnected, rep.Components)
	case rep.Edges != rep.Cells-1:
		return rep, fmt.Errorf("%w: %d edges for %d cells", ErrEdgeCount, rep.Edges, rep.Cells)
	}
	return rep, nil
}

// IsForest reports whether the passages of g contain no cycle. It holds
// for every grid left behind by a stopped run.
func IsForest(g *grid.Grid) bool {
	return Analyze(g).Acyclic
}

// Walk traverses passages depth-first from start and returns the cells in
// discovery order. Reaching an already discovered cell through anything
// other than the edge just taken means a cycle and yields ErrCycle.
// Returns grid.ErrOutOfBounds if start is not a cell.
func Walk(g *grid.Grid, start topology.Coord) ([]topology.Coord, error) {
	if _, err := g.Get(start); err != nil {
		return nil, err
	}
	adj := adjacency(g)

	type frame struct {
		at, parent topology.Coord
		root       bool
	}
	seen := map[topology.Coord]struct{}{start: {}}
	order := []topology.Coord{start}
	stack := []frame{{at: start, root: true}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range adj[f.at] {
			if !f.root && n == f.parent {
				continue
			}
			if _, ok := seen[n]; ok {
				return order, fmt.Errorf("%w: back edge %s→%s", ErrCycle, f.at, n)
			}
			seen[n] = struct{}{}
			order = append(order, n)
			stack = append(stack, frame{at: n, parent: f.at})
		}
	}

	return order, nil
}

// adjacency lists passage endpoints per cell in passage order.
func adjacency(g *grid.Grid) map[topology.Coord][]topology.Coord {
	adj := make(map[topology.Coord][]topology.Coord, g.Len())
	for _, p := range g.Passages() {
		adj[p.A] = append(adj[p.A], p.B)
		adj[p.B] = append(adj[p.B], p.A)
	}
	return adj
}
