package grid

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/topology"
)

// Visited reports whether a carving algorithm has reached the cell.
func (c *Cell) Visited() bool {
	return c.visited
}

// MarkVisited sets the visited flag. It never clears it.
func (c *Cell) MarkVisited() {
	c.visited = true
}

// Walls returns the walls still standing.
func (c *Cell) Walls() topology.WallSet {
	return c.walls
}

// HasWall reports whether wall d is still standing.
func (c *Cell) HasWall(d topology.Direction) bool {
	return c.walls.Has(d)
}

// RemoveWall removes wall d. Removing an absent wall is a no-op.
func (c *Cell) RemoveWall(d topology.Direction) {
	c.walls = c.walls.Remove(d)
}

// Neighbors returns every cell adjacent to c in g.
func (c *Cell) Neighbors(g *Grid) []*Cell {
	return g.neighbors(c)
}

// UnvisitedNeighbors filters the cached neighbour list by the current
// visited flags. The cache is never pruned; it is re-filtered on each call.
func (c *Cell) UnvisitedNeighbors(g *Grid) []*Cell {
	all := g.neighbors(c)
	out := make([]*Cell, 0, len(all))
	for _, n := range all {
		if !n.visited {
			out = append(out, n)
		}
	}
	return out
}

// RandomNeighbor picks uniformly among all neighbours, visited or not.
// Returns ErrNoNeighbors for an isolated cell (a one-cell grid).
func (c *Cell) RandomNeighbor(g *Grid, rng Rand) (*Cell, error) {
	all := g.neighbors(c)
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoNeighbors, c.Coord)
	}
	return all[rng.Intn(len(all))], nil
}

// RandomUnvisitedNeighbor picks uniformly among the unvisited neighbours.
// The second result is false when none remain.
func (c *Cell) RandomUnvisitedNeighbor(g *Grid, rng Rand) (*Cell, bool) {
	all := g.neighbors(c)
	count := 0
	for _, n := range all {
		if !n.visited {
			count++
		}
	}
	if count == 0 {
		return nil, false
	}
	k := rng.Intn(count)
	for _, n := range all {
		if n.visited {
			continue
		}
		if k == 0 {
			return n, true
		}
		k--
	}

	return nil, false
}
