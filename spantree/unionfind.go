package spantree

import "github.com/katalvlaran/lvmaze/topology"

// disjointSet is union-find over coordinates with path compression and
// union by rank.
type disjointSet struct {
	parent map[topology.Coord]topology.Coord
	rank   map[topology.Coord]int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	return &disjointSet{
		parent: make(map[topology.Coord]topology.Coord, n),
		rank:   make(map[topology.Coord]int, n),
	}
}

// add registers c as a singleton set.
func (d *disjointSet) add(c topology.Coord) {
	if _, ok := d.parent[c]; ok {
		return
	}
	d.parent[c] = c
	d.sets++
}

// find walks to the root, halving the path on the way.
func (d *disjointSet) find(c topology.Coord) topology.Coord {
	for d.parent[c] != c {
		d.parent[c] = d.parent[d.parent[c]]
		c = d.parent[c]
	}
	return c
}

// union merges the sets of a and b. It returns false if they were already
// in the same set.
func (d *disjointSet) union(a, b topology.Coord) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.sets--

	return true
}
