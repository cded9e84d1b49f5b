package grid

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/topology"
)

// wallPair is the wall removed on each side of one carve.
type wallPair struct {
	from, to topology.Direction
}

// WallRemover opens walls between adjacent cells of one topology.
// The lookup table is keyed by the exact offset a.Coord - b.Coord.
type WallRemover struct {
	table  map[topology.Offset]wallPair
	carved int
}

// NewWallRemover precomputes the offset table for topo: one entry per
// neighbour offset, mapping it to (wall on a, wall on b).
// Complexity: O(d).
func NewWallRemover(topo topology.Topology) (*WallRemover, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	offs, dirs := topo.Offsets(), topo.Directions()
	table := make(map[topology.Offset]wallPair, len(offs))
	for i, o := range offs {
		// b sits at a+o, so a-b is -o.
		table[o.Neg()] = wallPair{from: dirs[i], to: dirs[i].Opposite()}
	}
	return &WallRemover{table: table}, nil
}

// RemoveBetween clears the wall of a facing b and the wall of b facing a.
// Returns ErrNotAdjacent if the offset matches no neighbour offset; that is
// a contract violation by the caller and leaves both cells untouched.
// Complexity: O(1).
func (r *WallRemover) RemoveBetween(a, b *Cell) error {
	p, ok := r.table[a.Coord.Sub(b.Coord)]
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a.Coord, b.Coord)
	}
	a.RemoveWall(p.from)
	b.RemoveWall(p.to)
	r.carved++

	return nil
}

// Carved returns how many RemoveBetween calls succeeded.
func (r *WallRemover) Carved() int {
	return r.carved
}
