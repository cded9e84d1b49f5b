package grid_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/topology"
)

// seqRand replays a fixed sequence of picks, each reduced modulo n.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}

func mustTopo(t *testing.T, k topology.Kind) topology.Topology {
	t.Helper()
	topo, err := topology.ForKind(k)
	require.NoError(t, err)
	return topo
}

func mustBuild(t *testing.T, w, h int, k topology.Kind) *grid.Grid {
	t.Helper()
	g, err := grid.Build(w, h, mustTopo(t, k))
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies that Build rejects non-positive and unsupported dimensions.
func TestBuild_Errors(t *testing.T) {
	sq := mustTopo(t, topology.Square)
	hex := mustTopo(t, topology.Hexagon)
	cases := []struct {
		name string
		w, h int
		topo topology.Topology
		err  error
	}{
		{"ZeroWidth", 0, 3, sq, grid.ErrInvalidDimensions},
		{"NegativeHeight", 3, -1, sq, grid.ErrInvalidDimensions},
		{"HexSingleColumn", 1, 4, hex, grid.ErrInvalidDimensions},
		{"NilTopology", 3, 3, nil, grid.ErrNilTopology},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Build(tc.w, tc.h, tc.topo)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

// TestBuild_Square checks cardinality and initial cell state on a 4×3 square grid.
func TestBuild_Square(t *testing.T) {
	g := mustBuild(t, 4, 3, topology.Square)
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, topology.Square, g.Topology().Kind())
	for _, c := range g.Cells() {
		assert.False(t, c.Visited())
		assert.Equal(t, 4, c.Walls().Len(), "cell %s must start fully walled", c.Coord)
	}
	assert.Empty(t, g.Passages())
}

// TestBuild_HexagonDoubled checks that a 10×10 hexagon request, doubled to
// 20×10 by the caller, yields exactly the 100 coordinates with x%2 == y%2.
func TestBuild_HexagonDoubled(t *testing.T) {
	g := mustBuild(t, 20, 10, topology.Hexagon)
	require.Equal(t, 100, g.Len())
	for _, c := range g.Cells() {
		assert.Equal(t, c.Coord.X%2, c.Coord.Y%2, "cell %s breaks parity", c.Coord)
		assert.Equal(t, 6, c.Walls().Len())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			want := x%2 == y%2
			assert.Equal(t, want, g.Has(topology.Coord{X: x, Y: y}), "(%d,%d)", x, y)
		}
	}
}

// TestGet_OutOfBounds verifies the OutOfBounds contract error.
func TestGet_OutOfBounds(t *testing.T) {
	g := mustBuild(t, 6, 4, topology.Hexagon)
	_, err := g.Get(topology.Coord{X: 1, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds, "wrong parity")
	_, err = g.Get(topology.Coord{X: 6, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds, "outside rectangle")
	_, err = g.NeighborsOf(topology.Coord{X: -1, Y: -1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	c, err := g.Get(topology.Coord{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, topology.Coord{X: 3, Y: 1}, c.Coord)
}

//----------------------------------------------------------------------------//
// Neighbours
//----------------------------------------------------------------------------//

// TestNeighborsOf_Corners checks boundary handling on a 3×3 square grid.
func TestNeighborsOf_Corners(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	cases := []struct {
		at   topology.Coord
		want []topology.Coord
	}{
		{topology.Coord{X: 0, Y: 0}, []topology.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}}},
		{topology.Coord{X: 1, Y: 1}, []topology.Coord{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		{topology.Coord{X: 2, Y: 2}, []topology.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}}},
	}
	for _, tc := range cases {
		ns, err := g.NeighborsOf(tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, coords(ns), "neighbors of %s", tc.at)
	}
}

// TestNeighborsOf_HexInterior checks the six doubled-coordinate offsets.
func TestNeighborsOf_HexInterior(t *testing.T) {
	g := mustBuild(t, 10, 5, topology.Hexagon)
	ns, err := g.NeighborsOf(topology.Coord{X: 4, Y: 2})
	require.NoError(t, err)
	want := []topology.Coord{{X: 5, Y: 3}, {X: 6, Y: 2}, {X: 5, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	assert.Equal(t, want, coords(ns))
}

// TestNeighborsOf_Symmetric verifies B∈N(A) ⇔ A∈N(B) for both layouts.
func TestNeighborsOf_Symmetric(t *testing.T) {
	for _, k := range topology.Kinds() {
		g := mustBuild(t, 9, 7, k)
		for _, a := range g.Cells() {
			for _, b := range a.Neighbors(g) {
				assert.Contains(t, coords(b.Neighbors(g)), a.Coord, "%s: %s→%s not symmetric", k, a.Coord, b.Coord)
			}
		}
	}
}

// TestNeighborsOf_Cached checks that repeated calls return the same backing slice.
func TestNeighborsOf_Cached(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	a, _ := g.NeighborsOf(topology.Coord{X: 1, Y: 1})
	b, _ := g.NeighborsOf(topology.Coord{X: 1, Y: 1})
	require.Len(t, b, 4)
	assert.Same(t, &a[0], &b[0])
}

// TestUnvisitedNeighbors_FilterOnRead checks that visits made after the cache
// is filled are still excluded.
func TestUnvisitedNeighbors_FilterOnRead(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	center, _ := g.Get(topology.Coord{X: 1, Y: 1})
	require.Len(t, center.UnvisitedNeighbors(g), 4)

	top, _ := g.Get(topology.Coord{X: 1, Y: 2})
	top.MarkVisited()
	left, _ := g.Get(topology.Coord{X: 0, Y: 1})
	left.MarkVisited()

	got := coords(center.UnvisitedNeighbors(g))
	assert.Equal(t, []topology.Coord{{X: 2, Y: 1}, {X: 1, Y: 0}}, got)
	assert.Len(t, center.Neighbors(g), 4, "cached superset is untouched")
}

// TestRandomNeighbor covers uniform pick and the isolated-cell error.
func TestRandomNeighbor(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	center, _ := g.Get(topology.Coord{X: 1, Y: 1})
	n, err := center.RandomNeighbor(g, &seqRand{seq: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, topology.Coord{X: 1, Y: 0}, n.Coord)

	single := mustBuild(t, 1, 1, topology.Square)
	only := single.Cells()[0]
	_, err = only.RandomNeighbor(single, &seqRand{seq: []int{0}})
	assert.ErrorIs(t, err, grid.ErrNoNeighbors)
}

// TestRandomUnvisitedNeighbor picks among unvisited only and reports exhaustion.
func TestRandomUnvisitedNeighbor(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	center, _ := g.Get(topology.Coord{X: 1, Y: 1})
	for _, n := range center.Neighbors(g)[:3] {
		n.MarkVisited()
	}
	n, ok := center.RandomUnvisitedNeighbor(g, &seqRand{seq: []int{5}})
	require.True(t, ok)
	assert.Equal(t, topology.Coord{X: 0, Y: 1}, n.Coord)

	n.MarkVisited()
	_, ok = center.RandomUnvisitedNeighbor(g, &seqRand{seq: []int{0}})
	assert.False(t, ok)
}

// TestRandomCell verifies that the start cell always exists, covers every
// square cell and only even/even hexagon cells.
func TestRandomCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sq := mustBuild(t, 3, 3, topology.Square)
	seen := make(map[topology.Coord]struct{})
	for i := 0; i < 500; i++ {
		c := sq.RandomCell(rng)
		require.NotNil(t, c)
		seen[c.Coord] = struct{}{}
	}
	assert.Len(t, seen, 9, "square start must reach any cell")

	hex := mustBuild(t, 9, 5, topology.Hexagon)
	for i := 0; i < 500; i++ {
		c := hex.RandomCell(rng)
		require.NotNil(t, c)
		assert.Zero(t, c.Coord.X%2)
		assert.Zero(t, c.Coord.Y%2)
	}
}

//----------------------------------------------------------------------------//
// WallRemover
//----------------------------------------------------------------------------//

// TestWallRemover_Square checks the direction pairs for all four offsets.
func TestWallRemover_Square(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	wr, err := grid.NewWallRemover(g.Topology())
	require.NoError(t, err)

	center, _ := g.Get(topology.Coord{X: 1, Y: 1})
	cases := []struct {
		at       topology.Coord
		fromWall topology.Direction
		toWall   topology.Direction
	}{
		{topology.Coord{X: 1, Y: 2}, topology.Top, topology.Bottom},
		{topology.Coord{X: 2, Y: 1}, topology.Right, topology.Left},
		{topology.Coord{X: 1, Y: 0}, topology.Bottom, topology.Top},
		{topology.Coord{X: 0, Y: 1}, topology.Left, topology.Right},
	}
	for _, tc := range cases {
		other, _ := g.Get(tc.at)
		require.NoError(t, wr.RemoveBetween(center, other))
		assert.False(t, center.HasWall(tc.fromWall), "center keeps %s", tc.fromWall)
		assert.False(t, other.HasWall(tc.toWall), "%s keeps %s", tc.at, tc.toWall)
		assert.Equal(t, 3, other.Walls().Len())
	}
	assert.Zero(t, center.Walls().Len())
	assert.Equal(t, 4, wr.Carved())
	assert.Len(t, g.Passages(), 4)
}

// TestWallRemover_Hexagon checks the direction pairs for all six offsets.
func TestWallRemover_Hexagon(t *testing.T) {
	g := mustBuild(t, 10, 5, topology.Hexagon)
	wr, err := grid.NewWallRemover(g.Topology())
	require.NoError(t, err)

	center, _ := g.Get(topology.Coord{X: 4, Y: 2})
	topo := g.Topology()
	for i, o := range topo.Offsets() {
		other, err := g.Get(center.Coord.Add(o))
		require.NoError(t, err)
		require.NoError(t, wr.RemoveBetween(center, other))
		d := topo.Directions()[i]
		assert.False(t, center.HasWall(d), "center keeps %s", d)
		assert.False(t, other.HasWall(d.Opposite()), "neighbor keeps %s", d.Opposite())
	}
	assert.Zero(t, center.Walls().Len())
	assert.Len(t, g.Passages(), 6)
}

// TestWallRemover_NotAdjacent verifies the contract error leaves cells untouched.
func TestWallRemover_NotAdjacent(t *testing.T) {
	g := mustBuild(t, 3, 3, topology.Square)
	wr, _ := grid.NewWallRemover(g.Topology())
	a, _ := g.Get(topology.Coord{X: 0, Y: 0})
	b, _ := g.Get(topology.Coord{X: 1, Y: 1})

	err := wr.RemoveBetween(a, b)
	assert.ErrorIs(t, err, grid.ErrNotAdjacent)
	assert.Equal(t, 4, a.Walls().Len())
	assert.Equal(t, 4, b.Walls().Len())
	assert.Zero(t, wr.Carved())

	_, err = grid.NewWallRemover(nil)
	assert.ErrorIs(t, err, grid.ErrNilTopology)
}

// TestRemoveWall_Idempotent checks that removing an absent wall is a no-op.
func TestRemoveWall_Idempotent(t *testing.T) {
	g := mustBuild(t, 2, 1, topology.Square)
	c := g.Cells()[0]
	c.RemoveWall(topology.Left)
	c.RemoveWall(topology.Left)
	assert.Equal(t, 3, c.Walls().Len())
	assert.False(t, c.HasWall(topology.Left))
}

func coords(cells []*grid.Cell) []topology.Coord {
	out := make([]topology.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord
	}
	return out
}
