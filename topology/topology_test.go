package topology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/topology"
)

// TestForKind verifies the interface table resolves both layouts and rejects unknown kinds.
func TestForKind(t *testing.T) {
	for _, k := range topology.Kinds() {
		topo, err := topology.ForKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, topo.Kind())
		assert.Len(t, topo.Directions(), len(topo.Offsets()), "offsets and directions must be parallel")
	}

	_, err := topology.ForKind(topology.Kind(42))
	assert.True(t, errors.Is(err, topology.ErrUnknownTopology))
}

// TestParseKind covers aliases, case folding and the error path.
func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want topology.Kind
	}{
		{"square", topology.Square},
		{"SQ", topology.Square},
		{" Hexagon ", topology.Hexagon},
		{"hex", topology.Hexagon},
	}
	for _, tc := range cases {
		got, err := topology.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := topology.ParseKind("triangle")
	assert.ErrorIs(t, err, topology.ErrUnknownTopology)
}

// TestOffsetsAreClosedUnderInverse checks that every offset has its reverse in the
// table and that the paired directions are opposites. Wall removal relies on it.
func TestOffsetsAreClosedUnderInverse(t *testing.T) {
	for _, k := range topology.Kinds() {
		topo, _ := topology.ForKind(k)
		offs, dirs := topo.Offsets(), topo.Directions()
		for i, o := range offs {
			j := indexOf(offs, o.Neg())
			require.GreaterOrEqual(t, j, 0, "%s: offset %v has no inverse", k, o)
			assert.Equal(t, dirs[i].Opposite(), dirs[j], "%s: %v vs %v", k, dirs[i], dirs[j])
		}
	}
}

// TestHexagonParity checks the doubled-coordinate validity rule.
func TestHexagonParity(t *testing.T) {
	hex, _ := topology.ForKind(topology.Hexagon)
	assert.True(t, hex.IsValid(topology.Coord{X: 2, Y: 4}, 10, 10))
	assert.True(t, hex.IsValid(topology.Coord{X: 1, Y: 3}, 10, 10))
	assert.False(t, hex.IsValid(topology.Coord{X: 2, Y: 3}, 10, 10))
	assert.False(t, hex.IsValid(topology.Coord{X: 10, Y: 0}, 10, 10), "out of bounds")
	assert.False(t, hex.IsValid(topology.Coord{X: -2, Y: 0}, 10, 10), "negative")
}

// TestSupports covers the degenerate single-column hexagon case.
func TestSupports(t *testing.T) {
	sq, _ := topology.ForKind(topology.Square)
	hex, _ := topology.ForKind(topology.Hexagon)

	assert.True(t, sq.Supports(1, 1))
	assert.False(t, sq.Supports(0, 5))
	assert.False(t, sq.Supports(5, -1))

	assert.True(t, hex.Supports(1, 1))
	assert.True(t, hex.Supports(7, 1))
	assert.True(t, hex.Supports(2, 9))
	assert.False(t, hex.Supports(1, 3))
}

// TestWallSet exercises the bitset helpers, including idempotent removal.
func TestWallSet(t *testing.T) {
	w := topology.NewWallSet(topology.Top, topology.Right, topology.Left)
	assert.Equal(t, 3, w.Len())
	assert.True(t, w.Has(topology.Right))
	assert.False(t, w.Has(topology.Bottom))

	w = w.Remove(topology.Right)
	w = w.Remove(topology.Right)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []topology.Direction{topology.Top, topology.Left}, w.Directions())
	assert.Equal(t, "top|left", w.String())
}

func indexOf(offs []topology.Offset, o topology.Offset) int {
	for i, v := range offs {
		if v == o {
			return i
		}
	}
	return -1
}
