package topology

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrUnknownTopology indicates a Kind or name with no registered Topology.
var ErrUnknownTopology = errors.New("topology: unknown topology")

// Coord is a logical cell address.
type Coord struct {
	X, Y int
}

// Add returns c moved by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{X: c.X + o.DX, Y: c.Y + o.DY}
}

// Sub returns the offset that moves b onto c (c - b).
func (c Coord) Sub(b Coord) Offset {
	return Offset{DX: c.X - b.X, DY: c.Y - b.Y}
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Offset is a relative move between two coordinates.
type Offset struct {
	DX, DY int
}

// Neg returns the reverse move.
func (o Offset) Neg() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

// Direction names one wall of a cell. Square cells use Top, Right, Bottom
// and Left; hexagonal cells use TopRight, Right, BottomRight, BottomLeft,
// Left and TopLeft. Right and Left are shared by both layouts.
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
	TopRight
	BottomRight
	BottomLeft
	TopLeft

	numDirections
)

var directionNames = [numDirections]string{
	Top:         "top",
	Right:       "right",
	Bottom:      "bottom",
	Left:        "left",
	TopRight:    "top_right",
	BottomRight: "bottom_right",
	BottomLeft:  "bottom_left",
	TopLeft:     "top_left",
}

var opposites = [numDirections]Direction{
	Top:         Bottom,
	Right:       Left,
	Bottom:      Top,
	Left:        Right,
	TopRight:    BottomLeft,
	BottomRight: TopLeft,
	BottomLeft:  TopRight,
	TopLeft:     BottomRight,
}

// Opposite returns the wall facing d on the neighbouring cell.
func (d Direction) Opposite() Direction {
	if d >= numDirections {
		return d
	}
	return opposites[d]
}

// String returns the snake_case name of d.
func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// WallSet is a bitset of present walls, one bit per Direction.
type WallSet uint8

// NewWallSet returns a set containing dirs.
func NewWallSet(dirs ...Direction) WallSet {
	var w WallSet
	for _, d := range dirs {
		w |= 1 << d
	}
	return w
}

// Has reports whether the wall d is present.
func (w WallSet) Has(d Direction) bool {
	return w&(1<<d) != 0
}

// Remove returns w without d. Removing an absent wall is a no-op.
func (w WallSet) Remove(d Direction) WallSet {
	return w &^ (1 << d)
}

// Len returns the number of present walls.
func (w WallSet) Len() int {
	return bits.OnesCount8(uint8(w))
}

// Directions lists the present walls in Direction order.
func (w WallSet) Directions() []Direction {
	out := make([]Direction, 0, w.Len())
	for d := Direction(0); d < numDirections; d++ {
		if w.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String joins the present wall names with "|".
func (w WallSet) String() string {
	dirs := w.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return strings.Join(names, "|")
}

// Kind selects a Topology.
type Kind int

const (
	// Square is the 4-neighbour axis-aligned layout.
	Square Kind = iota
	// Hexagon is the 6-neighbour doubled-coordinate layout.
	Hexagon
)

// String returns "square" or "hexagon".
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Hexagon:
		return "hexagon"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "sq":
		return Square, nil
	case "hexagon", "hex":
		return Hexagon, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
}

// Kinds lists every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Square, Hexagon}
}
