package topology

import "fmt"

// Topology fixes the neighbour structure of one cell layout.
//
// Offsets and Directions are parallel: Directions()[i] is the wall a cell
// opens toward the neighbour at Offsets()[i]. Both slices are shared and
// must not be modified by callers.
type Topology interface {
	// Kind identifies the layout.
	Kind() Kind
	// Offsets returns the neighbour offsets in enumeration order.
	Offsets() []Offset
	// Directions returns the wall facing each offset.
	Directions() []Direction
	// IsValid reports whether c addresses a cell in a width×height grid.
	IsValid(c Coord, width, height int) bool
	// Stride is the step between canonical cells along each axis.
	Stride() int
	// AllWalls is the wall set of a freshly built cell.
	AllWalls() WallSet
	// Supports reports whether a width×height grid of this layout is
	// connected under its own offsets.
	Supports(width, height int) bool
}

// registry is the interface table resolved once per grid build.
var registry = map[Kind]Topology{
	Square:  squareTopology{},
	Hexagon: hexTopology{},
}

// ForKind returns the Topology registered for k.
func ForKind(k Kind) (Topology, error) {
	t, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopology, k)
	}
	return t, nil
}

// inRect is the bounds check shared by all layouts.
func inRect(c Coord, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}
