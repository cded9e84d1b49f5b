package spantree

import "errors"

var (
	// ErrCycle indicates the carved passages contain a cycle.
	ErrCycle = errors.New("spantree: carved passages contain a cycle")
	// ErrDisconnected indicates some cells are unreachable from others.
	ErrDisconnected = errors.New("spantree: carved passages are disconnected")
	// ErrEdgeCount indicates the passage count differs from cells-1.
	ErrEdgeCount = errors.New("spantree: passage count is not cells-1")
)

// Report describes the passage graph of one grid.
type Report struct {
	// Cells is the number of cells of the grid.
	Cells int
	// Edges is the number of carved passages.
	Edges int
	// Components is the number of connected components, counting each
	// isolated cell as its own component.
	Components int
	// Acyclic is false once any passage closed a cycle.
	Acyclic bool
}

// Spanning reports whether the passages form a spanning tree.
func (r Report) Spanning() bool {
	return r.Acyclic && r.Components == 1 && r.Edges == r.Cells-1
}
