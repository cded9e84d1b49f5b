package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive or unsupported width/height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive and supported by the topology")
	// ErrOutOfBounds indicates a coordinate that is not a cell of the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNotAdjacent indicates two cells whose offset matches no neighbour offset.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
	// ErrNoNeighbors indicates a cell with no neighbours at all.
	ErrNoNeighbors = errors.New("grid: cell has no neighbors")
	// ErrNilTopology indicates Build was called without a topology.
	ErrNilTopology = errors.New("grid: topology is nil")
)
