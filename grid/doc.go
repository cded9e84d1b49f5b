// Package grid owns the cells of one maze run.
//
// What:
//
//   - Grid maps every valid Coord of a Topology to a Cell, built once.
//   - Cell carries a visited flag and a WallSet, starting fully walled.
//   - WallRemover opens the wall pair between two adjacent cells.
//
// Lifecycle:
//
//	A Grid is built fresh for each generation and discarded afterwards.
//	Membership never changes after Build, so neighbour lists are computed
//	once per cell and cached. Visited only goes false→true and walls only
//	go present→removed.
//
// Randomness:
//
//	Every random choice takes a Rand supplied by the caller; the package
//	holds no global random state. *math/rand.Rand satisfies Rand.
//
// Complexity:
//
//   - Build:       O(W×H) time and memory.
//   - NeighborsOf: O(d) on first call per cell, O(1) afterwards (d = 4 or 6).
//   - Passages:    O(W×H×d).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height non-positive, or unsupported by the topology.
//   - ErrOutOfBounds:       coordinate is not a cell of the grid.
//   - ErrNotAdjacent:       WallRemover got two cells that are not neighbours.
//   - ErrNoNeighbors:       random neighbour requested for an isolated cell.
package grid
