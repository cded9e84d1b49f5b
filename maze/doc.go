// Package maze carves perfect mazes on a grid.Grid, one observable step at a time.
//
// What:
//
//   - RecursiveBacktracker: depth-first carving with an explicit stack.
//   - AldousBroder: random walk that yields a uniform spanning tree.
//   - Generator: a lazy, finite, non-restartable sequence of Step events,
//     pulled with Next or ranged over with Steps.
//   - Run: a driver loop with context cancellation, a step budget and a
//     per-step hook.
//
// Step events:
//
//	Every step names the Current cell, the Next cell when there is one and a
//	Kind hint for observers:
//	  - Carved:        a wall between Current and Next was removed.
//	  - Visiting:      the walk moved to an already visited Next (Aldous-Broder).
//	  - BacktrackDone: Current has no unvisited neighbour left and was dropped
//	                   from the stack (recursive backtracker).
//
// Stopping:
//
//	Stopping between two steps is always safe. The grid then holds a forest
//	of carved passages that is acyclic but not yet spanning. A generator
//	cannot be restarted; build a fresh grid.Grid for the next run.
//
// Determinism:
//
//	All randomness comes from the grid.Rand passed to New. NewRand(seed)
//	gives a reproducible source; seed==0 maps to a fixed default seed.
//
// Complexity (N = cells, d = neighbours per cell):
//
//   - RecursiveBacktracker: 2N-1 steps, O(N·d) time, O(N) stack.
//   - AldousBroder:         expected O(N log N) steps on grids, unbounded worst case.
//
// Errors:
//
//   - ErrUnknownAlgorithm: Algorithm or name not registered.
//   - ErrNilGrid, ErrNilRemover, ErrNilRand: missing collaborator in New.
//   - grid.ErrNotAdjacent, grid.ErrNoNeighbors: surfaced through Generator.Err.
package maze
