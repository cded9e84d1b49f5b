// Package spantree checks the carved passages of a grid.Grid against the
// perfect-maze invariant: the passages form a spanning tree of the cells.
//
// What:
//
//   - Check runs union-find over grid.Passages and reports cells, edges,
//     connected components and whether any passage closed a cycle.
//   - Walk is an iterative depth-first traversal over passages that visits
//     each reachable cell once and fails on a back edge.
//   - IsForest accepts partially carved grids (a stopped run) as long as
//     no cycle exists.
//
// A grid is perfect iff it is acyclic, has one component and
// edges == cells-1. Any two of those imply the third; Check verifies all.
//
// Complexity (N = cells, E = passages):
//
//   - Check:    O(N·d + E·α(N)) time, O(N) memory.
//   - Walk:     O(N + E) time, O(N) memory.
//
// Errors:
//
//   - ErrCycle:        a passage joins two cells already connected.
//   - ErrDisconnected: more than one component remains.
//   - ErrEdgeCount:    edges != cells-1.
package spantree
