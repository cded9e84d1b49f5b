// Package topology describes the cell layouts a maze can be carved on.
//
// What:
//
//   - Coord and Offset address cells on an integer lattice.
//   - Direction names the walls of a cell; WallSet is a bitset over them.
//   - Topology fixes, for one layout, the ordered neighbour offsets, the wall
//     facing each offset and the coordinate validity rule.
//
// Layouts:
//
//   - Square:  4 neighbours, axis-aligned, y grows upward (Top is (0,+1)).
//   - Hexagon: 6 neighbours in doubled coordinates; only cells with
//     x%2 == y%2 exist. Right/Left are (±2,0), diagonals are (±1,±1).
//
// Hexagon contract:
//
//	Doubled coordinates halve the number of columns that fit in a given
//	width. Callers wanting N hexagons per row pass a width of 2N; the
//	topology never rescales dimensions on its own.
//
// Offset order is fixed per layout. It decides enumeration order (and so
// the result of a seeded run) but never correctness.
//
// Errors:
//
//   - ErrUnknownTopology: Kind has no registered Topology.
package topology
