// Package lvmaze generates perfect mazes on square and hexagon grids.
//
// A perfect maze is a spanning tree of the grid's cell-adjacency graph:
// every cell is reachable and there is exactly one path between any two
// cells. Generation is steppable, so a caller can animate it one carve at a
// time, budget it, cancel it, or run it straight through.
//
// Packages:
//
//	topology/ - Square and Hexagon adjacency rules, directions and wall sets
//	grid/     - cells keyed by coordinate, cached neighbours, WallRemover
//	maze/     - RecursiveBacktracker and AldousBroder generators, Run driver
//	spantree/ - union-find and DFS checks that a result is a spanning tree
//	config/   - request settings from the environment (.env supported)
//	session/  - one run at a time: build, drive, observe, summarise
//	api/      - Gin router and the /v1/mazes controller
//	cmd/lvmaze - CLI and HTTP entry point
//
// Hexagon grids use doubled coordinates: only cells whose x and y have the
// same parity exist, so a row of N hexagons needs a grid width of 2N.
// config.Config.GridDimensions does the doubling for you.
//
// Quick start:
//
//	topo, _ := topology.ForKind(topology.Square)
//	g, _ := grid.Build(10, 10, topo)
//	wr, _ := grid.NewWallRemover(topo)
//	gen, _ := maze.New(maze.RecursiveBacktracker, g, wr, maze.NewRand(42))
//	res, _ := maze.Run(gen)
//	// res.Completed() == true, g.Passages() has 99 entries
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
