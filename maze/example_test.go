package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/topology"
)

// ExampleRun generates a 10×10 square maze with the recursive backtracker.
// A backtracker run always takes 2N-1 steps for N cells.
func ExampleRun() {
	sq, _ := topology.ForKind(topology.Square)
	g, _ := grid.Build(10, 10, sq)
	wr, _ := grid.NewWallRemover(sq)
	gen, _ := maze.New(maze.RecursiveBacktracker, g, wr, maze.NewRand(42))

	res, err := maze.Run(gen)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("stop:", res.Stop)
	fmt.Println("steps:", res.Steps)
	fmt.Println("carved:", res.Carved)

	// Output:
	// stop: completed
	// steps: 199
	// carved: 99
}

// ExampleSteps animates an Aldous-Broder run by ranging over its steps and
// stopping after the first three carves.
func ExampleSteps() {
	hex, _ := topology.ForKind(topology.Hexagon)
	g, _ := grid.Build(20, 10, hex) // 10 hexagons per row, width doubled
	wr, _ := grid.NewWallRemover(hex)
	gen, _ := maze.New(maze.AldousBroder, g, wr, maze.NewRand(7))

	carves := 0
	for s := range maze.Steps(gen) {
		if s.Kind == maze.Carved {
			carves++
		}
		if carves == 3 {
			break
		}
	}
	fmt.Println("cells:", g.Len())
	fmt.Println("visited:", gen.Visited())
	fmt.Println("done:", gen.Done())

	// Output:
	// cells: 100
	// visited: 4
	// done: false
}
