package maze

import "github.com/katalvlaran/lvmaze/grid"

// backtracker is the iterative recursive-backtracker.
//
// Each Next pops one cell. If it still has an unvisited neighbour the cell
// is pushed back, followed by the freshly carved neighbour; otherwise it
// stays popped. The stack therefore holds exactly the current path of
// visited but not fully explored cells.
type backtracker struct {
	g   *grid.Grid
	wr  *grid.WallRemover
	rng grid.Rand

	stack   []*grid.Cell
	steps   int
	visited int
	carved  int
	err     error
}

func newBacktracker(g *grid.Grid, wr *grid.WallRemover, rng grid.Rand) Generator {
	b := &backtracker{g: g, wr: wr, rng: rng}
	start := g.RandomCell(rng)
	start.MarkVisited()
	b.visited = 1
	b.stack = append(make([]*grid.Cell, 0, 64), start)

	return b
}

func (b *backtracker) Algorithm() Algorithm { return RecursiveBacktracker }
func (b *backtracker) Done() bool           { return b.err == nil && len(b.stack) == 0 }
func (b *backtracker) Err() error           { return b.err }
func (b *backtracker) StepCount() int       { return b.steps }
func (b *backtracker) Visited() int         { return b.visited }
func (b *backtracker) Carved() int          { return b.carved }

func (b *backtracker) Next() (Step, bool) {
	if b.err != nil || len(b.stack) == 0 {
		return Step{}, false
	}

	top := len(b.stack) - 1
	current := b.stack[top]
	b.stack = b.stack[:top]

	s := Step{Index: b.steps, Current: current, Kind: BacktrackDone}
	if next, ok := current.RandomUnvisitedNeighbor(b.g, b.rng); ok {
		if err := b.wr.RemoveBetween(current, next); err != nil {
			b.stack = append(b.stack, current)
			b.err = err
			return Step{}, false
		}
		next.MarkVisited()
		b.visited++
		b.carved++
		b.stack = append(b.stack, current, next)
		s.Kind = Carved
		s.Next = next
	}
	b.steps++
	s.Visited = b.visited

	return s, true
}
