package maze

import "github.com/katalvlaran/lvmaze/grid"

// aldousBroder walks to a uniformly chosen neighbour on every step,
// visited or not, and carves only when it enters an unvisited cell.
// Choosing among unvisited neighbours only would bias the tree; the
// uniformity over spanning trees depends on the unbiased walk.
type aldousBroder struct {
	g   *grid.Grid
	wr  *grid.WallRemover
	rng grid.Rand

	current   *grid.Cell
	remaining int
	steps     int
	carved    int
	err       error
}

func newAldousBroder(g *grid.Grid, wr *grid.WallRemover, rng grid.Rand) Generator {
	a := &aldousBroder{g: g, wr: wr, rng: rng}
	a.current = g.RandomCell(rng)
	a.current.MarkVisited()
	a.remaining = g.Len() - 1

	return a
}

func (a *aldousBroder) Algorithm() Algorithm { return AldousBroder }
func (a *aldousBroder) Done() bool           { return a.err == nil && a.remaining == 0 }
func (a *aldousBroder) Err() error           { return a.err }
func (a *aldousBroder) StepCount() int       { return a.steps }
func (a *aldousBroder) Visited() int         { return a.g.Len() - a.remaining }
func (a *aldousBroder) Carved() int          { return a.carved }

func (a *aldousBroder) Next() (Step, bool) {
	if a.err != nil || a.remaining == 0 {
		return Step{}, false
	}

	next, err := a.current.RandomNeighbor(a.g, a.rng)
	if err != nil {
		a.err = err
		return Step{}, false
	}

	s := Step{Index: a.steps, Current: a.current, Next: next, Kind: Visiting}
	if !next.Visited() {
		if err = a.wr.RemoveBetween(a.current, next); err != nil {
			a.err = err
			return Step{}, false
		}
		next.MarkVisited()
		a.remaining--
		a.carved++
		s.Kind = Carved
	}
	a.current = next
	a.steps++
	s.Visited = a.Visited()

	return s, true
}
