package session

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/spantree"
)

// Summary is the JSON view of a finished (or stopped) run.
type Summary struct {
	ID         uuid.UUID     `json:"id"`
	Topology   string        `json:"topology"`
	Algorithm  string        `json:"algorithm"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	GridWidth  int           `json:"grid_width"`
	GridHeight int           `json:"grid_height"`
	Seed       int64         `json:"seed"`
	Stop       string        `json:"stop"`
	Steps      int           `json:"steps"`
	Visited    int           `json:"visited"`
	Carved     int           `json:"carved"`
	Perfect    bool          `json:"perfect"`
	Cells      []CellView    `json:"cells"`
	Passages   []PassageView `json:"passages"`
}

// CellView is one cell with the walls it still has.
type CellView struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Walls []string `json:"walls"`
}

// PassageView is one removed wall pair, as "x,y" coordinates.
type PassageView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// StepView is the JSON view of a maze.Step.
type StepView struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	From    string `json:"from"`
	To      string `json:"to,omitempty"`
	Visited int    `json:"visited"`
}

// NewStepView converts s.
func NewStepView(s maze.Step) StepView {
	v := StepView{Index: s.Index, Kind: s.Kind.String(), Visited: s.Visited}
	if s.Current != nil {
		v.From = s.Current.Coord.String()
	}
	if s.Next != nil {
		v.To = s.Next.Coord.String()
	}
	return v
}

// Summarize snapshots run after res. Perfect is only true for a completed
// run whose passages form a spanning tree.
func Summarize(run *Run, res maze.Result) Summary {
	g := run.Grid
	w, h := run.Config.GridDimensions()
	sum := Summary{
		ID:         run.ID,
		Topology:   run.Config.Topology.String(),
		Algorithm:  run.Config.Algorithm.String(),
		Width:      run.Config.Width,
		Height:     run.Config.Height,
		GridWidth:  w,
		GridHeight: h,
		Seed:       run.Seed,
		Stop:       res.Stop.String(),
		Steps:      res.Steps,
		Visited:    res.Visited,
		Carved:     res.Carved,
		Cells:      make([]CellView, 0, g.Len()),
	}

	for _, c := range g.Cells() {
		dirs := c.Walls().Directions()
		walls := make([]string, len(dirs))
		for i, d := range dirs {
			walls[i] = d.String()
		}
		sum.Cells = append(sum.Cells, CellView{X: c.Coord.X, Y: c.Coord.Y, Walls: walls})
	}

	ps := g.Passages()
	sum.Passages = make([]PassageView, len(ps))
	for i, p := range ps {
		sum.Passages[i] = PassageView{From: p.A.String(), To: p.B.String()}
	}

	if res.Completed() {
		_, err := spantree.Check(g)
		sum.Perfect = err == nil
	}

	return sum
}
