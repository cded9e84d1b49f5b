package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for generator construction.
var (
	// ErrUnknownAlgorithm indicates an Algorithm or name with no registered generator.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrNilRemover indicates New was called without a wall remover.
	ErrNilRemover = errors.New("maze: wall remover is nil")
	// ErrNilRand indicates New was called without a random source.
	ErrNilRand = errors.New("maze: random source is nil")
)

// Algorithm selects a carving strategy.
type Algorithm int

const (
	// RecursiveBacktracker carves depth-first and backtracks on dead ends.
	RecursiveBacktracker Algorithm = iota
	// AldousBroder carves along an unbiased random walk.
	AldousBroder
)

// String returns the snake_case name of a.
func (a Algorithm) String() string {
	switch a {
	case RecursiveBacktracker:
		return "recursive_backtracker"
	case AldousBroder:
		return "aldous_broder"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name or alias to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive_backtracker", "recursive-backtracker", "backtracker", "dfs":
		return RecursiveBacktracker, nil
	case "aldous_broder", "aldous-broder", "ab":
		return AldousBroder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{RecursiveBacktracker, AldousBroder}
}

// EventKind is the observer hint attached to a Step.
type EventKind int

const (
	// Carved: the wall between Current and Next was removed and Next was visited.
	Carved EventKind = iota
	// Visiting: the walk stepped onto an already visited Next.
	Visiting
	// BacktrackDone: Current is fully explored and left the stack.
	BacktrackDone
)

// String returns the snake_case name of k.
func (k EventKind) String() string {
	switch k {
	case Carved:
		return "carved"
	case Visiting:
		return "visiting"
	case BacktrackDone:
		return "backtrack_done"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Step is one unit of generator progress.
type Step struct {
	// Index counts steps from 0 within one generator.
	Index int
	// Kind hints how an observer should redraw.
	Kind EventKind
	// Current is the cell the step started from.
	Current *grid.Cell
	// Next is the cell carved to or walked to; nil for BacktrackDone.
	Next *grid.Cell
	// Visited is the number of visited cells after the step.
	Visited int
}

// Generator yields the steps of one carving run.
type Generator interface {
	// Algorithm identifies the strategy.
	Algorithm() Algorithm
	// Next performs one step. It returns false once the run is finished or
	// has failed; check Err to tell them apart.
	Next() (Step, bool)
	// Done reports whether the run reached its terminal state.
	Done() bool
	// Err returns the contract violation that stopped the run, if any.
	Err() error
	// StepCount returns the number of steps produced so far.
	StepCount() int
	// Visited returns the number of visited cells.
	Visited() int
	// Carved returns the number of wall pairs this generator removed.
	Carved() int
}
