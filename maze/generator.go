package maze

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmaze/grid"
)

type constructor func(g *grid.Grid, wr *grid.WallRemover, rng grid.Rand) Generator

// generators is the dispatch table keyed by Algorithm.
var generators = map[Algorithm]constructor{
	RecursiveBacktracker: newBacktracker,
	AldousBroder:         newAldousBroder,
}

// New validates its collaborators and returns a generator for alg on g.
// Construction performs the init step: a random start cell is marked
// visited, so g must be freshly built and must not be shared with another
// generator.
// Complexity: O(1).
func New(alg Algorithm, g *grid.Grid, wr *grid.WallRemover, rng grid.Rand) (Generator, error) {
	ctor, ok := generators[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	switch {
	case g == nil:
		return nil, ErrNilGrid
	case wr == nil:
		return nil, ErrNilRemover
	case rng == nil:
		return nil, ErrNilRand
	}

	return ctor(g, wr, rng), nil
}

// Steps adapts gen to a range-over-func sequence. Breaking out of the loop
// leaves gen resumable; the sequence ends when gen finishes or fails.
func Steps(gen Generator) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			s, ok := gen.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}
