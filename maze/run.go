package maze

import (
	"context"
	"fmt"
)

// StopReason tells why Run returned.
type StopReason int

const (
	// StopCompleted: the generator reached its terminal state.
	StopCompleted StopReason = iota
	// StopBudget: MaxSteps steps were taken first.
	StopBudget
	// StopCancelled: the context was cancelled between two steps.
	StopCancelled
)

// String returns the snake_case name of r.
func (r StopReason) String() string {
	switch r {
	case StopCompleted:
		return "completed"
	case StopBudget:
		return "budget"
	case StopCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("stop(%d)", int(r))
	}
}

// Result summarises one Run call. Counters are generator totals, so a
// generator resumed by a second Run reports cumulative values.
type Result struct {
	Algorithm Algorithm
	Stop      StopReason
	Steps     int
	Visited   int
	Carved    int
}

// Completed reports whether the maze is finished (and therefore perfect).
func (r Result) Completed() bool {
	return r.Stop == StopCompleted
}

// Option configures optional behavior of Run.
type Option func(*RunOptions)

// RunOptions holds the driver parameters.
type RunOptions struct {
	// Ctx allows cancellation between steps; defaults to context.Background().
	Ctx context.Context

	// OnStep, if non-nil, is invoked after every step. Returning an error
	// stops the run with that error; the grid stays valid.
	OnStep func(Step) error

	// MaxSteps, if non-negative, caps the steps taken by this Run call.
	// Default is -1 (no limit).
	MaxSteps int
}

// DefaultRunOptions returns RunOptions with a background context, no hook
// and no step limit.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Ctx:      context.Background(),
		OnStep:   nil,
		MaxSteps: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *RunOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs fn as the per-step hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *RunOptions) {
		o.OnStep = fn
	}
}

// WithMaxSteps limits the number of steps this Run call takes.
func WithMaxSteps(limit int) Option {
	return func(o *RunOptions) {
		o.MaxSteps = limit
	}
}

// Run pulls steps from gen until it finishes, the budget is spent or the
// context is cancelled. Stopping early is not an error: Result.Stop says
// why Run returned. An error is returned only for a generator contract
// violation or a failing OnStep hook.
func Run(gen Generator, opts ...Option) (Result, error) {
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Algorithm: gen.Algorithm()}
	taken := 0
	for {
		if gen.Done() {
			res.Stop = StopCompleted
			break
		}
		if o.Ctx.Err() != nil {
			res.Stop = StopCancelled
			break
		}
		if o.MaxSteps >= 0 && taken >= o.MaxSteps {
			res.Stop = StopBudget
			break
		}

		s, ok := gen.Next()
		if !ok {
			if err := gen.Err(); err != nil {
				fill(&res, gen)
				return res, fmt.Errorf("maze: %s step %d: %w", gen.Algorithm(), gen.StepCount(), err)
			}
			res.Stop = StopCompleted
			break
		}
		taken++

		if o.OnStep != nil {
			if err := o.OnStep(s); err != nil {
				fill(&res, gen)
				return res, err
			}
		}
	}
	fill(&res, gen)

	return res, nil
}

func fill(res *Result, gen Generator) {
	res.Steps = gen.StepCount()
	res.Visited = gen.Visited()
	res.Carved = gen.Carved()
}
