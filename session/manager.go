package session

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/topology"
)

// Manager prepares and drives generations. Unless Options.Concurrent is
// set, only one run is in flight at a time.
type Manager struct {
	opts *Options

	mu   sync.Mutex
	runs map[uuid.UUID]context.CancelFunc
}

// NewManager creates a Manager. A nil opts gets the default prefix, a
// stderr logger and the wall clock.
func NewManager(opts *Options) *Manager {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, fmt.Sprintf("%s: ", opts.Prefix), log.LstdFlags|log.Lshortfile)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Manager{opts: opts, runs: make(map[uuid.UUID]context.CancelFunc)}
}

// Prepare validates cfg and builds a fresh run for it. Nothing is shared
// with earlier runs.
func (m *Manager) Prepare(cfg config.Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	topo, err := topology.ForKind(cfg.Topology)
	if err != nil {
		return nil, err
	}
	width, height := cfg.GridDimensions()
	g, err := grid.Build(width, height, topo)
	if err != nil {
		return nil, fmt.Errorf("session: build grid: %w", err)
	}
	wr, err := grid.NewWallRemover(topo)
	if err != nil {
		return nil, fmt.Errorf("session: wall remover: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = m.opts.Now().UnixNano()
		if seed == 0 {
			seed = maze.DefaultSeed
		}
	}
	gen, err := maze.New(cfg.Algorithm, g, wr, maze.NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("session: generator: %w", err)
	}

	return &Run{
		ID:        uuid.New(),
		Config:    cfg,
		Seed:      seed,
		Grid:      g,
		Remover:   wr,
		Generator: gen,
	}, nil
}

// Generate prepares a run for cfg and drives it to the end. Any generation
// still in flight is cancelled first unless the Manager is Concurrent.
// obs may be nil; it is only called when cfg.Animated is set.
func (m *Manager) Generate(ctx context.Context, cfg config.Config, obs Observer) (Summary, error) {
	run, err := m.Prepare(cfg)
	if err != nil {
		m.opts.Logger.Printf("[ERROR] rejected request: %v", err)
		return Summary{}, err
	}

	return m.Drive(ctx, run, obs)
}

// Drive runs a prepared run. Any generation still in flight is cancelled
// first unless the Manager is Concurrent.
func (m *Manager) Drive(ctx context.Context, run *Run, obs Observer) (Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.register(run.ID, cancel)
	defer m.release(run.ID)

	cfg := run.Config
	m.opts.Logger.Printf("[INFO] run %s: %s %s %dx%d seed=%d animated=%t",
		run.ID, cfg.Topology, cfg.Algorithm, cfg.Width, cfg.Height, run.Seed, cfg.Animated)

	opts := []maze.Option{
		maze.WithContext(runCtx),
		maze.WithMaxSteps(cfg.MaxSteps),
	}
	if cfg.Animated && obs != nil {
		opts = append(opts, maze.WithOnStep(func(s maze.Step) error {
			if err := obs.OnStep(run.ID, s); err != nil {
				return err
			}
			return pause(runCtx, cfg.StepDelay)
		}))
	}

	start := m.opts.Now()
	res, err := maze.Run(run.Generator, opts...)
	sum := Summarize(run, res)
	if err != nil {
		m.opts.Logger.Printf("[ERROR] run %s: %v", run.ID, err)
		return sum, err
	}
	m.opts.Logger.Printf("[INFO] run %s: %s after %d steps (%d carved) in %s",
		run.ID, res.Stop, res.Steps, res.Carved, m.opts.Now().Sub(start))

	return sum, nil
}

// Stop cancels every generation in flight and reports whether there was
// one.
func (m *Manager) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	stopped := len(m.runs) > 0
	for id, cancel := range m.runs {
		cancel()
		delete(m.runs, id)
	}
	return stopped
}

// Active returns the IDs of the generations in flight, in no particular
// order.
func (m *Manager) Active() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(m.runs))
	for id := range m.runs {
		ids = append(ids, id)
	}
	return ids
}

func (m *Manager) register(id uuid.UUID, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.opts.Concurrent {
		for prev, stop := range m.runs {
			m.opts.Logger.Printf("[INFO] run %s: cancelled by %s", prev, id)
			stop()
			delete(m.runs, prev)
		}
	}
	m.runs[id] = cancel
}

func (m *Manager) release(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.runs, id)
}

// pause waits d or until ctx is done. Cancellation is picked up by
// maze.Run before the next step, so it is not reported here.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
	return nil
}
