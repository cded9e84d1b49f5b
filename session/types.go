package session

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

const defaultPrefix = "lvmaze"

// Options configures a Manager.
type Options struct {
	// Prefix for log lines
	Prefix string

	// Manager logger
	Logger *log.Logger

	// Clock used to pick a seed when the config leaves it at 0
	Now func() time.Time

	// Concurrent lets runs overlap. By default a new run cancels every run
	// still in flight.
	Concurrent bool
}

// Observer receives the steps of an animated run.
// Returning an error aborts the run.
type Observer interface {
	OnStep(id uuid.UUID, s maze.Step) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(id uuid.UUID, s maze.Step) error

// OnStep calls f(id, s).
func (f ObserverFunc) OnStep(id uuid.UUID, s maze.Step) error {
	return f(id, s)
}

// Run is one prepared generation: everything is built, nothing is carved.
type Run struct {
	ID        uuid.UUID
	Config    config.Config
	Seed      int64 // Seed actually used
	Grid      *grid.Grid
	Remover   *grid.WallRemover
	Generator maze.Generator
}
