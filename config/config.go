// Package config holds the generation request and server settings, loaded
// from the environment (optionally through a .env file) and validated
// before any grid is built.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/topology"
)

// Dimension limits accepted for a generation request.
const (
	MinDimension = 10
	MaxDimension = 250
)

// ErrInvalidConfig indicates a request rejected before grid construction.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one generation request.
type Config struct {
	Width     int            // Cells per row as the user sees them, [10,250]
	Height    int            // Rows, [10,250]
	Topology  topology.Kind  // Square or Hexagon
	Algorithm maze.Algorithm // RecursiveBacktracker or AldousBroder
	Animated  bool           // Forward every step to the observer
	Seed      int64          // 0 lets the session pick one
	MaxSteps  int            // Step budget, negative for none
	StepDelay time.Duration  // Pause between animated steps
}

// Default returns a 10×10 square recursive-backtracker request.
func Default() Config {
	return Config{
		Width:     MinDimension,
		Height:    MinDimension,
		Topology:  topology.Square,
		Algorithm: maze.RecursiveBacktracker,
		MaxSteps:  -1,
	}
}

// Validate checks dimensions and enum values.
func (c Config) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension {
		return fmt.Errorf("%w: width %d outside [%d,%d]", ErrInvalidConfig, c.Width, MinDimension, MaxDimension)
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: height %d outside [%d,%d]", ErrInvalidConfig, c.Height, MinDimension, MaxDimension)
	}
	if _, err := topology.ForKind(c.Topology); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Algorithm != maze.RecursiveBacktracker && c.Algorithm != maze.AldousBroder {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, maze.ErrUnknownAlgorithm)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: negative step delay %s", ErrInvalidConfig, c.StepDelay)
	}
	return nil
}

// GridDimensions returns the width and height to pass to grid.Build.
// Hexagon grids use doubled coordinates, so the requested width is doubled
// here: a width of 10 would otherwise give 5 hexagons per row.
func (c Config) GridDimensions() (width, height int) {
	if c.Topology == topology.Hexagon {
		return c.Width * 2, c.Height
	}
	return c.Width, c.Height
}
