// Command lvmaze generates perfect mazes.
//
// By default it generates one maze from the MAZE_* environment (a .env file
// is loaded first) and prints its JSON summary. Flags override the
// environment. With -serve it starts the HTTP API instead.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/api"
	"github.com/katalvlaran/lvmaze/api/i"
	"github.com/katalvlaran/lvmaze/api/mazeapi"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/session"
	"github.com/katalvlaran/lvmaze/topology"
)

func main() {
	logger := log.New(os.Stderr, "lvmaze: ", log.LstdFlags|log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		logger.Printf("[ERROR] %v", err)
	}
	// Range checks wait until flags have been applied.
	cfg, err := config.LoadEnv()
	if err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}

	var (
		serve     = flag.Bool("serve", false, "start the HTTP API instead of generating one maze")
		width     = flag.Int("width", cfg.Width, "maze width in cells")
		height    = flag.Int("height", cfg.Height, "maze height in cells")
		topo      = flag.String("topology", cfg.Topology.String(), "square or hexagon")
		algorithm = flag.String("algorithm", cfg.Algorithm.String(), "recursive_backtracker or aldous_broder")
		seed      = flag.Int64("seed", cfg.Seed, "random seed, 0 picks one")
		maxSteps  = flag.Int("max-steps", cfg.MaxSteps, "step budget, negative for none")
		animate   = flag.Bool("animate", cfg.Animated, "log every step")
		delay     = flag.Duration("delay", cfg.StepDelay, "pause between animated steps")
		compact   = flag.Bool("compact", false, "print the summary on one line")
	)
	flag.Parse()

	cfg.Width, cfg.Height = *width, *height
	cfg.Seed, cfg.MaxSteps = *seed, *maxSteps
	cfg.Animated, cfg.StepDelay = *animate, *delay
	if cfg.Topology, err = topology.ParseKind(*topo); err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}
	if cfg.Algorithm, err = maze.ParseAlgorithm(*algorithm); err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}
	if err = cfg.Validate(); err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}

	if *serve {
		srv := config.ServerFromEnv()
		// Requests from different clients must not cancel each other.
		manager := session.NewManager(&session.Options{Logger: logger, Concurrent: true})
		router := api.NewRouter(api.Config{
			Addr:        srv.Addr,
			BaseURL:     srv.BaseURL,
			GinMode:     srv.GinMode,
			Controllers: []i.Controller{mazeapi.NewMazeController(manager, cfg)},
		})
		logger.Printf("[INFO] listening on %s%s/v1", srv.Addr, srv.BaseURL)
		if err := router.Run(); err != nil {
			logger.Fatalf("[ERROR] server stopped: %v", err)
		}
		return
	}

	manager := session.NewManager(&session.Options{Logger: logger})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var obs session.Observer
	if cfg.Animated {
		obs = session.ObserverFunc(func(id uuid.UUID, s maze.Step) error {
			v := session.NewStepView(s)
			logger.Printf("[INFO] run %s: #%d %s %s -> %s (%d visited)", id, v.Index, v.Kind, v.From, v.To, v.Visited)
			return nil
		})
	}

	sum, err := manager.Generate(ctx, cfg, obs)
	if err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(sum); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
