package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/topology"
)

// Environment variable names.
const (
	EnvWidth     = "MAZE_WIDTH"
	EnvHeight    = "MAZE_HEIGHT"
	EnvTopology  = "MAZE_TOPOLOGY"
	EnvAlgorithm = "MAZE_ALGORITHM"
	EnvAnimated  = "MAZE_ANIMATED"
	EnvSeed      = "MAZE_SEED"
	EnvMaxSteps  = "MAZE_MAX_STEPS"
	EnvStepDelay = "MAZE_STEP_DELAY"
	EnvHTTPAddr  = "MAZE_HTTP_ADDR"
	EnvBaseURL   = "MAZE_BASE_URL"
	EnvGinMode   = "GIN_MODE"
)

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Addr    string // Address to listen on
	BaseURL string // Prefix for all API routes
	GinMode string // Mode for the Gin framework (release, debug, test)
}

// LoadDotEnv loads the given .env files (".env" when none are given) into
// the process environment. A missing file is not an error; a file that
// cannot be read or parsed is.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	return nil
}

// FromEnv builds a Config from MAZE_* variables on top of Default and
// validates it. Unset variables keep their defaults.
func FromEnv() (Config, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadEnv parses MAZE_* variables on top of Default without validating the
// result, so callers can apply further overrides before Validate.
// Malformed values still fail with ErrInvalidConfig.
func LoadEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = getEnvAsInt(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = getEnvAsInt(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvTopology); ok {
		if cfg.Topology, err = topology.ParseKind(v); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTopology, err)
		}
	}
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		if cfg.Algorithm, err = maze.ParseAlgorithm(v); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvAlgorithm, err)
		}
	}
	if v, ok := os.LookupEnv(EnvAnimated); ok {
		if cfg.Animated, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, EnvAnimated, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvSeed, err)
		}
	}
	if cfg.MaxSteps, err = getEnvAsInt(EnvMaxSteps, cfg.MaxSteps); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvStepDelay); ok {
		if cfg.StepDelay, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidConfig, EnvStepDelay, err)
		}
	}

	return cfg, nil
}

// ServerFromEnv reads the HTTP settings with defaults ":8080", "/api", "release".
func ServerFromEnv() ServerConfig {
	return ServerConfig{
		Addr:    getEnvWithDefault(EnvHTTPAddr, ":8080"),
		BaseURL: getEnvWithDefault(EnvBaseURL, "/api"),
		GinMode: getEnvWithDefault(EnvGinMode, "release"),
	}
}

// getEnvAsInt retrieves an integer variable or returns def when unset.
func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

// getEnvWithDefault retrieves a variable or returns def when unset.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
