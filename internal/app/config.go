package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"automata/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Automaton string
	Grid      string
	CellSize  float64
	FPS       int
	Seed      int64
	State     string
	Workers   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Grid: "600x600", CellSize: 10, State: "default", Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Grid, "grid", c.Grid, "grid size in pixels as WIDTHxHEIGHT")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "simulation ticks per second (0 = unlimited)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.State, "state", c.State, "initial state keyword")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
}

// Validate checks every field and returns the grid size in pixels. The
// banner strip is not included.
func (c *Config) Validate() (core.Dimensions, error) {
	if c.Automaton == "" {
		return core.Dimensions{}, fmt.Errorf("no automaton specified: %w", core.ErrInvalidArgument)
	}
	dims, err := ParseGrid(c.Grid)
	if err != nil {
		return core.Dimensions{}, err
	}
	if c.CellSize <= 0 {
		return core.Dimensions{}, fmt.Errorf("cell size %g must be positive: %w", c.CellSize, core.ErrInvalidArgument)
	}
	if c.FPS < 0 {
		return core.Dimensions{}, fmt.Errorf("fps %d must not be negative: %w", c.FPS, core.ErrInvalidArgument)
	}
	if c.Workers < 1 {
		return core.Dimensions{}, fmt.Errorf("workers %d must be at least 1: %w", c.Workers, core.ErrInvalidArgument)
	}
	return dims, nil
}

// ParseGrid parses a WIDTHxHEIGHT string into pixel dimensions.
func ParseGrid(s string) (core.Dimensions, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return core.Dimensions{}, fmt.Errorf("grid %q must be in WIDTHxHEIGHT format: %w", s, core.ErrInvalidArgument)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || w <= 0 {
		return core.Dimensions{}, fmt.Errorf("grid width %q must be a positive number: %w", parts[0], core.ErrInvalidArgument)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || h <= 0 {
		return core.Dimensions{}, fmt.Errorf("grid height %q must be a positive number: %w", parts[1], core.ErrInvalidArgument)
	}
	return core.Dimensions{W: w, H: h}, nil
}
