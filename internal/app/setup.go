package app

import (
	"time"

	"automata/internal/automaton"
	"automata/internal/core"
	pcore "automata/pkg/core"

	"github.com/charmbracelet/log"
)

// Setup validates cfg, builds the selected automaton and wraps it in a
// Simulation. The returned dimensions are the full window: grid plus banner.
func Setup(cfg *Config, logger *log.Logger) (*Simulation, core.Dimensions, error) {
	dims, err := cfg.Validate()
	if err != nil {
		return nil, core.Dimensions{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a, err := automaton.New(cfg.Automaton, automaton.Config{
		CellSize:     cfg.CellSize,
		InitialState: cfg.State,
		Rand:         pcore.NewRNG(seed),
		Workers:      cfg.Workers,
	})
	if err != nil {
		return nil, core.Dimensions{}, err
	}
	window := core.Dimensions{W: dims.W, H: dims.H + core.BannerHeight}
	if logger != nil {
		logger.Infof("Running %s | %gx%g | %gpx @ %d FPS", cfg.Automaton, dims.W, dims.H, cfg.CellSize, cfg.FPS)
		logger.Debug("seeded", "seed", seed)
	}
	return NewSimulation(a, cfg.FPS, logger), window, nil
}
