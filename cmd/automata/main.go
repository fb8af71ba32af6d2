//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"automata/internal/app"
	_ "automata/internal/sims/gameoflife"
	_ "automata/internal/sims/langtonsant"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "automata"})

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Automaton = flag.Arg(0)

	sim, window, err := app.Setup(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	w, h := int(window.W), int(window.H)
	game := app.New(sim, w, h)

	ebiten.SetWindowTitle(sim.Automaton().Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("simulation stopped", "err", err)
	}
}
