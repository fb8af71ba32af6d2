package main

import (
	"flag"
	"image/png"
	"os"

	"automata/internal/app"
	"automata/internal/render"
	_ "automata/internal/sims/gameoflife"
	_ "automata/internal/sims/langtonsant"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "automata"})

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 100, "number of advances to run")
	every := flag.Int("every", 10, "log the state every N advances (0 = only at the end)")
	out := flag.String("png", "", "write the final frame to this PNG file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	cfg.Automaton = flag.Arg(0)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sim, window, err := app.Setup(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}
	if err := sim.Prepare(window); err != nil {
		logger.Error("cannot start", "err", err)
		os.Exit(2)
	}

	a := sim.Automaton()
	for i := 1; i <= *generations; i++ {
		if _, err := sim.Advance(1); err != nil {
			logger.Fatal("advance failed", "err", err)
		}
		if *every > 0 && i%*every == 0 {
			logger.Info(a.State(), "advance", i)
		}
	}
	logger.Info("done", "automaton", a.Name(), "state", a.State())

	if *out == "" {
		return
	}
	img := render.NewPainter(int(window.W), int(window.H), render.DefaultPalette()).Paint(a)
	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal("create frame file", "err", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		logger.Fatal("encode frame", "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("close frame file", "err", err)
	}
	logger.Info("frame written", "path", *out)
}
