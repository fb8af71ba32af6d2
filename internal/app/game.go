//go:build ebiten

package app

import (
	"automata/internal/core"
	"automata/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	sim     *Simulation
	painter *render.Painter
	frame   *ebiten.Image

	w, h     int
	paused   bool
	tickOnce bool
	err      error
}

// New constructs a Game for a window of w x h pixels, banner included.
func New(sim *Simulation, w, h int) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewPainter(w, h, render.DefaultPalette()),
		frame:   ebiten.NewImage(w, h),
		w:       w,
		h:       h,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	if !g.sim.Initialized() {
		return nil
	}
	var err error
	switch {
	case !g.paused:
		_, err = g.sim.Update()
	case g.tickOnce:
		_, err = g.sim.Advance(1)
	}
	g.tickOnce = false
	return err
}

// Draw initializes the simulation on the first frame, then renders it.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.sim.Initialized() {
		if err := g.sim.Prepare(core.Dimensions{W: float64(g.w), H: float64(g.h)}); err != nil {
			g.err = err
			return
		}
	}
	img := g.painter.Paint(g.sim.Automaton())
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
