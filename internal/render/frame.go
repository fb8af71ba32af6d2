package render

import (
	"image"

	"automata/internal/automaton"
	"automata/internal/core"

	"golang.org/x/image/draw"
)

// Painter rasterizes an automaton into a reusable RGBA frame sized to the
// host window: the grid on top and the banner strip below it.
type Painter struct {
	img *image.RGBA
	pal Palette
}

// NewPainter allocates a frame of w x h pixels.
func NewPainter(w, h int, pal Palette) *Painter {
	return &Painter{img: image.NewRGBA(image.Rect(0, 0, w, h)), pal: pal}
}

// Image returns the frame painted by the last Paint call.
func (p *Painter) Image() *image.RGBA { return p.img }

// Paint draws the automaton's current state. It only reads from a.
func (p *Painter) Paint(a automaton.Automaton) *image.RGBA {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(p.pal.Background), image.Point{}, draw.Src)

	top := p.img.Bounds().Dy() - int(core.BannerHeight)
	if g := a.Grid(); g != nil {
		fillCells(p.img, g, p.pal)
		if ap, ok := a.(automaton.AgentProvider); ok {
			fillAgents(p.img, ap.Agents(), g.CellSize(), p.pal)
		}
		if dims, ok := g.Dimensions(); ok {
			top = int(dims.H)
		}
	}
	if top < 0 {
		top = 0
	}
	drawBanner(p.img, top, a.Name(), a.State(), p.pal)
	return p.img
}
