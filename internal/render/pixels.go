package render

import (
	"image"
	"image/color"

	"automata/internal/core"
	"automata/internal/grid"
	"automata/internal/nav"

	"golang.org/x/image/draw"
)

// Palette holds the colours used to paint a frame.
type Palette struct {
	Background color.RGBA
	On         color.RGBA
	Off        color.RGBA
	Outline    color.RGBA
	Agent      color.RGBA
	DeadAgent  color.RGBA
	Text       color.RGBA
}

// DefaultPalette paints Active cells white on black with faint outlines.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 255},
		On:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Off:        color.RGBA{A: 255},
		Outline:    color.RGBA{R: 64, G: 64, B: 64, A: 64},
		Agent:      color.RGBA{R: 230, G: 40, B: 40, A: 255},
		DeadAgent:  color.RGBA{R: 110, G: 30, B: 30, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// cellRect returns the pixel rectangle covered by cell (x, y).
func cellRect(x, y int, size float64) image.Rectangle {
	return image.Rect(
		int(float64(x)*size), int(float64(y)*size),
		int(float64(x+1)*size), int(float64(y+1)*size),
	)
}

// fillCells paints every cell in scan order, each as a filled square with a
// translucent one-pixel outline.
func fillCells(dst *image.RGBA, g *grid.Grid[core.Cell], pal Palette) {
	sc, err := g.Scan()
	if err != nil {
		return
	}
	on := image.NewUniform(pal.On)
	off := image.NewUniform(pal.Off)
	outline := image.NewUniform(pal.Outline)
	size := g.CellSize()
	for sc.Next() {
		site := sc.Site()
		r := cellRect(site.X, site.Y, size)
		src := off
		if site.Value == core.Active {
			src = on
		}
		draw.Draw(dst, r, src, image.Point{}, draw.Src)
		strokeRect(dst, r, outline)
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, src image.Image) {
	if r.Empty() {
		return
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1),
		image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Over)
	}
}

// fillAgents paints the cell under each turmite.
func fillAgents(dst *image.RGBA, agents []nav.Turmite, size float64, pal Palette) {
	for _, a := range agents {
		col := pal.Agent
		if !a.Active {
			col = pal.DeadAgent
		}
		r := cellRect(a.Position.X, a.Position.Y, size)
		draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
	}
}
