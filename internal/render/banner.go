package render

import (
	"image"

	"automata/internal/core"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const bannerMargin = 10

// drawBanner writes the name and state lines into the strip that starts at
// top. The strip is split into five gaps: two above the name, one between
// the lines and two below the state.
func drawBanner(dst *image.RGBA, top int, name, state string, pal Palette) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	spacing := (core.BannerHeight - float64(2*lineHeight)) / 5

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(pal.Text), Face: face}

	nameTop := float64(top) + 2*spacing
	d.Dot = fixed.P(bannerMargin, int(nameTop)+ascent)
	d.DrawString(name)

	stateTop := float64(top) + 3*spacing + float64(lineHeight)
	d.Dot = fixed.P(bannerMargin, int(stateTop)+ascent)
	d.DrawString(state)
}
