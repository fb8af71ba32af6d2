package core

// BannerHeight is the strip of pixels below the grid reserved for the host's
// name and state banner.
const BannerHeight = 60.0

// Dimensions describes a pixel-space rectangle anchored at the origin.
type Dimensions struct {
	W float64
	H float64
}

// WithoutBanner returns the area left for cells once the banner strip is
// removed. The height never drops below zero.
func (d Dimensions) WithoutBanner() Dimensions {
	h := d.H - BannerHeight
	if h < 0 {
		h = 0
	}
	return Dimensions{W: d.W, H: h}
}

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}
