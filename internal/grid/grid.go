package grid

import (
	"automata/internal/core"
	pcore "automata/pkg/core"
)

// Site is a grid position together with the value last observed there.
// The value is a snapshot; it goes stale if the grid is written afterwards.
type Site[C comparable] struct {
	X, Y  int
	Value C
}

// Grid is a rectangular, column-major container of cells addressed by
// (x, y) with x in [0, Width) and y in [0, Height). A freshly constructed
// Grid has no cells until one of the Initialize methods runs.
type Grid[C comparable] struct {
	cellSize   float64
	cells      [][]C
	dimensions core.Dimensions
}

// New returns an uninitialized grid whose cells will be cellSize pixels wide.
func New[C comparable](cellSize float64) *Grid[C] {
	return &Grid[C]{cellSize: cellSize}
}

// CellSize returns the pixel edge length of a cell.
func (g *Grid[C]) CellSize() float64 { return g.cellSize }

// Ready reports whether the grid holds cells.
func (g *Grid[C]) Ready() bool { return g.cells != nil }

// Dimensions returns the pixel rectangle the grid was initialized over. The
// second result is false while the grid is uninitialized.
func (g *Grid[C]) Dimensions() (core.Dimensions, bool) {
	return g.dimensions, g.cells != nil
}

// Width returns the number of columns, or zero when uninitialized.
func (g *Grid[C]) Width() int { return len(g.cells) }

// Height returns the number of rows, or zero when uninitialized.
func (g *Grid[C]) Height() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Size returns the grid dimensions in cells.
func (g *Grid[C]) Size() core.Size { return core.Size{W: g.Width(), H: g.Height()} }

// Initialize populates a floor(W/cellSize) x floor(H/cellSize) grid using
// fill for every cell, visiting cells in scan order.
func (g *Grid[C]) Initialize(dims core.Dimensions, fill func() C) {
	w, h := g.span(dims)
	cells := make([][]C, w)
	for x := range cells {
		col := make([]C, h)
		for y := range col {
			col[y] = fill()
		}
		cells[x] = col
	}
	g.cells = cells
	g.dimensions = dims
}

func (g *Grid[C]) span(dims core.Dimensions) (int, int) {
	if g.cellSize <= 0 {
		return 0, 0
	}
	w := int(dims.W / g.cellSize)
	h := int(dims.H / g.cellSize)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// At returns the cell at (x, y). It panics when out of range, like a slice.
func (g *Grid[C]) At(x, y int) C { return g.cells[x][y] }

// Set writes the cell at (x, y).
func (g *Grid[C]) Set(x, y int, c C) { g.cells[x][y] = c }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[C]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// Snapshot returns a deep copy of the cell columns.
func (g *Grid[C]) Snapshot() ([][]C, error) {
	if g.cells == nil {
		return nil, core.ErrNotInitialized
	}
	out := make([][]C, len(g.cells))
	for x, col := range g.cells {
		out[x] = append([]C(nil), col...)
	}
	return out, nil
}

// SetCells replaces the contents wholesale. The caller guarantees the new
// columns share the current shape.
func (g *Grid[C]) SetCells(cells [][]C) { g.cells = cells }

// RandomSite picks a column and a row independently and uniformly.
func (g *Grid[C]) RandomSite(r pcore.Source) (Site[C], error) {
	if g.Width() == 0 || g.Height() == 0 {
		return Site[C]{}, core.ErrEmptyGrid
	}
	x := r.IntN(g.Width())
	y := r.IntN(g.Height())
	return Site[C]{X: x, Y: y, Value: g.cells[x][y]}, nil
}

// Count returns how many cells equal c.
func (g *Grid[C]) Count(c C) int {
	n := 0
	for _, col := range g.cells {
		for _, v := range col {
			if v == c {
				n++
			}
		}
	}
	return n
}
