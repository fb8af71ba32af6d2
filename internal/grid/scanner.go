package grid

import "automata/internal/core"

// Scanner walks a grid once in column-major order: every row of column 0
// in ascending order, then column 1, and so on. It reads the columns it was
// created from, so writes made through Grid.SetCells afterwards are not
// observed. A Scanner cannot be rewound; call Grid.Scan again instead.
//
//	sc, err := g.Scan()
//	for sc.Next() {
//		site := sc.Site()
//	}
type Scanner[C comparable] struct {
	cells [][]C
	x, y  int
	cur   Site[C]
}

// Scan returns a scanner over the current contents. It fails with
// core.ErrNotInitialized when the grid holds no cells.
func (g *Grid[C]) Scan() (*Scanner[C], error) {
	if g.cells == nil {
		return nil, core.ErrNotInitialized
	}
	return &Scanner[C]{cells: g.cells}, nil
}

// Next advances to the next cell and reports whether one was available.
func (s *Scanner[C]) Next() bool {
	for s.x < len(s.cells) {
		col := s.cells[s.x]
		if s.y < len(col) {
			s.cur = Site[C]{X: s.x, Y: s.y, Value: col[s.y]}
			s.y++
			return true
		}
		s.x++
		s.y = 0
	}
	return false
}

// Site returns the cell produced by the last successful Next.
func (s *Scanner[C]) Site() Site[C] { return s.cur }
