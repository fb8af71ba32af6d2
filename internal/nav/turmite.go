package nav

import (
	"automata/internal/core"
	"automata/internal/grid"
	pcore "automata/pkg/core"
)

// Turmite is an agent that crawls a binary grid. Position carries the cell
// value seen at the agent's coordinates; FlipCell and MoveForward keep it
// current, any other write to the grid does not.
type Turmite struct {
	Orientation Direction
	Position    grid.Site[core.Cell]

	// Active turns false when the turmite walks into an edge and never
	// turns true again.
	Active bool

	// Step counts half-steps taken by the agent itself.
	Step uint32
}

// NewTurmite places a turmite on a random cell facing a random direction.
func NewTurmite(g *grid.Grid[core.Cell], r pcore.Source) (Turmite, error) {
	pos, err := g.RandomSite(r)
	if err != nil {
		return Turmite{}, err
	}
	return Turmite{
		Orientation: RandomDirection(r),
		Position:    pos,
		Active:      true,
	}, nil
}

// FlipCell toggles the cached cell value and returns it. The grid itself is
// untouched; callers write the result back.
func (t *Turmite) FlipCell() core.Cell {
	t.Position.Value = t.Position.Value.Flip()
	return t.Position.Value
}

// MoveForward steps one cell in the current orientation and refreshes the
// cached value from g. Walking off the grid deactivates the turmite and
// leaves its position alone. North and East increase y and x respectively.
func (t *Turmite) MoveForward(g *grid.Grid[core.Cell]) {
	x, y := t.Position.X, t.Position.Y
	switch t.Orientation {
	case North:
		if y+1 >= g.Height() {
			t.Active = false
			return
		}
		y++
	case East:
		if x+1 >= g.Width() {
			t.Active = false
			return
		}
		x++
	case South:
		if y == 0 {
			t.Active = false
			return
		}
		y--
	case West:
		if x == 0 {
			t.Active = false
			return
		}
		x--
	}
	t.Position = grid.Site[core.Cell]{X: x, Y: y, Value: g.At(x, y)}
}
