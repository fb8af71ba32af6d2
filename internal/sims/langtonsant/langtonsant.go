package langtonsant

import (
	"fmt"

	"automata/internal/automaton"
	"automata/internal/core"
	"automata/internal/grid"
	"automata/internal/nav"
)

// Ant implements Langton's Ant: a single turmite on an initially empty grid.
//
// One logical step is split across two calls to Advance. When the
// generation counter equals the turmite's step counter the ant turns
// (right on Active, left on Passive) and its step counter moves on. On the
// next call it flips the cell beneath it, walks forward and the generation
// counter catches up. Generation therefore counts completed moves.
type Ant struct {
	cfg   automaton.Config
	grid  *grid.Grid[core.Cell]
	label string

	generation uint32
	ant        *nav.Turmite
}

// New returns an uninitialized Langton's Ant automaton.
func New(cfg automaton.Config) *Ant {
	return &Ant{cfg: cfg, grid: grid.New[core.Cell](cfg.CellSize), label: cfg.InitialState}
}

// Initialize clears the grid and drops one turmite on a random cell.
func (a *Ant) Initialize(dims core.Dimensions) error {
	switch a.cfg.InitialState {
	case automaton.DefaultInitialState, "empty-single":
	default:
		return &core.UnsupportedInitialStateError{Automaton: "langtonsant", State: a.cfg.InitialState}
	}
	g := grid.New[core.Cell](a.cfg.CellSize)
	grid.InitializeEmpty(g, dims.WithoutBanner())
	ant, err := nav.NewTurmite(g, a.cfg.Rand)
	if err != nil {
		return fmt.Errorf("place turmite: %w", err)
	}
	a.grid = g
	a.ant = &ant
	a.label = "Empty [1 Ant]"
	a.generation = 0
	return nil
}

// Advance runs one half-step. It does nothing once the turmite is inactive.
func (a *Ant) Advance() error {
	if a.ant == nil {
		return core.ErrNotInitialized
	}
	if !a.ant.Active {
		return nil
	}
	next := *a.ant
	if a.generation == next.Step {
		if a.grid.At(next.Position.X, next.Position.Y) == core.Active {
			next.Orientation = next.Orientation.TurnRight()
		} else {
			next.Orientation = next.Orientation.TurnLeft()
		}
		next.Step++
	} else {
		cell := next.FlipCell()
		a.grid.Set(next.Position.X, next.Position.Y, cell)
		next.MoveForward(a.grid)
		a.generation++
	}
	a.ant = &next
	return nil
}

// Name identifies the automaton and its initial state.
func (a *Ant) Name() string {
	return fmt.Sprintf("Langton's Ant | Grid | %s", a.label)
}

// State summarises the generation and whether the ant is still walking.
func (a *Ant) State() string {
	status := "Active"
	if a.ant == nil || !a.ant.Active {
		status = "Inactive"
	}
	return fmt.Sprintf("Generation: %d | Ant: %s", a.generation, status)
}

// Generation returns the number of completed moves.
func (a *Ant) Generation() uint32 { return a.generation }

// Grid exposes the cells for rendering. It is nil before Initialize.
func (a *Ant) Grid() *grid.Grid[core.Cell] {
	if !a.grid.Ready() {
		return nil
	}
	return a.grid
}

// Agents returns the turmite, or nothing before Initialize.
func (a *Ant) Agents() []nav.Turmite {
	if a.ant == nil {
		return nil
	}
	return []nav.Turmite{*a.ant}
}

func init() {
	automaton.Register("langtonsant", func(cfg automaton.Config) automaton.Automaton {
		return New(cfg)
	})
}
