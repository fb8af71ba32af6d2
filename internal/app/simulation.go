package app

import (
	"fmt"

	"automata/internal/automaton"
	"automata/internal/core"

	"github.com/charmbracelet/log"
)

// Simulation drives an automaton for a host loop: it initializes the
// automaton lazily on the first frame and meters advances with a FixedStep.
type Simulation struct {
	automaton   automaton.Automaton
	stepper     *core.FixedStep
	logger      *log.Logger
	initialized bool
	antDown     bool
}

// NewSimulation wraps a for a host running at tps advances per second.
// A nil logger falls back to log.Default().
func NewSimulation(a automaton.Automaton, tps int, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.Default()
	}
	return &Simulation{automaton: a, stepper: core.NewFixedStep(tps), logger: logger}
}

// Automaton returns the wrapped automaton.
func (s *Simulation) Automaton() automaton.Automaton { return s.automaton }

// Initialized reports whether the first frame has been prepared.
func (s *Simulation) Initialized() bool { return s.initialized }

// Prepare initializes the automaton over the full window dimensions once.
// Later calls are no-ops until Reset.
func (s *Simulation) Prepare(window core.Dimensions) error {
	if s.initialized {
		return nil
	}
	if err := s.automaton.Initialize(window); err != nil {
		return fmt.Errorf("initialize %s: %w", s.automaton.Name(), err)
	}
	s.initialized = true
	s.antDown = false
	if g := s.automaton.Grid(); g != nil {
		s.logger.Info("automaton initialized",
			"automaton", s.automaton.Name(),
			"columns", g.Width(),
			"rows", g.Height(),
			"cell", g.CellSize(),
		)
	}
	return nil
}

// Reset forces the next Prepare to initialize the automaton again.
func (s *Simulation) Reset() { s.initialized = false }

// Update runs as many advances as the tick budget allows and returns how
// many ran. Nothing happens before Prepare.
func (s *Simulation) Update() (int, error) {
	if !s.initialized {
		return 0, nil
	}
	return s.Advance(s.stepper.Budget())
}

// Advance runs n advances unconditionally.
func (s *Simulation) Advance(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := s.automaton.Advance(); err != nil {
			return i, fmt.Errorf("advance %s: %w", s.automaton.Name(), err)
		}
	}
	s.noteAgents()
	return n, nil
}

func (s *Simulation) noteAgents() {
	ap, ok := s.automaton.(automaton.AgentProvider)
	if !ok || s.antDown {
		return
	}
	for _, ag := range ap.Agents() {
		if !ag.Active {
			s.antDown = true
			s.logger.Info("turmite left the grid", "x", ag.Position.X, "y", ag.Position.Y, "state", s.automaton.State())
			return
		}
	}
}
