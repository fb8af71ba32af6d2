package automaton

import (
	"fmt"
	"sort"

	"automata/internal/core"
	"automata/internal/grid"
	"automata/internal/nav"
	pcore "automata/pkg/core"
)

// Automaton is a rule set plus the grid it evolves. The host calls
// Initialize once, then Advance any number of times, reading Grid between
// calls to render.
type Automaton interface {
	// Initialize builds the first generation over dims. The bottom
	// core.BannerHeight pixels are reserved for the host's banner.
	Initialize(dims core.Dimensions) error
	// Advance computes one generation. It returns core.ErrNotInitialized
	// when called before Initialize.
	Advance() error
	Name() string
	State() string
	// Grid is nil until Initialize succeeds.
	Grid() *grid.Grid[core.Cell]
}

// AgentProvider is implemented by automata that move agents over the grid.
type AgentProvider interface {
	Agents() []nav.Turmite
}

// Config carries the construction parameters shared by every automaton.
type Config struct {
	CellSize     float64
	InitialState string
	Rand         pcore.Source

	// Workers bounds how many goroutines an automaton may use per advance.
	// Values below 2 keep the update on the calling goroutine.
	Workers int
}

// DefaultInitialState is the keyword every automaton accepts.
const DefaultInitialState = "default"

// Factory constructs an Automaton from cfg.
type Factory func(cfg Config) Automaton

var registry = map[string]Factory{}

// Register adds an automaton factory under the provided selector.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// New looks up the factory registered under name and builds the automaton.
func New(name string, cfg Config) (Automaton, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown automaton %q: %w", name, core.ErrInvalidArgument)
	}
	if cfg.InitialState == "" {
		cfg.InitialState = DefaultInitialState
	}
	if cfg.Rand == nil {
		cfg.Rand = pcore.NewRNG(1)
	}
	return f(cfg), nil
}

// Names lists the registered selectors in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
