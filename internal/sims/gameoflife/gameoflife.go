package gameoflife

import (
	"fmt"

	"automata/internal/automaton"
	"automata/internal/core"
	"automata/internal/grid"

	"golang.org/x/sync/errgroup"
)

// skewBias is the odds used by the skewed random initial states.
const skewBias = 4

// Life implements Conway's Game of Life on a bounded grid. Cells beyond the
// edges count as Passive.
type Life struct {
	cfg   automaton.Config
	grid  *grid.Grid[core.Cell]
	label string

	generation uint32
	alive      int
	dead       int
}

// New returns an uninitialized Life automaton.
func New(cfg automaton.Config) *Life {
	return &Life{cfg: cfg, grid: grid.New[core.Cell](cfg.CellSize), label: cfg.InitialState}
}

// Initialize seeds the grid according to the configured initial state.
func (l *Life) Initialize(dims core.Dimensions) error {
	area := dims.WithoutBanner()
	switch l.cfg.InitialState {
	case automaton.DefaultInitialState, "random-balanced":
		grid.InitializeRandomBalanced(l.grid, area, l.cfg.Rand)
		l.label = "Random [1:1]"
	case "random-active":
		if err := grid.InitializeRandomSkewed(l.grid, area, l.cfg.Rand, core.SkewActive, skewBias); err != nil {
			return err
		}
		l.label = fmt.Sprintf("Random [%d:1]", skewBias)
	case "random-passive":
		if err := grid.InitializeRandomSkewed(l.grid, area, l.cfg.Rand, core.SkewPassive, skewBias); err != nil {
			return err
		}
		l.label = fmt.Sprintf("Random [1:%d]", skewBias)
	default:
		return &core.UnsupportedInitialStateError{Automaton: "gameoflife", State: l.cfg.InitialState}
	}
	l.generation = 0
	l.alive = l.grid.Count(core.Active)
	l.dead = l.grid.Width()*l.grid.Height() - l.alive
	return nil
}

// Advance computes the next generation from the current one. Every cell
// reads the previous generation only; the new one replaces it in one write.
func (l *Life) Advance() error {
	if !l.grid.Ready() {
		return core.ErrNotInitialized
	}
	next := make([][]core.Cell, l.grid.Width())
	for x := range next {
		next[x] = make([]core.Cell, l.grid.Height())
	}

	if l.cfg.Workers > 1 && l.grid.Width() > 1 {
		l.stepParallel(next)
	} else if err := l.stepScan(next); err != nil {
		return err
	}

	alive := 0
	for _, col := range next {
		for _, c := range col {
			if c == core.Active {
				alive++
			}
		}
	}
	l.grid.SetCells(next)
	l.alive = alive
	l.dead = l.grid.Width()*l.grid.Height() - alive
	l.generation++
	return nil
}

func (l *Life) stepScan(next [][]core.Cell) error {
	sc, err := l.grid.Scan()
	if err != nil {
		return err
	}
	for sc.Next() {
		site := sc.Site()
		next[site.X][site.Y] = transition(site.Value, l.neighbors(site.X, site.Y))
	}
	return nil
}

// stepParallel splits the columns into contiguous bands, one per worker.
func (l *Life) stepParallel(next [][]core.Cell) {
	w, h := l.grid.Width(), l.grid.Height()
	workers := l.cfg.Workers
	if workers > w {
		workers = w
	}
	band := (w + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < w; start += band {
		start := start
		end := min(start+band, w)
		g.Go(func() error {
			for x := start; x < end; x++ {
				for y := 0; y < h; y++ {
					next[x][y] = transition(l.grid.At(x, y), l.neighbors(x, y))
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// neighbors counts Active cells among the eight around (x, y).
func (l *Life) neighbors(x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !l.grid.InBounds(nx, ny) {
				continue
			}
			if l.grid.At(nx, ny) == core.Active {
				n++
			}
		}
	}
	return n
}

func transition(c core.Cell, neighbors int) core.Cell {
	switch {
	case c == core.Active && (neighbors < 2 || neighbors > 3):
		return core.Passive
	case c == core.Passive && neighbors == 3:
		return core.Active
	}
	return c
}

// Name identifies the automaton and its initial state.
func (l *Life) Name() string {
	return fmt.Sprintf("Conway's Game of Life | Grid | %s", l.label)
}

// State summarises the current generation.
func (l *Life) State() string {
	return fmt.Sprintf("Generation: %d | Alive: %d | Dead: %d", l.generation, l.alive, l.dead)
}

// Generation returns the number of completed advances.
func (l *Life) Generation() uint32 { return l.generation }

// Counts returns the Active and Passive totals of the current generation.
func (l *Life) Counts() (alive, dead int) { return l.alive, l.dead }

// Grid exposes the cells for rendering. It is nil before Initialize.
func (l *Life) Grid() *grid.Grid[core.Cell] {
	if !l.grid.Ready() {
		return nil
	}
	return l.grid
}

func init() {
	automaton.Register("gameoflife", func(cfg automaton.Config) automaton.Automaton {
		return New(cfg)
	})
}
