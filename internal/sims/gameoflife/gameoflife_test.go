package gameoflife

import (
	"errors"
	"strings"
	"testing"

	"automata/internal/automaton"
	"automata/internal/core"
	"automata/internal/grid"
	pcore "automata/pkg/core"
)

// newEmpty returns an initialized w x h automaton with every cell Passive.
func newEmpty(t *testing.T, w, h, workers int) *Life {
	t.Helper()
	l := New(automaton.Config{CellSize: 1, InitialState: "default", Rand: pcore.NewRNG(1), Workers: workers})
	if err := l.Initialize(core.Dimensions{W: float64(w), H: float64(h) + core.BannerHeight}); err != nil {
		t.Fatal(err)
	}
	grid.InitializeEmpty(l.grid, core.Dimensions{W: float64(w), H: float64(h)})
	return l
}

func aliveSet(l *Life) map[[2]int]bool {
	out := map[[2]int]bool{}
	sc, _ := l.Grid().Scan()
	for sc.Next() {
		s := sc.Site()
		if s.Value == core.Active {
			out[[2]int{s.X, s.Y}] = true
		}
	}
	return out
}

func expectAlive(t *testing.T, l *Life, want map[[2]int]bool) {
	t.Helper()
	got := aliveSet(l)
	for p := range want {
		if !got[p] {
			t.Fatalf("cell %v should be alive", p)
		}
	}
	for p := range got {
		if !want[p] {
			t.Fatalf("cell %v should be dead", p)
		}
	}
}

func TestInitializeReservesBanner(t *testing.T) {
	l := New(automaton.Config{CellSize: 10, InitialState: "default", Rand: pcore.NewRNG(2)})
	if l.Grid() != nil {
		t.Fatal("grid must be nil before Initialize")
	}
	if err := l.Initialize(core.Dimensions{W: 600, H: 660}); err != nil {
		t.Fatal(err)
	}
	g := l.Grid()
	if g.Width() != 60 || g.Height() != 60 {
		t.Fatalf("grid %dx%d, want 60x60", g.Width(), g.Height())
	}
	alive, dead := l.Counts()
	if alive+dead != 3600 {
		t.Fatalf("alive+dead = %d, want 3600", alive+dead)
	}
	if !strings.Contains(l.Name(), "Random [1:1]") {
		t.Fatalf("name %q missing initial state label", l.Name())
	}
}

func TestAdvanceBeforeInitialize(t *testing.T) {
	l := New(automaton.Config{CellSize: 1, Rand: pcore.NewRNG(1)})
	if err := l.Advance(); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("got %v, want ErrNotInitialized", err)
	}
}

func TestUnsupportedInitialState(t *testing.T) {
	l := New(automaton.Config{CellSize: 1, InitialState: "glider-gun", Rand: pcore.NewRNG(1)})
	err := l.Initialize(core.Dimensions{W: 10, H: 70})
	var target *core.UnsupportedInitialStateError
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want UnsupportedInitialStateError", err)
	}
	if target.State != "glider-gun" || target.Automaton != "gameoflife" {
		t.Fatalf("unexpected error fields %+v", target)
	}
	if l.Grid() != nil {
		t.Fatal("failed Initialize must leave the grid absent")
	}
}

func TestSkewedInitialStates(t *testing.T) {
	for state, label := range map[string]string{"random-active": "Random [4:1]", "random-passive": "Random [1:4]"} {
		l := New(automaton.Config{CellSize: 1, InitialState: state, Rand: pcore.NewRNG(8)})
		if err := l.Initialize(core.Dimensions{W: 100, H: 160}); err != nil {
			t.Fatalf("%s: %v", state, err)
		}
		alive, dead := l.Counts()
		if state == "random-active" && alive <= dead {
			t.Fatalf("%s: alive %d should outnumber dead %d", state, alive, dead)
		}
		if state == "random-passive" && dead <= alive {
			t.Fatalf("%s: dead %d should outnumber alive %d", state, dead, alive)
		}
		if !strings.HasSuffix(l.Name(), label) {
			t.Fatalf("%s: name %q, want suffix %q", state, l.Name(), label)
		}
	}
}

func TestLonelyCellsDie(t *testing.T) {
	l := newEmpty(t, 6, 6, 1)
	l.grid.Set(1, 1, core.Active)
	l.grid.Set(4, 4, core.Active)
	l.grid.Set(4, 3, core.Active)
	if err := l.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, l, map[[2]int]bool{})
}

func TestBlockStillLife(t *testing.T) {
	for _, workers := range []int{1, 3} {
		l := newEmpty(t, 4, 4, workers)
		block := map[[2]int]bool{{1, 1}: true, {1, 2}: true, {2, 1}: true, {2, 2}: true}
		for p := range block {
			l.grid.Set(p[0], p[1], core.Active)
		}
		for i := 0; i < 3; i++ {
			if err := l.Advance(); err != nil {
				t.Fatal(err)
			}
			expectAlive(t, l, block)
		}
	}
}

func TestBlockInCorner(t *testing.T) {
	l := newEmpty(t, 3, 3, 1)
	block := map[[2]int]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}
	for p := range block {
		l.grid.Set(p[0], p[1], core.Active)
	}
	if err := l.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, l, block)
}

func TestBlinkerOscillation(t *testing.T) {
	l := newEmpty(t, 5, 5, 1)
	l.grid.Set(2, 1, core.Active)
	l.grid.Set(2, 2, core.Active)
	l.grid.Set(2, 3, core.Active)

	if err := l.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, l, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	if err := l.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, l, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

	if l.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", l.Generation())
	}
	if got := l.State(); got != "Generation: 2 | Alive: 3 | Dead: 22" {
		t.Fatalf("state = %q", got)
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 7}, {9, 4}, {16, 16}} {
		l := newEmpty(t, size[0], size[1], 1)
		for i := 0; i < 4; i++ {
			if err := l.Advance(); err != nil {
				t.Fatal(err)
			}
		}
		if alive, _ := l.Counts(); alive != 0 {
			t.Fatalf("%v: %d cells came alive on an empty grid", size, alive)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	dims := core.Dimensions{W: 40, H: 30 + core.BannerHeight}
	seq := New(automaton.Config{CellSize: 1, InitialState: "default", Rand: pcore.NewRNG(77), Workers: 1})
	par := New(automaton.Config{CellSize: 1, InitialState: "default", Rand: pcore.NewRNG(77), Workers: 4})
	if err := seq.Initialize(dims); err != nil {
		t.Fatal(err)
	}
	if err := par.Initialize(dims); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := seq.Advance(); err != nil {
			t.Fatal(err)
		}
		if err := par.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	a, _ := seq.Grid().Snapshot()
	b, _ := par.Grid().Snapshot()
	for x := range a {
		for y := range a[x] {
			if a[x][y] != b[x][y] {
				t.Fatalf("generation 10 differs at (%d,%d)", x, y)
			}
		}
	}
	if seq.State() != par.State() {
		t.Fatalf("state %q vs %q", seq.State(), par.State())
	}
}

func TestRegistered(t *testing.T) {
	a, err := automaton.New("gameoflife", automaton.Config{CellSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.(*Life); !ok {
		t.Fatalf("registry built %T", a)
	}
}
