package core

import (
	"errors"
	"math"
	"testing"

	pcore "automata/pkg/core"
)

func TestBalancedProducesBothStates(t *testing.T) {
	r := pcore.NewRNG(3)
	const n = 20000
	active := 0
	for i := 0; i < n; i++ {
		if Balanced(r) == Active {
			active++
		}
	}
	ratio := float64(active) / n
	if math.Abs(ratio-0.5) > 0.02 {
		t.Fatalf("balanced active ratio %.3f, want ~0.5", ratio)
	}
}

func TestSkewedBiasOneIsBalanced(t *testing.T) {
	for _, skew := range []Skew{SkewActive, SkewPassive} {
		r := pcore.NewRNG(11)
		const n = 20000
		active := 0
		for i := 0; i < n; i++ {
			c, err := Skewed(r, skew, 1)
			if err != nil {
				t.Fatalf("Skewed(%v, 1): %v", skew, err)
			}
			if c == Active {
				active++
			}
		}
		ratio := float64(active) / n
		if math.Abs(ratio-0.5) > 0.02 {
			t.Fatalf("skew %v bias 1 active ratio %.3f, want ~0.5", skew, ratio)
		}
	}
}

func TestSkewedBiasHundred(t *testing.T) {
	r := pcore.NewRNG(5)
	const n = 202000
	passive := 0
	for i := 0; i < n; i++ {
		c, err := Skewed(r, SkewActive, 100)
		if err != nil {
			t.Fatal(err)
		}
		if c == Passive {
			passive++
		}
	}
	got := float64(passive) / n
	want := 1.0 / 101
	if math.Abs(got-want) > want*0.2 {
		t.Fatalf("passive frequency %.5f, want ~%.5f", got, want)
	}

	r = pcore.NewRNG(6)
	active := 0
	for i := 0; i < n; i++ {
		c, _ := Skewed(r, SkewPassive, 100)
		if c == Active {
			active++
		}
	}
	got = float64(active) / n
	if math.Abs(got-want) > want*0.2 {
		t.Fatalf("active frequency under passive skew %.5f, want ~%.5f", got, want)
	}
}

func TestSkewedRejectsUnknownSkew(t *testing.T) {
	_, err := Skewed(pcore.NewRNG(1), Skew(9), 10)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	_, err = Skewed(pcore.NewRNG(1), SkewActive, 0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero bias, got %v", err)
	}
}

func TestParseSkew(t *testing.T) {
	if s, err := ParseSkew("active"); err != nil || s != SkewActive {
		t.Fatalf("ParseSkew(active) = %v, %v", s, err)
	}
	if s, err := ParseSkew("passive"); err != nil || s != SkewPassive {
		t.Fatalf("ParseSkew(passive) = %v, %v", s, err)
	}
	if _, err := ParseSkew("sideways"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFlip(t *testing.T) {
	if Active.Flip() != Passive || Passive.Flip() != Active {
		t.Fatal("Flip must swap the two states")
	}
}

func TestUnsupportedInitialStateIs(t *testing.T) {
	var err error = &UnsupportedInitialStateError{Automaton: "gameoflife", State: "glider-gun"}
	if !errors.Is(err, ErrUnsupportedInitialState) {
		t.Fatal("UnsupportedInitialStateError must match ErrUnsupportedInitialState")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Fatal("UnsupportedInitialStateError must not match ErrInvalidArgument")
	}
}
