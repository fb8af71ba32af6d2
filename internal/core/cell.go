package core

import (
	"fmt"

	pcore "automata/pkg/core"
)

// Cell is the two-state value stored in every grid position.
type Cell uint8

const (
	Passive Cell = iota
	Active
)

// Skew selects which state a skewed draw favours.
type Skew uint8

const (
	SkewActive Skew = iota + 1
	SkewPassive
)

// ParseSkew maps "active" and "passive" onto a Skew.
func ParseSkew(s string) (Skew, error) {
	switch s {
	case "active":
		return SkewActive, nil
	case "passive":
		return SkewPassive, nil
	}
	return 0, fmt.Errorf("skew %q: %w", s, ErrInvalidArgument)
}

func (s Skew) String() string {
	switch s {
	case SkewActive:
		return "active"
	case SkewPassive:
		return "passive"
	}
	return fmt.Sprintf("Skew(%d)", uint8(s))
}

// Balanced returns Active or Passive with equal probability.
func Balanced(r pcore.Source) Cell {
	if r.IntN(2) == 0 {
		return Passive
	}
	return Active
}

// Skewed draws uniformly from [0, bias]. A draw of exactly zero yields the
// state that skew does not favour; anything else yields the favoured one.
// A bias of 1 is therefore balanced and a bias of 100 gives the disfavoured
// state a 1 in 101 chance.
func Skewed(r pcore.Source, skew Skew, bias int) (Cell, error) {
	if bias < 1 {
		return Passive, fmt.Errorf("skew bias %d: %w", bias, ErrInvalidArgument)
	}
	zero := r.IntN(bias+1) == 0
	switch skew {
	case SkewActive:
		if zero {
			return Passive, nil
		}
		return Active, nil
	case SkewPassive:
		if zero {
			return Active, nil
		}
		return Passive, nil
	}
	return Passive, fmt.Errorf("skew %v: %w", skew, ErrInvalidArgument)
}

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Active {
		return Passive
	}
	return Active
}

// Alive reports whether the cell is Active.
func (c Cell) Alive() bool { return c == Active }

func (c Cell) String() string {
	if c == Active {
		return "Active"
	}
	return "Passive"
}
