package nav

import (
	"fmt"

	pcore "automata/pkg/core"
)

// Direction is one of the four compass points, ordered clockwise.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Orientation is the rotation capability a grid agent needs.
type Orientation[O any] interface {
	TurnRight() O
	TurnLeft() O
	TurnAround() O
}

var _ Orientation[Direction] = North

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(r pcore.Source) Direction {
	return Direction(r.IntN(4))
}

// TurnRight rotates 90 degrees clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft rotates 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// TurnAround rotates 180 degrees.
func (d Direction) TurnAround() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
