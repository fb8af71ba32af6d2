package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a malformed caller-supplied value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotInitialized reports an operation on a grid that has no cells yet.
	ErrNotInitialized = errors.New("grid not initialized")
	// ErrEmptyGrid reports a random pick from a grid without cells.
	ErrEmptyGrid = errors.New("grid is empty")
	// ErrUnsupportedInitialState is matched by every UnsupportedInitialStateError.
	ErrUnsupportedInitialState = errors.New("unsupported initial state")
)

// UnsupportedInitialStateError is returned when an automaton is asked to start
// from a keyword it does not know.
type UnsupportedInitialStateError struct {
	Automaton string
	State     string
}

func (e *UnsupportedInitialStateError) Error() string {
	return fmt.Sprintf("invalid initial state %q for %q", e.State, e.Automaton)
}

// Is lets errors.Is match ErrUnsupportedInitialState.
func (e *UnsupportedInitialStateError) Is(target error) bool {
	return target == ErrUnsupportedInitialState
}
