package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNilConfig indicates New was called without a configuration.
	ErrNilConfig = errors.New("game: nil config")
	// ErrSolved indicates a move was attempted after the goal was reached.
	ErrSolved = errors.New("game: puzzle already solved")
)

// InvalidMoveError reports a move reference or permutation the game cannot use.
type InvalidMoveError struct {
	Index  int
	Count  int
	Reason string
}

func (e *InvalidMoveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("game: invalid move %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("game: move index %d out of range [0,%d)", e.Index, e.Count)
}

// PolicyViolation reports an authoring action forbidden by the policy flags.
type PolicyViolation struct {
	Action Action
	Flag   string // flag that forbids it, empty for an unknown action
}

func (e *PolicyViolation) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("game: %s not allowed", e.Action)
	}
	return fmt.Sprintf("game: %s not allowed (%s)", e.Action, e.Flag)
}
