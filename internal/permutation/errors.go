package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength indicates a non-positive permutation length.
	ErrBadLength = errors.New("permutation: length must be positive")
	// ErrOutOfRange indicates a position outside [0, length).
	ErrOutOfRange = errors.New("permutation: position out of range")
	// ErrNotBijection indicates a mapping that repeats or skips a destination.
	ErrNotBijection = errors.New("permutation: mapping is not a bijection")
	// ErrLengthMismatch indicates operands of different lengths.
	ErrLengthMismatch = errors.New("permutation: length mismatch")
)

// OverlapError reports a position used by more than one cycle of one build.
// First and Second are cycle indices; they are equal when a single cycle
// repeats the position.
type OverlapError struct {
	Position int
	First    int
	Second   int
}

func (e *OverlapError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("permutation: position %d repeated in cycle %d", e.Position, e.First)
	}
	return fmt.Sprintf("permutation: position %d shared by cycles %d and %d", e.Position, e.First, e.Second)
}
