package permutation

import (
	"fmt"

	"github.com/nickmafra/sym-balls/internal/domain"
)

// Build turns disjoint cycles into a permutation of the given length.
// Positions not named by any cycle stay fixed. Cycles of length 0 or 1 move
// nothing but still claim their position for the disjointness check.
func Build(cycles []domain.Cycle, length int) (domain.Permutation, error) {
	if length <= 0 {
		return nil, ErrBadLength
	}
	perm := Identity(length)
	owner := make([]int, length)
	for i := range owner {
		owner[i] = -1
	}
	for ci, c := range cycles {
		for _, p := range c {
			if p < 0 || p >= length {
				return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, p, length)
			}
			if owner[p] >= 0 {
				return nil, &OverlapError{Position: p, First: owner[p], Second: ci}
			}
			owner[p] = ci
		}
		if len(c) < 2 {
			continue
		}
		for i, p := range c {
			perm[p] = c[(i+1)%len(c)]
		}
	}
	return perm, nil
}
