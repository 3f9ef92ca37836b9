package hint

import (
	"context"
	"fmt"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/permutation"
	"github.com/nickmafra/sym-balls/internal/ports"
)

// NextMove implements a Hinter that suggests the first step of a shortest solution.
type NextMove struct {
	Solver ports.Solver
}

func NewNextMove(s ports.Solver) *NextMove { return &NextMove{Solver: s} }

// Hint returns false when the arrangement already matches the goal.
func (h *NextMove) Hint(ctx context.Context, cfg *domain.PuzzleConfig, from domain.Arrangement) (domain.Hint, bool, error) {
	goal, err := permutation.Apply(cfg.Goal, domain.CanonicalArrangement(cfg.Length))
	if err != nil {
		return domain.Hint{}, false, err
	}
	if equalArrangement(from, goal) {
		return domain.Hint{}, false, nil
	}
	path, _, err := h.Solver.Solve(ctx, cfg, from)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(path) == 0 {
		return domain.Hint{}, false, nil
	}
	m := path[0]
	msg := fmt.Sprintf("Try %s: %d move(s) to the goal", cfg.Generators[m].Name, len(path))
	return domain.Hint{Message: msg, MoveIndex: m, Remaining: len(path)}, true, nil
}

func equalArrangement(a, b domain.Arrangement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
