// Package game holds the live puzzle state for one play session.
//
// A Game is not safe for concurrent use; one caller drives it at a time.
package game

import (
	"fmt"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/permutation"
)

// Game is the mutable puzzle: current arrangement, legal moves and policy.
type Game struct {
	length  int
	policy  domain.PolicyFlags
	start   domain.Arrangement
	goal    domain.Arrangement
	moves   []domain.Move
	current domain.Arrangement
	history []int
	status  domain.Status
}

// New builds a game in StatusInitial from an assembled configuration.
func New(cfg *domain.PuzzleConfig) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := permutation.Validate(cfg.Initial, cfg.Length); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if err := permutation.Validate(cfg.Goal, cfg.Length); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	moves := make([]domain.Move, len(cfg.Generators))
	for i, m := range cfg.Generators {
		if err := permutation.Validate(m.Perm, cfg.Length); err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		moves[i] = cloneMove(m)
	}

	canonical := domain.CanonicalArrangement(cfg.Length)
	start, _ := permutation.Apply(cfg.Initial, canonical)
	goal, _ := permutation.Apply(cfg.Goal, canonical)
	g := &Game{
		length: cfg.Length,
		policy: cfg.Policy,
		start:  start,
		goal:   goal,
		moves:  moves,
	}
	g.Reset()
	return g, nil
}

// Reset restores the starting arrangement and clears the history.
func (g *Game) Reset() {
	g.current = append(domain.Arrangement(nil), g.start...)
	g.history = nil
	g.status = domain.StatusInitial
}

// ApplyMove permutes the arrangement by move index. On error nothing changes.
func (g *Game) ApplyMove(index int) error {
	if index < 0 || index >= len(g.moves) {
		return &InvalidMoveError{Index: index, Count: len(g.moves)}
	}
	if g.status == domain.StatusSolved {
		return ErrSolved
	}
	next, err := permutation.Apply(g.moves[index].Perm, g.current)
	if err != nil {
		return &InvalidMoveError{Index: index, Count: len(g.moves), Reason: err.Error()}
	}
	g.current = next
	g.history = append(g.history, index)
	if g.IsSolved() {
		g.status = domain.StatusSolved
	} else {
		g.status = domain.StatusReady
	}
	return nil
}

// IsSolved reports whether the arrangement matches the goal.
func (g *Game) IsSolved() bool {
	for i, item := range g.current {
		if g.goal[i] != item {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the current arrangement.
func (g *Game) Snapshot() domain.Arrangement {
	return append(domain.Arrangement(nil), g.current...)
}

// Goal returns a copy of the goal arrangement.
func (g *Game) Goal() domain.Arrangement {
	return append(domain.Arrangement(nil), g.goal...)
}

// Moves returns a copy of the move list, generators first.
func (g *Game) Moves() []domain.Move {
	out := make([]domain.Move, len(g.moves))
	for i, m := range g.moves {
		out[i] = cloneMove(m)
	}
	return out
}

// History returns the applied move indices since the last reset.
func (g *Game) History() []int { return append([]int(nil), g.history...) }

func (g *Game) MoveCount() int { return len(g.history) }

func (g *Game) Length() int { return g.length }

func (g *Game) Status() domain.Status { return g.status }

func (g *Game) Policy() domain.PolicyFlags { return g.policy }

func cloneMove(m domain.Move) domain.Move {
	return domain.Move{Name: m.Name, Perm: append(domain.Permutation(nil), m.Perm...)}
}
