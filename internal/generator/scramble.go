// Package generator derives new levels from existing ones.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/notation"
	"github.com/nickmafra/sym-balls/internal/permutation"
	"github.com/nickmafra/sym-balls/internal/ports"
)

// ErrNoGenerators is returned for a base level without moves to scramble with.
var ErrNoGenerators = errors.New("generator: base level has no generating set")

// Scrambler builds a level whose start is a random walk away from the goal.
// With a Solver wired it also checks the result is solvable in at least one move.
type Scrambler struct {
	Solver ports.Solver
}

func NewScrambler(s ports.Solver) *Scrambler { return &Scrambler{Solver: s} }

func walkLength(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 3
	case domain.Medium:
		return 6
	case domain.Hard:
		return 10
	default:
		return 16 // Expert
	}
}

// Generate scrambles base deterministically for a given seed and difficulty.
func (g *Scrambler) Generate(ctx context.Context, base *domain.Level, seed int64, diff domain.Difficulty) (*domain.Level, ports.Stats, error) {
	start := time.Now()
	cfg, err := assembler.Assemble(base.LevelSchema)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if len(cfg.Generators) == 0 {
		return nil, ports.Stats{}, ErrNoGenerators
	}
	rng := rand.New(rand.NewSource(seed))

	steps := walkLength(diff)
	scramble := cfg.Goal
	for i := 0; i < steps || permutation.Equal(scramble, cfg.Goal); i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{}, err
		}
		if i >= steps*4 {
			// every walk came back to the goal, e.g. a single involution
			break
		}
		m := cfg.Generators[rng.Intn(len(cfg.Generators))]
		scramble, _ = permutation.Compose(scramble, m.Perm)
	}

	nodes := 0
	if g.Solver != nil {
		probe := *cfg
		probe.Initial = scramble
		from, _ := permutation.Apply(scramble, domain.CanonicalArrangement(cfg.Length))
		path, st, err := g.Solver.Solve(ctx, &probe, from)
		nodes = st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, fmt.Errorf("verify scramble: %w", err)
		}
		if len(path) == 0 {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("verify scramble: start equals goal")
		}
	}

	out := base.Clone()
	out.ID = fmt.Sprintf("%s-%s-%d", base.ID, diff, seed)
	if base.Title != "" {
		out.Title = fmt.Sprintf("%s (%s #%d)", base.Title, diff, seed)
	}
	out.Difficulty = diff
	out.CreatedAt = time.Now().UnixNano()
	out.InitialItems = []string{notation.Format(permutation.Cycles(scramble))}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
