package solver

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/permutation"
	"github.com/nickmafra/sym-balls/internal/ports"
)

var (
	// ErrNoSolution indicates the goal is not reachable with the given moves.
	ErrNoSolution = errors.New("solver: goal unreachable")
	// ErrBudgetExceeded indicates the search visited MaxNodes states first.
	ErrBudgetExceeded = errors.New("solver: node budget exceeded")
)

// DefaultMaxNodes bounds the search for interactive use.
const DefaultMaxNodes = 200_000

// BFSSolver runs a breadth-first search over arrangements, so the first path
// found is a shortest one.
type BFSSolver struct {
	MaxNodes int
}

func NewBFSSolver(maxNodes int) *BFSSolver {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	return &BFSSolver{MaxNodes: maxNodes}
}

type visit struct {
	parent string
	move   int
}

// Solve returns move indices leading from `from` to the goal of cfg.
func (s *BFSSolver) Solve(ctx context.Context, cfg *domain.PuzzleConfig, from domain.Arrangement) ([]int, ports.Stats, error) {
	start := time.Now()
	goal, err := permutation.Apply(cfg.Goal, domain.CanonicalArrangement(cfg.Length))
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if len(from) != cfg.Length {
		return nil, ports.Stats{}, permutation.ErrLengthMismatch
	}

	goalKey := key(goal)
	rootKey := key(from)
	seen := map[string]visit{rootKey: {move: -1}}
	queue := []domain.Arrangement{from}
	nodes := 0
	for len(queue) > 0 {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		cur := queue[0]
		queue = queue[1:]
		curKey := key(cur)
		if curKey == goalKey {
			return unwind(seen, curKey), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		nodes++
		if nodes > s.MaxNodes {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrBudgetExceeded
		}
		for i, m := range cfg.Generators {
			next, err := permutation.Apply(m.Perm, cur)
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			k := key(next)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = visit{parent: curKey, move: i}
			queue = append(queue, next)
		}
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoSolution
}

func unwind(seen map[string]visit, k string) []int {
	var rev []int
	for {
		v := seen[k]
		if v.move < 0 {
			break
		}
		rev = append(rev, v.move)
		k = v.parent
	}
	path := make([]int, len(rev))
	for i, m := range rev {
		path[len(rev)-1-i] = m
	}
	return path
}

// key encodes an arrangement as a compact map key.
func key(a domain.Arrangement) string {
	buf := make([]byte, 0, len(a)*2)
	for _, item := range a {
		buf = binary.AppendUvarint(buf, uint64(item))
	}
	return string(buf)
}
