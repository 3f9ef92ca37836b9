package ports

import (
	"context"
	"time"

	"github.com/nickmafra/sym-balls/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a shortest move sequence from an arrangement to the goal.
type Solver interface {
	Solve(ctx context.Context, cfg *domain.PuzzleConfig, from domain.Arrangement) ([]int, Stats, error)
}

// Generator creates a scrambled level from a base level.
type Generator interface {
	Generate(ctx context.Context, base *domain.Level, seed int64, difficulty domain.Difficulty) (*domain.Level, Stats, error)
}

// Validator checks a level before it is stored.
type Validator interface {
	Validate(ctx context.Context, l *domain.Level) error
}

// Hinter suggests the next move for an arrangement.
type Hinter interface {
	Hint(ctx context.Context, cfg *domain.PuzzleConfig, from domain.Arrangement) (domain.Hint, bool, error)
}

// LevelStore persists and retrieves levels.
type LevelStore interface {
	Save(ctx context.Context, l *domain.Level) error
	Load(ctx context.Context, id string) (*domain.Level, error)
	List(ctx context.Context) ([]domain.LevelMeta, error)
}

// LevelCache serves levels together with their assembled configuration.
type LevelCache interface {
	Get(ctx context.Context, id string) (*domain.Level, *domain.PuzzleConfig, error)
	Invalidate(id string)
}
