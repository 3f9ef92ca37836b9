package levels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/infrastructure/storage"
	"github.com/nickmafra/sym-balls/internal/permutation"
	"github.com/nickmafra/sym-balls/internal/solver"
	"github.com/nickmafra/sym-balls/internal/validator"
)

func TestBuiltinLevelsAreValidAndSolvable(t *testing.T) {
	ctx := context.Background()
	store := storage.NewReadOnlyFS(FS())
	metas, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 7)

	v, err := validator.New()
	require.NoError(t, err)
	bfs := solver.NewBFSSolver(0)
	for _, meta := range metas {
		t.Run(meta.ID, func(t *testing.T) {
			l, err := store.Load(ctx, meta.ID)
			require.NoError(t, err)
			require.NoError(t, v.Validate(ctx, l))

			cfg, err := assembler.Assemble(l.LevelSchema)
			require.NoError(t, err)
			if len(cfg.Generators) == 0 {
				assert.False(t, cfg.Policy.LockInitialItems)
				return
			}
			start, err := permutation.Apply(cfg.Initial, domain.CanonicalArrangement(cfg.Length))
			require.NoError(t, err)

			sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			path, _, err := bfs.Solve(sctx, cfg, start)
			require.NoError(t, err)
			assert.NotEmpty(t, path, "level starts on its goal")
		})
	}
}

func TestBucketsSetDifficulty(t *testing.T) {
	l, err := storage.NewReadOnlyFS(FS()).Load(context.Background(), "three-rings")
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, l.Difficulty)
}
