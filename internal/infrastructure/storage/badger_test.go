package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/domain"
)

func openTestBadger(t *testing.T) *Badger {
	t.Helper()
	s, err := OpenBadger(InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerSaveLoadList(t *testing.T) {
	ctx := context.Background()
	s := openTestBadger(t)

	require.NoError(t, s.Save(ctx, sampleLevel("z", domain.Easy)))
	require.NoError(t, s.Save(ctx, sampleLevel("m", domain.Expert)))

	got, err := s.Load(ctx, "m")
	require.NoError(t, err)
	assert.Equal(t, sampleLevel("m", domain.Expert), got)

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, []string{"m", "z"}, []string{metas[0].ID, metas[1].ID})

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBadgerPersistentRequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	assert.Error(t, err)

	s, err := OpenBadger(DefaultBadgerConfig(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), sampleLevel("p", domain.Medium)))
	require.NoError(t, s.Close())
}

func TestBadgerRejectsInvalid(t *testing.T) {
	s := openTestBadger(t)
	assert.ErrorIs(t, s.Save(context.Background(), nil), ErrInvalidLevel)
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	custom := openTestBadger(t)
	builtin := NewFS(t.TempDir())
	require.NoError(t, builtin.Save(ctx, sampleLevel("shared", domain.Easy)))
	require.NoError(t, builtin.Save(ctx, sampleLevel("base", domain.Easy)))

	c := NewChain(custom, builtin)
	override := sampleLevel("shared", domain.Expert)
	require.NoError(t, c.Save(ctx, override))

	got, err := c.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.Expert, got.Difficulty)

	got, err = c.Load(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, "base", got.ID)

	_, err = c.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	metas, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 2)

	assert.ErrorIs(t, NewChain().Save(ctx, override), ErrReadOnly)
}
