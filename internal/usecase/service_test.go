package usecase

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/game"
	"github.com/nickmafra/sym-balls/internal/generator"
	"github.com/nickmafra/sym-balls/internal/hint"
	"github.com/nickmafra/sym-balls/internal/infrastructure/cache"
	"github.com/nickmafra/sym-balls/internal/infrastructure/storage"
	"github.com/nickmafra/sym-balls/internal/notation"
	"github.com/nickmafra/sym-balls/internal/solver"
	"github.com/nickmafra/sym-balls/internal/validator"
)

var builtins = fstest.MapFS{
	"easy/square.yaml": {Data: []byte(`id: square
title: Square
length: 4
initialItems: ["(0,1)"]
generatingSet: ["(0,1)", "(0,1,2,3)"]
moveNames: [swap, turn]
`)},
	"easy/sandbox.yaml": {Data: []byte("id: sandbox\nlength: 3\n")},
}

func newTestService(t *testing.T, maxSessions int) *Service {
	t.Helper()
	custom, err := storage.OpenBadger(storage.InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = custom.Close() })

	store := storage.NewChain(custom, storage.NewReadOnlyFS(builtins))
	levels := cache.NewLevels(store)
	bfs := solver.NewBFSSolver(0)
	v, err := validator.New()
	require.NoError(t, err)
	svc := NewService(store, levels, bfs, generator.NewScrambler(bfs), v, hint.NewNextMove(bfs),
		Options{MaxSessions: maxSessions})
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSessionPlayThrough(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	v, err := svc.StartSession(ctx, "square")
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "initial", v.Status)
	assert.Equal(t, domain.Arrangement{1, 0, 2, 3}, v.Arrangement)
	assert.True(t, v.Policy.LockInitialItems)
	require.Len(t, v.Moves, 2)
	assert.Equal(t, "swap", v.Moves[0].Name)

	v, err = svc.ApplyMove(ctx, v.ID, 0)
	require.NoError(t, err)
	assert.True(t, v.Solved)
	assert.Equal(t, "solved", v.Status)
	assert.Equal(t, []int{0}, v.History)

	_, err = svc.ApplyMove(ctx, v.ID, 1)
	assert.ErrorIs(t, err, game.ErrSolved)

	v, err = svc.ResetSession(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "initial", v.Status)
	assert.Zero(t, v.MoveCount)

	_, err = svc.ApplyMove(ctx, v.ID, 9)
	var ime *game.InvalidMoveError
	assert.ErrorAs(t, err, &ime)
}

func TestUnknownSessionAndLevel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	_, err := svc.Session(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.ApplyMove(ctx, "nope", 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.EndSession(ctx, "nope"), ErrSessionNotFound)

	_, err = svc.StartSession(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthoring(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	sb, err := svc.StartSession(ctx, "sandbox")
	require.NoError(t, err)
	assert.False(t, sb.Policy.LockInitialItems)

	v, err := svc.AuthorMove(ctx, sb.ID, "spin", "(0,1,2)")
	require.NoError(t, err)
	require.Len(t, v.Moves, 1)
	assert.Equal(t, "spin", v.Moves[0].Name)

	_, err = svc.AuthorMove(ctx, sb.ID, "", "(0,1")
	var se *assembler.SchemaError
	require.ErrorAs(t, err, &se)
	var pe *notation.ParseError
	assert.ErrorAs(t, err, &pe)

	var pv *game.PolicyViolation
	_, err = svc.RemoveMove(ctx, sb.ID, 0)
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "allowedDeletion", pv.Flag)
	_, err = svc.DuplicateMove(ctx, sb.ID, 0)
	assert.ErrorAs(t, err, &pv)
	_, err = svc.InvertMove(ctx, sb.ID, 0)
	assert.ErrorAs(t, err, &pv)

	sq, err := svc.StartSession(ctx, "square")
	require.NoError(t, err)
	// locked levels reject before the notation is read
	_, err = svc.AuthorMove(ctx, sq.ID, "", "garbage")
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "lockInitialItems", pv.Flag)

	v, err = svc.ResetSession(ctx, sb.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Moves)
}

func TestHintAndSolve(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)
	v, err := svc.StartSession(ctx, "square")
	require.NoError(t, err)

	h, ok, err := svc.Hint(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, h.MoveIndex)
	assert.Equal(t, 1, h.Remaining)

	path, st, err := svc.Solve(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
	assert.Positive(t, st.Nodes)

	_, err = svc.ApplyMove(ctx, v.ID, 0)
	require.NoError(t, err)
	_, ok, err = svc.Hint(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionEviction(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 2)

	a, err := svc.StartSession(ctx, "square")
	require.NoError(t, err)
	b, err := svc.StartSession(ctx, "square")
	require.NoError(t, err)
	_, err = svc.Session(ctx, a.ID)
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, "sandbox")
	require.NoError(t, err)
	assert.Equal(t, 2, svc.SessionCount())

	_, err = svc.Session(ctx, a.ID)
	assert.NoError(t, err)
	_, err = svc.Session(ctx, b.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, svc.EndSession(ctx, a.ID))
	assert.Equal(t, 1, svc.SessionCount())
	require.NoError(t, svc.Close())
	assert.Zero(t, svc.SessionCount())
}

func TestLevels(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	l := &domain.Level{
		ID:         "triangle",
		Difficulty: domain.Medium,
		LevelSchema: domain.LevelSchema{
			Length:        3,
			InitialItems:  []string{"(0,1,2)"},
			GeneratingSet: []string{"(0,1,2)"},
		},
	}
	require.NoError(t, svc.SaveLevel(ctx, l))

	got, err := svc.LoadLevel(ctx, "triangle")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Length)

	got.GeneratingSet[0] = "(0,2)"
	got.InitialItems = append(got.InitialItems[:0], "(1,2)")
	fresh, err := svc.LoadLevel(ctx, "triangle")
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,1,2)"}, fresh.GeneratingSet)
	assert.Equal(t, []string{"(0,1,2)"}, fresh.InitialItems)

	metas, err := svc.ListLevels(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(metas))
	for _, m := range metas {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"sandbox", "square", "triangle"}, ids)

	bad := *l
	bad.ID = "broken"
	bad.GeneratingSet = []string{"(0,3)"}
	var se *assembler.SchemaError
	assert.ErrorAs(t, svc.SaveLevel(ctx, &bad), &se)

	scrambled, _, err := svc.Scramble(ctx, "square", 42, domain.Hard, true)
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, scrambled.Difficulty)
	again, err := svc.LoadLevel(ctx, scrambled.ID)
	require.NoError(t, err)
	assert.Equal(t, scrambled.InitialItems, again.InitialItems)

	v, err := svc.StartSession(ctx, scrambled.ID)
	require.NoError(t, err)
	assert.False(t, v.Solved)
}

func TestNotConfigured(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil, Options{})
	_, err := svc.ListLevels(context.Background())
	assert.True(t, errors.Is(err, errNotConfigured))
	_, err = svc.StartSession(context.Background(), "x")
	assert.True(t, errors.Is(err, errNotConfigured))
}
