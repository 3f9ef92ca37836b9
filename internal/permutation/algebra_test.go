package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/permutation"
)

func mustBuild(t *testing.T, length int, cycles ...domain.Cycle) domain.Permutation {
	t.Helper()
	p, err := permutation.Build(cycles, length)
	require.NoError(t, err)
	return p
}

func TestApplyMovesContentForward(t *testing.T) {
	p := mustBuild(t, 4, domain.Cycle{0, 1, 2})
	a := domain.Arrangement{10, 11, 12, 13}

	got, err := permutation.Apply(p, a)
	require.NoError(t, err)
	// content of 0 moves to 1, 1 to 2, 2 to 0
	assert.Equal(t, domain.Arrangement{12, 10, 11, 13}, got)
	assert.Equal(t, domain.Arrangement{10, 11, 12, 13}, a, "input must not change")

	_, err = permutation.Apply(p, domain.Arrangement{1, 2})
	assert.ErrorIs(t, err, permutation.ErrLengthMismatch)
}

func TestApplyInverseRoundTrip(t *testing.T) {
	moves := []domain.Permutation{
		mustBuild(t, 6, domain.Cycle{0, 1, 2, 3, 4, 5}),
		mustBuild(t, 6, domain.Cycle{0, 3}, domain.Cycle{1, 4, 2}),
		mustBuild(t, 6),
	}
	start := domain.Arrangement{5, 3, 1, 0, 2, 4}
	for _, m := range moves {
		fwd, err := permutation.Apply(m, start)
		require.NoError(t, err)
		back, err := permutation.Apply(permutation.Inverse(m), fwd)
		require.NoError(t, err)
		assert.Equal(t, start, back)
	}
}

func TestCompose(t *testing.T) {
	a := mustBuild(t, 3, domain.Cycle{0, 1})
	b := mustBuild(t, 3, domain.Cycle{1, 2})
	ab, err := permutation.Compose(a, b)
	require.NoError(t, err)

	start := domain.CanonicalArrangement(3)
	step1, _ := permutation.Apply(a, start)
	step2, _ := permutation.Apply(b, step1)
	once, _ := permutation.Apply(ab, start)
	assert.Equal(t, step2, once)

	_, err = permutation.Compose(a, permutation.Identity(4))
	assert.ErrorIs(t, err, permutation.ErrLengthMismatch)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, permutation.Validate(domain.Permutation{2, 0, 1}, 3))
	assert.ErrorIs(t, permutation.Validate(domain.Permutation{0, 0, 1}, 3), permutation.ErrNotBijection)
	assert.ErrorIs(t, permutation.Validate(domain.Permutation{0, 3, 1}, 3), permutation.ErrOutOfRange)
	assert.ErrorIs(t, permutation.Validate(domain.Permutation{0, 1}, 3), permutation.ErrLengthMismatch)
	assert.ErrorIs(t, permutation.Validate(nil, 0), permutation.ErrBadLength)
}

func TestCyclesAndOrder(t *testing.T) {
	p := mustBuild(t, 7, domain.Cycle{4, 2, 6}, domain.Cycle{1, 3})
	cycles := permutation.Cycles(p)
	assert.Equal(t, []domain.Cycle{{1, 3}, {2, 6, 4}}, cycles)

	rebuilt, err := permutation.Build(cycles, 7)
	require.NoError(t, err)
	assert.True(t, permutation.Equal(p, rebuilt))

	assert.Equal(t, 6, permutation.Order(p))
	assert.Equal(t, 1, permutation.Order(permutation.Identity(5)))
	assert.Nil(t, permutation.Cycles(permutation.Identity(5)))
	assert.True(t, permutation.IsIdentity(permutation.Identity(5)))
	assert.False(t, permutation.IsIdentity(p))
}

func TestOrderReturnsToStart(t *testing.T) {
	p := mustBuild(t, 5, domain.Cycle{0, 1, 2, 3, 4})
	a := domain.CanonicalArrangement(5)
	cur := a
	for i := 0; i < permutation.Order(p); i++ {
		var err error
		cur, err = permutation.Apply(p, cur)
		require.NoError(t, err)
		if i < permutation.Order(p)-1 {
			assert.NotEqual(t, a, cur)
		}
	}
	assert.Equal(t, a, cur)
}
