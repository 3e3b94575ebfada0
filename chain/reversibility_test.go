package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/builder"
	"github.com/katalvlaran/markov/matrix"
)

func TestReversible_SymmetricDoublyStochastic(t *testing.T) {
	t.Parallel()

	c := mustChain(t, [][]float64{
		{0.5, 0.25, 0.25},
		{0.25, 0.5, 0.25},
		{0.25, 0.25, 0.5},
	})
	pi, err := c.StationaryDistribution()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, pi, tol)

	rev, err := c.IsReversible()
	require.NoError(t, err)
	assert.True(t, rev)
}

func TestReversible_RandomSymmetric(t *testing.T) {
	t.Parallel()

	checked := 0
	for seed := int64(1); seed <= 10; seed++ {
		c := mustBuilt(t, builder.RandomSymmetric(6, 4), builder.WithSeed(seed))
		if !c.IsIrreducible() {
			continue
		}
		checked++
		rev, err := c.IsReversible()
		require.NoError(t, err)
		assert.True(t, rev, "seed %d", seed)
		db, err := c.DetailedBalanceHolds()
		require.NoError(t, err)
		assert.True(t, db, "seed %d", seed)
	}
	assert.Positive(t, checked)
}

func TestReversible_BirthDeath(t *testing.T) {
	t.Parallel()

	c := mustBuilt(t, builder.Lazy(builder.RandomWalk(5, 0.3), 0.5))
	rev, err := c.IsReversible()
	require.NoError(t, err)
	assert.True(t, rev)
}

func TestReversible_TinyStationaryMass(t *testing.T) {
	t.Parallel()

	// A biased birth–death walk is always reversible. With 30 states the
	// stationary mass at the low end falls near 1e-11, so B[i,j] divides by
	// tiny π[i] and magnifies eigenvector rounding well beyond 1e-9.
	for _, n := range []int{20, 30} {
		c := mustBuilt(t, builder.RandomWalk(n, 0.7))
		pi, err := c.StationaryDistribution()
		require.NoError(t, err)
		assert.Less(t, pi[0], 1e-6, "n=%d", n)

		rev, err := c.IsReversible()
		require.NoError(t, err)
		assert.True(t, rev, "n=%d", n)

		db, err := c.DetailedBalanceHolds()
		require.NoError(t, err)
		assert.Equal(t, db, rev, "n=%d: both reversibility checks must agree", n)
	}
}

func TestReversible_RotationIsNot(t *testing.T) {
	t.Parallel()

	c := mustBuilt(t, builder.Lazy(builder.Cycle(3), 0.5))
	rev, err := c.IsReversible()
	require.NoError(t, err)
	assert.False(t, rev)
	db, err := c.DetailedBalanceHolds()
	require.NoError(t, err)
	assert.False(t, db)

	// Uniform π makes the reversed chain the transpose.
	b, err := c.BackwardTransitionMatrix()
	require.NoError(t, err)
	tr, err := matrix.Transpose(c.TransitionMatrix())
	require.NoError(t, err)
	ok, err := matrix.AllClose(b, tr, matrix.WithTolerance(tol, 0))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBackwardMatrix_Stochastic(t *testing.T) {
	t.Parallel()

	c := mustBuilt(t, builder.Random(7), builder.WithSeed(99))
	b, err := c.BackwardTransitionMatrix()
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateRowSums(b, 1, matrix.Tolerance{Abs: tol}))

	pi, err := c.StationaryDistribution()
	require.NoError(t, err)
	next, err := matrix.VecMul(pi, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, pi, next, tol)

	require.NoError(t, b.Set(0, 0, 5))
	fresh, err := c.BackwardTransitionMatrix()
	require.NoError(t, err)
	v, _ := fresh.At(0, 0)
	assert.NotEqual(t, 5.0, v)
}
