package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/builder"
	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/matrix"
)

func TestForwardCommittors_GamblersRuin(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 6, 11} {
		c := mustBuilt(t, builder.RandomWalk(n, 0.5))
		q, err := c.ForwardCommittors([]int{0}, []int{n - 1})
		require.NoError(t, err)
		require.Len(t, q, n)
		for i := range q {
			assert.InDelta(t, float64(i)/float64(n-1), q[i], tol, "n=%d i=%d", n, i)
		}
	}
}

func TestForwardCommittors_BiasedWalk(t *testing.T) {
	t.Parallel()

	const n, p = 7, 0.6
	r := (1 - p) / p
	c := mustBuilt(t, builder.RandomWalk(n, p))
	q, err := c.ForwardCommittors([]int{0}, []int{n - 1})
	require.NoError(t, err)
	for i := range q {
		want := (1 - math.Pow(r, float64(i))) / (1 - math.Pow(r, n-1))
		assert.InDelta(t, want, q[i], tol, "i=%d", i)
	}
}

func TestForwardCommittors_Boundaries(t *testing.T) {
	t.Parallel()

	c := mustBuilt(t, builder.Random(5), builder.WithSeed(3))

	q, err := c.ForwardCommittors([]int{0, 1}, []int{4, 4})
	require.NoError(t, err)
	assert.Zero(t, q[0])
	assert.Zero(t, q[1])
	assert.Equal(t, 1.0, q[4])
	for _, i := range []int{2, 3} {
		assert.True(t, q[i] > 0 && q[i] < 1, "q[%d]=%g", i, q[i])
	}

	// Interior satisfies q = T·q.
	tq, err := matrix.MatVec(c.TransitionMatrix(), q)
	require.NoError(t, err)
	assert.InDelta(t, q[2], tq[2], tol)
	assert.InDelta(t, q[3], tq[3], tol)

	// No interior states: the indicator of B.
	q, err = c.ForwardCommittors([]int{0, 2}, []int{1, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1, 1}, q)

	// Empty B is never hit.
	q, err = c.ForwardCommittors([]int{0}, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 0}, q, tol)
}

func TestBackwardCommittors(t *testing.T) {
	t.Parallel()

	// Reversible chain: q⁻ = 1 − q⁺.
	const n = 6
	c := mustBuilt(t, builder.RandomWalk(n, 0.5))
	qf, err := c.ForwardCommittors([]int{0}, []int{n - 1})
	require.NoError(t, err)
	qb, err := c.BackwardCommittors([]int{0}, []int{n - 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, qb[0])
	assert.Equal(t, 0.0, qb[n-1])
	for i := range qf {
		assert.InDelta(t, 1-qf[i], qb[i], tol, "i=%d", i)
	}

	// Rotation: arriving in 1 means the previous state was 0.
	rot := mustBuilt(t, builder.Lazy(builder.Cycle(3), 0.5))
	qb, err = rot.BackwardCommittors([]int{0}, []int{2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 0}, qb, tol)
}

func TestCommittors_Errors(t *testing.T) {
	t.Parallel()

	c := mustBuilt(t, builder.Cycle(3))

	_, err := c.ForwardCommittors([]int{0, 1}, []int{1})
	assert.ErrorIs(t, err, chain.ErrOverlappingSets)
	_, err = c.BackwardCommittors([]int{2}, []int{2})
	assert.ErrorIs(t, err, chain.ErrOverlappingSets)

	_, err = c.ForwardCommittors([]int{0}, []int{3})
	assert.ErrorIs(t, err, chain.ErrStateOutOfRange)
	_, err = c.ForwardCommittors([]int{-1}, []int{2})
	assert.ErrorIs(t, err, chain.ErrStateOutOfRange)

	_, err = c.ForwardCommittors(nil, nil)
	assert.ErrorIs(t, err, chain.ErrSingularSystem)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
