package chain_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/builder"
	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/matrix"
)

const tol = 1e-6

func mustChain(t *testing.T, rows [][]float64, opts ...chain.Option) *chain.Chain {
	t.Helper()
	c, err := chain.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return c
}

func mustBuilt(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *chain.Chain {
	t.Helper()
	m, err := builder.BuildMatrix(ctor, opts...)
	require.NoError(t, err)
	c, err := chain.New(m)
	require.NoError(t, err)

	return c
}

func TestNew_TwoStateScenario(t *testing.T) {
	t.Parallel()

	c := mustChain(t, [][]float64{{0.5, 0.5}, {0.3, 0.7}})
	assert.Equal(t, 2, c.NumStates())
	assert.True(t, c.IsIrreducible())
	assert.True(t, c.IsAperiodic())

	pi, err := c.StationaryDistribution()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.375, 0.625}, pi, tol)

	rev, err := c.IsReversible()
	require.NoError(t, err)
	assert.True(t, rev)

	db, err := c.DetailedBalanceHolds()
	require.NoError(t, err)
	assert.True(t, db)
}

func TestNew_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  [][]float64
		cause error
	}{
		{"non-square", [][]float64{{0.5, 0.5}}, matrix.ErrNonSquare},
		{"row sums to 1.2", [][]float64{{0.6, 0.6}, {0.5, 0.5}}, matrix.ErrRowSum},
		{"negative entry", [][]float64{{1.5, -0.5}, {0.5, 0.5}}, matrix.ErrEntryOutOfRange},
		{"NaN entry", [][]float64{{math.NaN(), 1}, {0.5, 0.5}}, matrix.ErrEntryOutOfRange},
		{"ragged", [][]float64{{1}, {0.5, 0.5}}, matrix.ErrRagged},
		{"empty", [][]float64{}, matrix.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := chain.NewFromRows(tc.rows)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, chain.ErrInvalidValue)
			assert.ErrorIs(t, err, tc.cause)
		})
	}

	c, err := chain.New(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, chain.ErrInvalidValue)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNew_OwnsCopy(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c, err := chain.New(m)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 0.7))
	got := c.TransitionMatrix()
	v, _ := got.At(0, 0)
	assert.Zero(t, v)

	require.NoError(t, got.Set(0, 1, 0.2))
	again, _ := c.TransitionMatrix().At(0, 1)
	assert.Equal(t, 1.0, again)
}

func TestNew_Tolerance(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0.5, 0.5001}, {0.5, 0.5}}
	_, err := chain.NewFromRows(rows)
	assert.ErrorIs(t, err, chain.ErrInvalidValue)

	c, err := chain.NewFromRows(rows, chain.WithTolerance(1e-3, 0))
	require.NoError(t, err)
	assert.Equal(t, matrix.Tolerance{Abs: 1e-3}, c.Tolerance())

	c, err = chain.NewFromRows([][]float64{{1}})
	require.NoError(t, err)
	assert.Equal(t, matrix.DefaultTolerance, c.Tolerance())

	assert.Panics(t, func() { chain.WithTolerance(-1, 0) })
	assert.Panics(t, func() { chain.WithTolerance(0, math.NaN()) })
}

func TestNew_RoundedRows(t *testing.T) {
	t.Parallel()

	// Hand-rounded to seven decimals: each row is off by 1e-7.
	c, err := chain.NewFromRows([][]float64{
		{0.1234567, 0.8765432},
		{0.3333333, 0.6666666},
	})
	require.NoError(t, err)
	assert.True(t, c.IsIrreducible())

	_, err = chain.NewFromRows([][]float64{
		{0.1234567, 0.8765432},
		{0.3333333, 0.6666666},
	}, chain.WithTolerance(1e-9, 0))
	assert.ErrorIs(t, err, chain.ErrInvalidValue)
	assert.ErrorIs(t, err, matrix.ErrRowSum)
}

func TestChain_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := mustChain(t, [][]float64{{0.5, 0.5}, {0.3, 0.7}}, chain.WithLogger(logger), chain.WithLogger(nil))
	_, err := c.StationaryDistribution()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"chain created"`)
	assert.Contains(t, out, `"msg":"stationary distribution computed"`)
	assert.Contains(t, out, `"states":2`)
}
