package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/matrix"
)

func TestNormalizeRows(t *testing.T) {
	t.Parallel()

	w := [][]float64{{1, 3}, {2, 2}}
	normalizeRows(w)
	assert.Equal(t, [][]float64{{0.25, 0.75}, {0.5, 0.5}}, w)
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := fromRows("test", [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, m.ToRows())

	_, err = fromRows("test", [][]float64{{math.NaN(), 1}, {1, 0}})
	assert.ErrorIs(t, err, ErrConstructFailed)
	assert.ErrorContains(t, err, "test")

	_, err = fromRows("test", [][]float64{{1}, {0.5, 0.5}})
	assert.ErrorIs(t, err, ErrConstructFailed)
}

func TestLazy_PropagatesIngestionFailure(t *testing.T) {
	t.Parallel()

	ragged := func(cfg builderConfig) (*matrix.Dense, error) {
		return fromRows("ragged", [][]float64{{1}, {1, 0}})
	}
	_, err := BuildMatrix(Lazy(ragged, 0.5))
	assert.ErrorIs(t, err, ErrConstructFailed)
}
