package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultFloor, cfg.floor)

	r := rand.New(rand.NewSource(1))
	cfg = newBuilderConfig(WithRand(r), nil, WithFloor(0.5))
	assert.Same(t, r, cfg.rng)
	assert.Equal(t, 0.5, cfg.floor)

	// Later options win.
	cfg = newBuilderConfig(WithFloor(0.2), WithFloor(0.3))
	assert.Equal(t, 0.3, cfg.floor)
}

func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}
