// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// defaultFloor is added to each uniform draw in Random so no entry is zero,
// which keeps the generated chain irreducible and aperiodic.
const defaultFloor = 0.001

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng   *rand.Rand // nil means "no randomness"
	floor float64    // >= 0; added to random draws before normalization
}

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{floor: defaultFloor}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFloor sets the value added to every uniform draw in Random before the
// row is normalized. Zero allows exact zeros (and hence reducible chains).
// Panics on negative, NaN or ±Inf values.
func WithFloor(floor float64) BuilderOption {
	if floor < 0 || math.IsNaN(floor) || math.IsInf(floor, 0) {
		panic("builder: WithFloor: floor must be finite, non-negative")
	}

	return func(c *builderConfig) {
		c.floor = floor
	}
}
