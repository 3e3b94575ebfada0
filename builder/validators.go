// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go — parameter checks shared by constructors.

package builder

import "fmt"

const (
	probMin = 0.0
	probMax = 1.0
)

// validateMin ensures got ≥ min, wrapping ErrTooFewStates with context.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewStates)
	}

	return nil
}

// validateProbability ensures p ∈ [0,1] (NaN fails).
func validateProbability(method string, p float64) error {
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// requireRand ensures a stochastic constructor received an RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
