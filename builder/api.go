// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry point and transforms.
//
// AI-Hints:
//   • BuildMatrix resolves options once and runs a single Constructor.
//   • Wrap constructors with Lazy to obtain aperiodic variants of periodic
//     fixtures (Cycle, RandomWalk) without changing their stationary law.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

// Constructor produces a row-stochastic n×n matrix from a resolved config.
type Constructor func(cfg builderConfig) (*matrix.Dense, error)

// BuildMatrix resolves opts and runs c.
func BuildMatrix(c Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	if c == nil {
		return nil, fmt.Errorf("BuildMatrix: nil constructor: %w", ErrConstructFailed)
	}
	m, err := c(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	return m, nil
}

const methodLazy = "Lazy"

// Lazy wraps c so the result is alpha·I + (1−alpha)·T. Any alpha in (0,1)
// adds a self-loop to every state, which makes an irreducible chain aperiodic
// while keeping its stationary distribution.
func Lazy(c Constructor, alpha float64) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateProbability(methodLazy, alpha); err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%s: nil constructor: %w", methodLazy, ErrConstructFailed)
		}
		t, err := c(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodLazy, err)
		}

		w := t.ToRows()
		for i, row := range w {
			for j := range row {
				row[j] *= 1 - alpha
			}
			row[i] += alpha
		}

		return fromRows(methodLazy, w)
	}
}
