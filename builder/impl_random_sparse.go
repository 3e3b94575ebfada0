// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Each off-diagonal entry (i,j) is kept independently with probability p
//     and weighted U[0,1) + floor; the diagonal always carries a weight so
//     every row is normalizable. Rows are then normalized.
//   • Small p yields reducible chains, which makes this the fixture for
//     component and precondition tests.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: for each i asc, j asc.

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor for a random chain with sparse support.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return nil, err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return nil, err
		}
		if err := requireRand(methodRandomSparse, cfg); err != nil {
			return nil, err
		}
		w := newRows(n)
		for i := range w {
			for j := range w[i] {
				if i == j {
					w[i][j] = cfg.rng.Float64() + cfg.floor + minRowMass
					continue
				}
				if cfg.rng.Float64() < p {
					w[i][j] = cfg.rng.Float64() + cfg.floor + minRowMass
				}
			}
		}
		normalizeRows(w)

		return fromRows(methodRandomSparse, w)
	}
}
