// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go — implementation of Random(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates); cfg.rng required (else ErrNeedRandSource).
//   • Entry (i,j) is U[0,1) + floor, then each row is normalized.
//   • With the default positive floor every entry is > 0, so the chain is
//     irreducible and aperiodic.
//
// Determinism:
//   • Draws in row-major order from cfg.rng.

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor for a dense random stochastic matrix.
func Random(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodRandom, n, minRandomNodes); err != nil {
			return nil, err
		}
		if err := requireRand(methodRandom, cfg); err != nil {
			return nil, err
		}
		w := newRows(n)
		for i := range w {
			for j := range w[i] {
				w[i][j] = cfg.rng.Float64() + cfg.floor
			}
			// A zero floor could in principle draw an all-zero row.
			if cfg.floor == 0 {
				w[i][i] += minRowMass
			}
		}
		normalizeRows(w)

		return fromRows(methodRandom, w)
	}
}

// minRowMass keeps rows normalizable when the floor is zero.
const minRowMass = 1e-12
