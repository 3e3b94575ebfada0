// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_symmetric.go — implementation of RandomSymmetric(n, k).
//
// Model:
//   • T = (1/k) Σ_{r=1..k} (P_r + P_rᵀ)/2 for k random permutation matrices.
//     Each term is symmetric and doubly stochastic, hence so is T: its
//     uniform distribution is stationary and the chain is reversible.
//
// Contract:
//   • n ≥ 1, k ≥ 1 (else ErrTooFewStates); cfg.rng required.

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodRandomSymmetric = "RandomSymmetric"
	minSymmetricNodes     = 1
	minPermutations       = 1
)

// RandomSymmetric returns a Constructor for a random symmetric doubly
// stochastic matrix built from k permutations.
func RandomSymmetric(n, k int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodRandomSymmetric, n, minSymmetricNodes); err != nil {
			return nil, err
		}
		if err := validateMin(methodRandomSymmetric, k, minPermutations); err != nil {
			return nil, err
		}
		if err := requireRand(methodRandomSymmetric, cfg); err != nil {
			return nil, err
		}
		w := newRows(n)
		share := 1 / (2 * float64(k))
		for r := 0; r < k; r++ {
			perm := cfg.rng.Perm(n)
			for i, j := range perm {
				w[i][j] += share
				w[j][i] += share
			}
		}

		return fromRows(methodRandomSymmetric, w)
	}
}
