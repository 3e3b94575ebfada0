// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_walk.go — implementation of RandomWalk(n, p) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewStates); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Interior state i: i→i+1 with p, i→i-1 with 1−p.
//   • Reflecting ends: 0→1 and n-1→n-2 with probability 1.
//   • Bipartite support, so the chain has period 2; wrap in Lazy for an
//     aperiodic variant. With p = 1/2 the committor from {0} to {n-1} is
//     i/(n-1) (gambler's ruin).

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodRandomWalk   = "RandomWalk"
	minRandomWalkNodes = 2
)

// RandomWalk returns a Constructor for a birth–death chain on a path.
func RandomWalk(n int, p float64) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodRandomWalk, n, minRandomWalkNodes); err != nil {
			return nil, err
		}
		if err := validateProbability(methodRandomWalk, p); err != nil {
			return nil, err
		}
		w := newRows(n)
		w[0][1] = 1
		w[n-1][n-2] = 1
		for i := 1; i < n-1; i++ {
			w[i][i+1] = p
			w[i][i-1] = 1 - p
		}

		return fromRows(methodRandomWalk, w)
	}
}
