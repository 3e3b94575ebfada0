// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates).
//   • T[i, (i+1)%n] = 1, every other entry 0.
//   • For n > 1 the chain is irreducible with period n; n == 1 is the
//     trivial absorbing state (aperiodic).
//
// Complexity:
//   • Time: O(n²) zeroing + O(n) writes.

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor for the deterministic rotation 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return nil, err
		}
		w := newRows(n)
		for i := 0; i < n; i++ {
			w[i][(i+1)%n] = 1
		}

		return fromRows(methodCycle, w)
	}
}
