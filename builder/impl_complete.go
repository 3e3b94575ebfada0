// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates).
//   • Every entry equals 1/n: symmetric, doubly stochastic, uniform π.

package builder

import "github.com/katalvlaran/markov/matrix"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the uniform n-state chain.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return nil, err
		}
		w := newRows(n)
		p := 1 / float64(n)
		for _, row := range w {
			for j := range row {
				row[j] = p
			}
		}

		return fromRows(methodComplete, w)
	}
}
