// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go — row buffers and normalization shared by constructors.
//
// Constructors fill a plain [][]float64 and hand it to fromRows once, so the
// matrix package validates shape and finiteness in a single place.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

// newRows allocates an n×n zero buffer.
func newRows(n int) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}

	return w
}

// fromRows copies w into a *matrix.Dense, mapping ingestion failures to
// ErrConstructFailed with method context.
func fromRows(method string, w [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFrom(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return m, nil
}

// normalizeRows scales every row of w to sum 1 in place.
// Rows of w must have a positive sum.
func normalizeRows(w [][]float64) {
	for _, row := range w {
		var sum float64
		for _, v := range row {
			sum += v
		}
		for j := range row {
			row[j] /= sum
		}
	}
}
