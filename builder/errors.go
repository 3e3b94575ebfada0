// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; validation panics are confined
//     to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewStates indicates that the requested state count is below the
// constructor's minimum.
var ErrTooFewStates = errors.New("builder: too few states")

// ErrInvalidProbability indicates a probability or mixing weight outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a matrix the constructor
// could not ingest (ragged or non-finite rows).
var ErrConstructFailed = errors.New("builder: construction failed")
