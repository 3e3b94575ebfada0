// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Tolerance, the single mixed absolute/relative closeness rule,
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsEpsilon is the absolute part of DefaultTolerance.
	DefaultAbsEpsilon = 1e-8

	// DefaultRelEpsilon is the relative part of DefaultTolerance, scaled by
	// the magnitude of the reference value.
	DefaultRelEpsilon = 1e-5

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const panicToleranceInvalid = "matrix: WithTolerance: abs and rel must be finite, non-negative"

// Tolerance decides approximate equality: a is close to the reference b iff
// |a − b| ≤ Abs + Rel·|b|. The relative term keeps comparisons meaningful for
// values far from unit scale, such as ratios of tiny probabilities.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is used by every approximate comparison unless overridden:
// row sums, eigenvalue ≈ 1 selection, element-wise closeness and detailed balance.
var DefaultTolerance = Tolerance{Abs: DefaultAbsEpsilon, Rel: DefaultRelEpsilon}

// Bound returns the admissible deviation from the reference value b.
func (t Tolerance) Bound(b float64) float64 {
	return t.Abs + t.Rel*math.Abs(b)
}

// Close reports whether a is within the tolerance of the reference b.
// NaN never compares close.
func (t Tolerance) Close(a, b float64) bool {
	return math.Abs(a-b) <= t.Bound(b)
}

// Valid reports whether both parts are finite and non-negative.
func (t Tolerance) Valid() bool {
	return validPart(t.Abs) && validPart(t.Rel)
}

func validPart(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol            Tolerance // DefaultTolerance
	validateNaNInf bool      // DefaultValidateNaNInf
}

// WithTolerance sets the tolerance used by approximate comparisons.
// Panics when either part is negative, NaN or ±Inf.
//
// AI-Hints:
//   - WithTolerance(eps, 0) gives a purely absolute check.
//   - Keep Rel > 0 when compared values span many orders of magnitude.
func WithTolerance(abs, rel float64) Option {
	t := Tolerance{Abs: abs, Rel: rel}
	if !t.Valid() {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tol = t
	}
}

// WithNoValidateNaNInf disables the finite-value guard. Use only for
// controlled ingestion where non-finite values are checked elsewhere.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

func defaultOptions() Options {
	return Options{
		tol:            DefaultTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
