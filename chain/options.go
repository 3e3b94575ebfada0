package chain

import (
	"log/slog"

	"github.com/katalvlaran/markov/matrix"
)

const panicToleranceInvalid = "chain: WithTolerance: abs and rel must be finite, non-negative"

// Option configures a Chain at construction.
type Option func(*options)

type options struct {
	tol    matrix.Tolerance
	logger *slog.Logger
}

// WithTolerance overrides the tolerance used by every approximate comparison
// of the model: a value a matches the reference b iff |a − b| ≤ abs + rel·|b|.
// Panics when either part is negative, NaN or ±Inf.
func WithTolerance(abs, rel float64) Option {
	tol := matrix.Tolerance{Abs: abs, Rel: rel}
	if !tol.Valid() {
		panic(panicToleranceInvalid)
	}

	return func(o *options) {
		o.tol = tol
	}
}

// WithLogger sets a structured logger. Derived quantities are logged once,
// at Debug level, when first computed. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
