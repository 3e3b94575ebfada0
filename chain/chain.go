package chain

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/markov/matrix"
)

const (
	opNew        = "chain.New"
	opNewFromRow = "chain.NewFromRows"
)

// lazy is a compute-once cache cell. Concurrent first callers block on the
// same sync.Once and all observe the single stored result.
type lazy[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.val, l.err = compute()
	})

	return l.val, l.err
}

// Chain is a validated Markov chain model. It owns a private copy of the
// transition matrix and caches every derived quantity on first use.
type Chain struct {
	t   *matrix.Dense
	n   int
	tol matrix.Tolerance
	log *slog.Logger

	components  lazy[[][]int]
	irreducible lazy[bool]
	aperiodic   lazy[bool]
	spectrum    lazy[*matrix.EigenSystem]
	stationary  lazy[[]float64]
	backward    lazy[*matrix.Dense]
}

// New validates m and returns a model owning a copy of it.
//
// Checks, in order: (a) m is square; (b) every entry lies in [0,1];
// (c) every row sums to 1 within the tolerance. Any violation returns an
// error matching both ErrInvalidValue and the matrix sentinel of the check.
func New(m matrix.Matrix, opts ...Option) (*Chain, error) {
	o := options{
		tol:    matrix.DefaultTolerance,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(&o)
	}

	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidValue, err)
	}
	if m.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidValue, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateUnitInterval(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidValue, err)
	}
	if err := matrix.ValidateRowSums(m, 1, o.tol); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidValue, err)
	}

	t, err := ownedCopy(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidValue, err)
	}

	c := &Chain{
		t:   t,
		n:   t.Rows(),
		tol: o.tol,
		log: o.logger.With("states", t.Rows()),
	}
	c.log.Debug("chain created")

	return c, nil
}

// NewFromRows builds the transition matrix from a slice-of-rows literal and
// validates it like New. Empty or ragged input fails with ErrInvalidValue.
func NewFromRows(rows [][]float64, opts ...Option) (*Chain, error) {
	m, err := matrix.NewDenseFrom(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewFromRow, ErrInvalidValue, err)
	}

	return New(m, opts...)
}

// ownedCopy detaches the model from the caller's matrix.
func ownedCopy(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// NumStates returns n, the number of states.
func (c *Chain) NumStates() int { return c.n }

// Tolerance returns the tolerance used by the model's comparisons.
func (c *Chain) Tolerance() matrix.Tolerance { return c.tol }

// TransitionMatrix returns a copy of T, where T[a,b] is the probability of a→b.
func (c *Chain) TransitionMatrix() *matrix.Dense {
	return c.t.Clone().(*matrix.Dense)
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
