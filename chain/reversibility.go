package chain

import (
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

const opBackward = "chain.BackwardTransitionMatrix"

// BackwardTransitionMatrix returns the transition matrix of the time-reversed
// chain, B[i,j] = T[j,i]·π[j]/π[i]. Computed once from StationaryDistribution;
// each call returns a copy. Requires an irreducible chain.
func (c *Chain) BackwardTransitionMatrix() (*matrix.Dense, error) {
	b, err := c.backwardMatrix()
	if err != nil {
		return nil, err
	}

	return b.Clone().(*matrix.Dense), nil
}

func (c *Chain) backwardMatrix() (*matrix.Dense, error) {
	return c.backward.get(func() (*matrix.Dense, error) {
		pi, err := c.stationary.get(c.findStationary)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opBackward, err)
		}

		b, err := matrix.NewDense(c.n, c.n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opBackward, err)
		}
		var i, j int
		var tji float64
		for i = 0; i < c.n; i++ {
			for j = 0; j < c.n; j++ {
				tji, _ = c.t.At(j, i)
				if err = b.Set(i, j, tji*pi[j]/pi[i]); err != nil {
					return nil, fmt.Errorf("%s: %w", opBackward, err)
				}
			}
		}
		c.log.Debug("backward transition matrix computed")

		return b, nil
	})
}

// IsReversible reports whether the backward transition matrix equals T
// element-wise within the tolerance (detailed balance). Requires an
// irreducible chain.
func (c *Chain) IsReversible() (bool, error) {
	b, err := c.backwardMatrix()
	if err != nil {
		return false, err
	}

	return matrix.AllClose(b, c.t, matrix.WithTolerance(c.tol.Abs, c.tol.Rel))
}

// DetailedBalanceHolds checks π[i]·T[i,j] ≈ π[j]·T[j,i] for every pair
// directly. It agrees with IsReversible up to the scaling by π and serves as
// an independent check of the cached backward matrix.
func (c *Chain) DetailedBalanceHolds() (bool, error) {
	pi, err := c.stationary.get(c.findStationary)
	if err != nil {
		return false, err
	}

	var i, j int
	var tij, tji float64
	for i = 0; i < c.n; i++ {
		for j = i + 1; j < c.n; j++ {
			tij, _ = c.t.At(i, j)
			tji, _ = c.t.At(j, i)
			if !c.tol.Close(pi[i]*tij, pi[j]*tji) {
				return false, nil
			}
		}
	}

	return true, nil
}
