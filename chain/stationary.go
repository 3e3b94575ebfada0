package chain

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/markov/matrix"
)

const (
	opEigen      = "chain.Eigen"
	opStationary = "chain.StationaryDistribution"
)

// Eigen returns the eigen-decomposition of Tᵀ: its right eigenvectors are
// the left eigenvectors of T. Requires an irreducible chain. The result is
// computed once and copied on every call.
func (c *Chain) Eigen() (*matrix.EigenSystem, error) {
	es, err := c.eigen()
	if err != nil {
		return nil, err
	}

	out := &matrix.EigenSystem{
		Values:  append([]complex128(nil), es.Values...),
		Vectors: make([][]complex128, len(es.Vectors)),
	}
	for k, v := range es.Vectors {
		out.Vectors[k] = append([]complex128(nil), v...)
	}

	return out, nil
}

// Eigenvalues returns the (possibly complex) eigenvalues of T.
// Requires an irreducible chain.
func (c *Chain) Eigenvalues() ([]complex128, error) {
	es, err := c.eigen()
	if err != nil {
		return nil, err
	}

	return append([]complex128(nil), es.Values...), nil
}

func (c *Chain) eigen() (*matrix.EigenSystem, error) {
	return c.spectrum.get(func() (*matrix.EigenSystem, error) {
		if !c.IsIrreducible() {
			return nil, fmt.Errorf("%s: %w", opEigen, ErrUnsupportedOperation)
		}
		tt, err := matrix.Transpose(c.t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opEigen, err)
		}
		es, err := matrix.Eigen(tt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opEigen, err)
		}
		c.log.Debug("spectrum computed", "eigenvalues", len(es.Values))

		return es, nil
	})
}

// StationaryDistribution returns π with π·T = π and Σπ = 1.
//
// π is the eigenvector of Tᵀ whose eigenvalue lies within the tolerance of 1
// (|λ − 1| ≤ Abs + Rel).
// Exactly one such eigenvalue must exist; anything else reports
// ErrDegenerateSpectrum. Requires an irreducible chain
// (ErrUnsupportedOperation otherwise).
func (c *Chain) StationaryDistribution() ([]float64, error) {
	pi, err := c.stationary.get(c.findStationary)
	if err != nil {
		return nil, err
	}

	return cloneVec(pi), nil
}

func (c *Chain) findStationary() ([]float64, error) {
	es, err := c.eigen()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opStationary, err)
	}

	pick := -1
	hits := 0
	for k, l := range es.Values {
		if cmplx.Abs(l-1) <= c.tol.Bound(1) {
			pick = k
			hits++
		}
	}
	if hits != 1 {
		return nil, fmt.Errorf("%s: %d eigenvalues near 1: %w", opStationary, hits, ErrDegenerateSpectrum)
	}

	v, err := es.RealVector(pick)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opStationary, err)
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%s: eigenvector sums to %g: %w", opStationary, sum, ErrDegenerateSpectrum)
	}
	for i := range v {
		v[i] /= sum
	}
	c.log.Debug("stationary distribution computed")

	return v, nil
}
