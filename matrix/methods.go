// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// identity construction, subtraction, transpose, vector products, row sums
// and tolerance-based comparison. All functions perform fail-fast validation
// and return wrapped sentinels on dimension mismatches.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opIdentity  = "NewIdentity"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opVecMul    = "VecMul"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
	opEigen     = "Eigen"
	opSolve     = "Solve"
)

// matrixErrorf wraps an underlying error with the given tag.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Sub returns a new Dense containing a − b element-wise.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): flat loop on *Dense operands, At-based fallback otherwise.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		for k := range res.data {
			res.data[k] = ad.data[k] - bd.data[k]
		}

		return res, nil
	}

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			res.data[i*res.c+j] = av - bv
		}
	}

	return res, nil
}

// Transpose returns a new Dense with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Time Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = DefaultValidateNaNInf

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// VecMul computes the row-vector product y = x·m (len(x) == Rows(m)).
// This is the propagation step of a distribution under a transition matrix.
// Time Complexity: O(r·c).
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}

	r, c := m.Rows(), m.Cols()
	y := make([]float64, c)
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			if x[i] == 0 {
				continue
			}
			base := i * c
			for j = 0; j < c; j++ {
				y[j] += x[i] * d.data[base+j]
			}
		}

		return y, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			y[j] += x[i] * v
		}
	}

	return y, nil
}

// MatVec computes the column-vector product y = m·x (len(x) == Cols(m)).
// Time Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)
	var i, j int
	var v, sum float64
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// RowSums returns Σ_j m[i,j] for every row i. Nil input yields nil.
func RowSums(m Matrix) []float64 {
	if m == nil {
		return nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			out[i] += v
		}
	}

	return out
}

// AllClose reports whether a[i,j] is close to the reference b[i,j] for every
// entry, i.e. |a − b| ≤ Abs + Rel·|b| with the Tolerance resolved from opts
// (DefaultTolerance unless WithTolerance is given).
// Shapes must match; a NaN entry never compares close.
// Time Complexity: O(r·c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	tol := gatherOptions(opts...).tol
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !tol.Close(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
