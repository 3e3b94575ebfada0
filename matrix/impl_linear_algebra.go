// SPDX-License-Identifier: MIT
// Package matrix - spectral and linear-system kernels.
//
// Purpose:
//   - Eigen: general right eigen-decomposition of a square (not necessarily
//     symmetric) matrix. Eigenvalues and eigenvectors may be complex.
//   - Solve: dense linear system A·x = b via LU with partial pivoting.
//
// Notes:
//   - Both kernels bridge to gonum.org/v1/gonum/mat (LAPACK-grade Hessenberg
//     QR for eigenvalues, pivoted LU for solves). The bridge copies into a
//     gonum Dense so callers keep ownership of their inputs.
//   - Singular or numerically singular systems surface as ErrSingular; the
//     kernels never return a best-effort solution.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EigenSystem holds a right eigen-decomposition A·v_k = λ_k·v_k.
// Vectors[k] is the eigenvector paired with Values[k]; order is the order
// reported by the underlying LAPACK routine (not sorted).
type EigenSystem struct {
	Values  []complex128
	Vectors [][]complex128
}

// Len returns the number of eigenpairs.
func (e *EigenSystem) Len() int { return len(e.Values) }

// RealVector returns the real part of eigenvector k, or ErrOutOfRange.
func (e *EigenSystem) RealVector(k int) ([]float64, error) {
	if k < 0 || k >= len(e.Vectors) {
		return nil, fmt.Errorf("EigenSystem.RealVector(%d): %w", k, ErrOutOfRange)
	}
	out := make([]float64, len(e.Vectors[k]))
	for i, z := range e.Vectors[k] {
		out[i] = real(z)
	}

	return out, nil
}

// toGonum copies any Matrix into a freshly allocated *mat.Dense.
// Caller guarantees r,c > 0 (gonum panics on zero-sized dense).
func toGonum(m Matrix) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				buf[i*c+j], _ = m.At(i, j)
			}
		}
	}

	return mat.NewDense(r, c, buf)
}

// Eigen computes all eigenvalues and right eigenvectors of the square matrix m.
//
// Implementation:
//   - Stage 1: validate non-nil, square, finite.
//   - Stage 2: factorize a gonum copy with mat.EigenRight.
//   - Stage 3: unpack the complex eigenvector columns into per-pair slices.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf from validation.
//   - ErrMatrixEigenFailed when the QR iteration does not converge.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Eigen(m Matrix) (*EigenSystem, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(toGonum(m), mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	values := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	n := len(values)
	out := &EigenSystem{
		Values:  values,
		Vectors: make([][]complex128, n),
	}
	var i, k int
	for k = 0; k < n; k++ {
		col := make([]complex128, n)
		for i = 0; i < n; i++ {
			col[i] = vecs.At(i, k)
		}
		out.Vectors[k] = col
	}

	return out, nil
}

// Solve returns x with a·x = b.
//
// Implementation:
//   - Stage 1: validate square a and len(b) == Rows(a); a 0×0 system has the
//     empty solution.
//   - Stage 2: pivoted LU solve through gonum.
//   - Stage 3: map gonum's singular/ill-conditioned reports onto ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch from validation.
//   - ErrSingular when the system has no unique, numerically reliable solution.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if a.Rows() == 0 {
		if len(b) != 0 {
			return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
		}

		return []float64{}, nil
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.Rows()
	rhs := make([]float64, n)
	copy(rhs, b)

	var x mat.VecDense
	if err := x.SolveVec(toGonum(a), mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		if errors.Is(err, mat.ErrSingular) || errors.As(err, &cond) {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}

		return nil, matrixErrorf(opSolve, err)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
	}

	return out, nil
}
