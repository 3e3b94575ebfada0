// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric layer used by the Markov chain
// analysis packages.
//
// What:
//
//   - Dense: a row-major float64 matrix with safe At/Set accessors and
//     copy-based submatrix extraction (Induced).
//   - Validators: square shape, finite entries, unit-interval entries and
//     row sums within a tolerance (the building blocks of a stochasticity check).
//   - Kernels: Transpose, Sub, VecMul (row vector times matrix), MatVec,
//     RowSums, AllClose.
//   - Spectral and linear-system kernels backed by gonum: Eigen computes the
//     general (possibly complex) right eigen-decomposition of a square matrix,
//     Solve solves A·x = b with partial pivoting and reports singular systems.
//
// Numeric policy:
//
//   - DefaultTolerance is the one tolerance shared by every approximate
//     comparison in this module (row sums, eigenvalue selection,
//     element-wise closeness). It is mixed: |a − b| ≤ Abs + Rel·|b|, with
//     Abs = 1e-8 and Rel = 1e-5. Override it through WithTolerance.
//   - Dense rejects NaN/±Inf on Set unless built with WithNoValidateNaNInf.
//
// Errors:
//
//   - All failures are package sentinels (errors.go) wrapped with the
//     operation name; match them with errors.Is.
//
// Complexity:
//
//   - At/Set O(1); Transpose, Sub, AllClose O(r·c); VecMul/MatVec O(r·c);
//     Eigen O(n³); Solve O(n³).
package matrix
