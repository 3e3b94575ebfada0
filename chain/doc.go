// Package chain analyzes a discrete-time, finite-state Markov chain given by
// a row-stochastic transition matrix.
//
// What:
//
//   - Chain: an immutable model owning its transition matrix. Construction
//     validates squareness, entries in [0,1] and unit row sums (ErrInvalidValue).
//   - Structure: IsIrreducible (one strongly connected component over the
//     edges with positive probability), IsAperiodic (bounded return-time gcd
//     scan), Components.
//   - Spectrum: Eigen / Eigenvalues of Tᵀ and StationaryDistribution, the
//     unique left eigenvector for eigenvalue 1 normalized to sum 1. These
//     require an irreducible chain (ErrUnsupportedOperation otherwise).
//   - Time reversal: BackwardTransitionMatrix (B[i,j] = T[j,i]·π[j]/π[i]),
//     IsReversible and the pairwise DetailedBalanceHolds cross-check.
//   - Committors: ForwardCommittors(A, B) and BackwardCommittors(A, B), the
//     hitting probabilities between two disjoint state sets.
//
// Caching & concurrency:
//
//   - Every derived quantity is computed at most once per Chain behind a
//     sync.Once barrier and then served from cache, so a *Chain may be shared
//     between goroutines. Accessors hand out copies; the model never changes
//     after New returns. Committors are request-scoped and never cached.
//
// Tolerance:
//
//   - One tolerance (matrix.DefaultTolerance unless WithTolerance is given) is
//     used for the row-sum check, the eigenvalue ≈ 1 selection and every
//     element-wise closeness comparison.
//
// Errors:
//
//   - ErrInvalidValue          construction rejected the matrix
//   - ErrUnsupportedOperation  spectral accessor on a reducible chain
//   - ErrDegenerateSpectrum    eigenvalue 1 is not simple (internal invariant)
//   - ErrOverlappingSets       committor sets A and B intersect
//   - ErrStateOutOfRange       committor set references a missing state
//   - ErrSingularSystem        committor interior system has no unique solution
package chain
