package chain

import "errors"

var (
	// ErrInvalidValue is returned by New when the matrix is not square, has an
	// entry outside [0,1], or has a row that does not sum to 1. The wrapped
	// error names the failing check (matrix.ErrNonSquare, matrix.ErrEntryOutOfRange,
	// matrix.ErrRowSum, ...).
	ErrInvalidValue = errors.New("chain: invalid transition matrix")

	// ErrUnsupportedOperation is returned by eigen-based accessors on a
	// reducible chain. Check IsIrreducible first to avoid it.
	ErrUnsupportedOperation = errors.New("chain: operation unsupported on reducible chain")

	// ErrDegenerateSpectrum reports that eigenvalue 1 of Tᵀ was not found
	// exactly once within tolerance. For an irreducible stochastic matrix this
	// is an internal invariant violation (numerical breakdown), not a user error.
	ErrDegenerateSpectrum = errors.New("chain: eigenvalue 1 is not simple")

	// ErrOverlappingSets is returned when committor sets A and B share a state.
	ErrOverlappingSets = errors.New("chain: committor sets are not disjoint")

	// ErrStateOutOfRange is returned when a committor set names a state
	// outside [0, NumStates()).
	ErrStateOutOfRange = errors.New("chain: state out of range")

	// ErrSingularSystem is returned when the committor interior system is
	// singular. It also matches matrix.ErrSingular.
	ErrSingularSystem = errors.New("chain: singular committor system")
)
