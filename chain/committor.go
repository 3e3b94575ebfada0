package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

const (
	opForward  = "chain.ForwardCommittors"
	opBackComm = "chain.BackwardCommittors"
)

// ForwardCommittors returns q⁺ where q⁺[i] is the probability that the chain
// started in i hits B before A: 0 on A, 1 on B, and the solution of the
// interior harmonic system elsewhere. A and B must be disjoint sets of valid
// states (duplicates are ignored). Not cached.
func (c *Chain) ForwardCommittors(a, b []int) ([]float64, error) {
	q, err := commit(a, b, c.t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}

	return q, nil
}

// BackwardCommittors returns q⁻ where q⁻[i] is the probability that the chain
// arriving in i last came from A rather than B. It runs the forward routine on
// the time-reversed chain with the roles of A and B swapped, so the result is
// 1 on A and 0 on B. Requires an irreducible chain.
func (c *Chain) BackwardCommittors(a, b []int) ([]float64, error) {
	bw, err := c.backwardMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBackComm, err)
	}
	q, err := commit(b, a, bw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBackComm, err)
	}

	return q, nil
}

// commit solves the committor system for propagator t with boundary 0 on a
// and 1 on b. With C the interior states and M = t − I:
//
//	M[C,C]·x = −Σ_{j∈b} M[C,j]
func commit(a, b []int, t *matrix.Dense) ([]float64, error) {
	n := t.Rows()
	inA, err := membership(a, n)
	if err != nil {
		return nil, err
	}
	inB, err := membership(b, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if inA[i] && inB[i] {
			return nil, fmt.Errorf("state %d: %w", i, ErrOverlappingSets)
		}
	}

	interior := make([]int, 0, n)
	boundary := make([]int, 0, len(b))
	for i := 0; i < n; i++ {
		switch {
		case inB[i]:
			boundary = append(boundary, i)
		case !inA[i]:
			interior = append(interior, i)
		}
	}

	result := make([]float64, n)
	for _, i := range boundary {
		result[i] = 1
	}
	if len(interior) == 0 {
		return result, nil
	}

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Sub(t, id)
	if err != nil {
		return nil, err
	}
	mcc, err := m.Induced(interior, interior)
	if err != nil {
		return nil, err
	}
	mcb, err := m.Induced(interior, boundary)
	if err != nil {
		return nil, err
	}

	rhs := matrix.RowSums(mcb)
	for k := range rhs {
		rhs[k] = -rhs[k]
	}

	x, err := matrix.Solve(mcc, rhs)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
		}

		return nil, err
	}
	for k, i := range interior {
		result[i] = x[k]
	}

	return result, nil
}

// membership turns a state list into an indicator slice, rejecting states
// outside [0, n).
func membership(states []int, n int) ([]bool, error) {
	in := make([]bool, n)
	for _, s := range states {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("state %d not in [0,%d): %w", s, n, ErrStateOutOfRange)
		}
		in[s] = true
	}

	return in, nil
}
