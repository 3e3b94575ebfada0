package chain

import (
	"github.com/katalvlaran/markov/dfs"
	"github.com/katalvlaran/markov/matrix"
)

// Components returns the strongly connected components of the transition
// graph (edge a→b iff T[a,b] > 0). The partition is computed once; each call
// returns a fresh copy.
func (c *Chain) Components() [][]int {
	comps, _ := c.components.get(func() ([][]int, error) {
		comps, err := dfs.StronglyConnectedComponents(dfs.Positive{M: c.t})
		if err != nil {
			return nil, err
		}
		c.log.Debug("components computed", "count", len(comps))

		return comps, nil
	})

	out := make([][]int, len(comps))
	for i, members := range comps {
		out[i] = append([]int(nil), members...)
	}

	return out
}

// IsIrreducible reports whether every state is reachable from every other,
// i.e. the transition graph is a single strongly connected component.
func (c *Chain) IsIrreducible() bool {
	ok, _ := c.irreducible.get(func() (bool, error) {
		ok := len(c.Components()) == 1
		c.log.Debug("irreducibility computed", "result", ok)

		return ok, nil
	})

	return ok
}

// IsAperiodic reports whether the chain is aperiodic.
//
// For each state s the support of the distribution started at s is
// propagated for up to 2n-1 steps, binarized after every step (any positive
// mass becomes exactly 1). Each step i at which the support covers s again is
// folded into the running gcd of return times. Once that gcd reaches 1 an
// irreducible chain is aperiodic immediately; a reducible chain moves on to
// the next state. A state whose gcd ends anywhere other than 1 (including a
// state that never returns) makes the chain periodic.
func (c *Chain) IsAperiodic() bool {
	ok, _ := c.aperiodic.get(func() (bool, error) {
		ok := c.determineAperiodicity()
		c.log.Debug("aperiodicity computed", "result", ok)

		return ok, nil
	})

	return ok
}

func (c *Chain) determineAperiodicity() bool {
	n := c.n
	irreducible := c.IsIrreducible()
	pos := make([]float64, n)

	var err error
	for s := 0; s < n; s++ {
		for k := range pos {
			pos[k] = 0
		}
		pos[s] = 1

		period := -1
		for i := 1; i < 2*n; i++ {
			pos, err = matrix.VecMul(pos, c.t)
			if err != nil {
				return false
			}
			binarize(pos)

			if pos[s] == 1 {
				if period == -1 {
					period = i
				} else {
					period = gcd(i, period)
				}
			}
			if period == 1 {
				if irreducible {
					return true
				}
				break
			}
		}
		if period != 1 {
			return false
		}
	}

	return true
}

// binarize maps every positive entry to 1 and everything else to 0.
func binarize(v []float64) {
	for i, x := range v {
		if x > 0 {
			v[i] = 1
		} else {
			v[i] = 0
		}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}
