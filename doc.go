// Package markov is the root of a small library for analyzing discrete-time,
// finite-state Markov chains given as row-stochastic transition matrices.
//
// The work is split across four subpackages, leaves first:
//
//	matrix/  — dense row-major matrix, validators, vector products, and the
//	           general eigen-decomposition and linear solver (gonum-backed)
//	dfs/     — iterative depth-first post-order and Kosaraju strongly
//	           connected components over any adjacency view
//	chain/   — the Chain model: irreducibility, aperiodicity, stationary
//	           distribution, time reversal and committors, each computed once
//	builder/ — seeded constructors of fixture chains (cycles, random walks,
//	           random dense/sparse/symmetric matrices)
//
// The markovctl command (cmd/markovctl) exposes the analysis on YAML or JSON
// transition-matrix files.
//
// Quick start:
//
//	c, err := chain.NewFromRows([][]float64{{0.5, 0.5}, {0.3, 0.7}})
//	if err != nil { ... }
//	pi, _ := c.StationaryDistribution() // ≈ [0.375 0.625]
//	q, _ := c.ForwardCommittors([]int{0}, []int{1})
package markov
