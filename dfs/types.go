// Package dfs defines the adjacency abstraction and sentinel errors shared by
// the traversal and component routines.
package dfs

import (
	"errors"

	"github.com/katalvlaran/markov/matrix"
)

var (
	// ErrNilAdjacency is returned when a nil Adjacency is passed in.
	ErrNilAdjacency = errors.New("dfs: adjacency is nil")

	// ErrVertexOutOfRange indicates a root vertex outside [0, Order()).
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")

	// ErrVisitedLength indicates a visited slice whose length differs from Order().
	ErrVisitedLength = errors.New("dfs: visited length mismatch")
)

// Adjacency is a directed graph on vertices 0..Order()-1.
// HasEdge must be O(1) and side-effect free.
type Adjacency interface {
	Order() int
	HasEdge(u, v int) bool
}

// BoolMatrix is an explicit adjacency matrix: edge u→v iff m[u][v].
// Rows are assumed to have length len(m).
type BoolMatrix [][]bool

// Order returns the number of vertices.
func (b BoolMatrix) Order() int { return len(b) }

// HasEdge reports whether u→v is an edge.
func (b BoolMatrix) HasEdge(u, v int) bool { return b[u][v] }

// Positive views a square matrix as a directed graph with an edge u→v iff
// m[u,v] > 0. The matrix is read on demand; nothing is copied.
type Positive struct {
	M matrix.Matrix
}

// Order returns the number of vertices (rows of M).
func (p Positive) Order() int { return p.M.Rows() }

// HasEdge reports whether M[u,v] > 0.
func (p Positive) HasEdge(u, v int) bool {
	x, err := p.M.At(u, v)

	return err == nil && x > 0
}

// Transposed reverses every edge of G.
type Transposed struct {
	G Adjacency
}

// Order returns the number of vertices of G.
func (t Transposed) Order() int { return t.G.Order() }

// HasEdge reports whether v→u is an edge of G.
func (t Transposed) HasEdge(u, v int) bool { return t.G.HasEdge(v, u) }
