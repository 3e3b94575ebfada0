// Package dfs implements depth‑first post‑order traversal and strongly
// connected component decomposition over dense directed graphs given as an
// adjacency relation on vertices 0..n-1.
//
// What:
//
//   - DepthFirstOrder: explores every unvisited vertex reachable from a root,
//     emitting each vertex AFTER all of its descendants (post‑order). Vertices
//     already marked in the shared visited slice are skipped, so repeated
//     calls sweep a whole graph forest incrementally.
//   - StronglyConnectedComponents: Kosaraju's two-pass algorithm. Pass one
//     concatenates the post‑orders of a full forest sweep; pass two walks the
//     TRANSPOSED graph from vertices taken in reverse finishing order, and each
//     walk yields one component.
//   - Adjacency views: BoolMatrix (explicit edges), Positive (edge iff a
//     matrix entry is > 0) and Transposed (edge reversal without copying).
//
// Why:
//   - Reachability classes decide irreducibility of a Markov chain (a single
//     component spanning all states).
//   - Traversal is iterative (explicit stack), so very large state spaces do
//     not exhaust the goroutine stack.
//
// Determinism:
//
//   - Neighbors are scanned in ascending vertex index, so orders and
//     component membership lists are reproducible.
//
// Complexity:
//
//   - DepthFirstOrder:             Time O(V²) on a dense view, Memory O(V)
//   - StronglyConnectedComponents: Time O(V²), Memory O(V)
//
// Errors:
//
//   - ErrNilAdjacency       adjacency is nil
//   - ErrVertexOutOfRange   root outside [0, Order())
//   - ErrVisitedLength      visited slice length differs from Order()
package dfs
