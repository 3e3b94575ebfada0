// Package dfs implements iterative depth‑first post‑order traversal.
//
// Key features:
//   - DepthFirstOrder(adj, root, visited): single tree from root over an
//     Adjacency, sharing the visited marks with the caller.
//   - Forest(adj): post‑order of a full sweep, restarting from every
//     unvisited vertex in ascending index.
//
// Complexity:
//
//   - Time:   O(V²) for a dense Adjacency (each vertex scans all candidates once).
//   - Memory: O(V) for the explicit stack.
package dfs

import "fmt"

// frame is one level of the explicit traversal stack: vertex u and the next
// candidate neighbor index to test.
type frame struct {
	u    int
	next int
}

// DepthFirstOrder marks root and every unvisited vertex reachable from it,
// returning them in post‑order (a vertex appears after all its descendants).
// Vertices already marked in visited are neither entered nor emitted; if root
// itself is already marked the result is empty. visited is updated in place.
func DepthFirstOrder(adj Adjacency, root int, visited []bool) ([]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.Order()
	if len(visited) != n {
		return nil, fmt.Errorf("dfs: len(visited)=%d, order=%d: %w", len(visited), n, ErrVisitedLength)
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("dfs: root %d: %w", root, ErrVertexOutOfRange)
	}
	if visited[root] {
		return nil, nil
	}

	return walk(adj, root, visited, nil), nil
}

// walk appends the post‑order of the tree rooted at root to order.
// Caller guarantees a valid, unvisited root.
func walk(adj Adjacency, root int, visited []bool, order []int) []int {
	n := adj.Order()
	visited[root] = true
	stack := []frame{{u: root}}

	var top *frame
	var v int
	for len(stack) > 0 {
		top = &stack[len(stack)-1]

		// Find the next unvisited successor of top.u in ascending index.
		for v = top.next; v < n; v++ {
			if !visited[v] && adj.HasEdge(top.u, v) {
				break
			}
		}

		if v < n {
			top.next = v + 1
			visited[v] = true
			stack = append(stack, frame{u: v})
			continue
		}

		// All successors explored: emit in post‑order.
		order = append(order, top.u)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Forest returns the concatenated post‑orders of DepthFirstOrder started from
// every vertex 0..n-1 that is still unvisited (the finishing order).
func Forest(adj Adjacency) ([]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.Order()
	visited := make([]bool, n)
	order := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if !visited[u] {
			order = walk(adj, u, visited, order)
		}
	}

	return order, nil
}
