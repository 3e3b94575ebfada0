package dfs

// StronglyConnectedComponents partitions the vertices of adj into strongly
// connected components using Kosaraju's algorithm:
//
//  1. Forest sweep over adj, recording the finishing (post‑)order.
//  2. Reset visit marks.
//  3. For each vertex in REVERSE finishing order that is still unvisited,
//     traverse the transposed graph; the vertices reached form one component.
//
// Every vertex lands in exactly one component. Components are listed in
// discovery order; members within a component are in post‑order of the
// transposed walk. A nil adjacency returns ErrNilAdjacency; a graph with zero
// vertices returns no components.
func StronglyConnectedComponents(adj Adjacency) ([][]int, error) {
	finish, err := Forest(adj)
	if err != nil {
		return nil, err
	}

	n := adj.Order()
	rev := Transposed{G: adj}
	visited := make([]bool, n)
	var components [][]int
	for k := len(finish) - 1; k >= 0; k-- {
		u := finish[k]
		if visited[u] {
			continue
		}
		components = append(components, walk(rev, u, visited, nil))
	}

	return components, nil
}

// ComponentIndex maps each vertex to the index of its component in comps.
// Vertices missing from comps map to -1.
func ComponentIndex(n int, comps [][]int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = -1
	}
	for c, members := range comps {
		for _, v := range members {
			if v >= 0 && v < n {
				idx[v] = c
			}
		}
	}

	return idx
}
