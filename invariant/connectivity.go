package invariant

import "github.com/katalvlaran/radspec/simplegraph"

// IsConnected reports whether adj is connected via a BFS from vertex
// 0; trivially true for n <= 1.
func IsConnected(adj *simplegraph.Adjacency) bool {
	if adj.N <= 1 {
		return true
	}
	visited := bfsFrom(adj, 0)
	count := 0
	for _, v := range visited {
		if v {
			count++
		}
	}
	return count == adj.N
}

// Components returns the connected components of adj as slices of
// vertex indices, in the order their representative vertex was first
// discovered.
func Components(adj *simplegraph.Adjacency) [][]int {
	seen := make([]bool, adj.N)
	var comps [][]int
	for v := 0; v < adj.N; v++ {
		if seen[v] {
			continue
		}
		visited := bfsFrom(adj, v)
		comp := make([]int, 0)
		for u, ok := range visited {
			if ok {
				comp = append(comp, u)
				seen[u] = true
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// bfsFrom returns a per-vertex visited flag reachable from src.
func bfsFrom(adj *simplegraph.Adjacency, src int) []bool {
	visited := make([]bool, adj.N)
	if adj.N == 0 {
		return visited
	}
	visited[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range adj.Neighbors[v] {
			if !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}
	return visited
}
