package invariant

import "github.com/katalvlaran/radspec/simplegraph"

// Triangles counts triangles in the graph described by adj: for every
// edge (u,v) with u<v, accumulate |N(u) ∩ N(v)|, then divide the
// total by 3 (each triangle counted once per participating edge).
func Triangles(adj *simplegraph.Adjacency) int {
	total := 0
	for u := 0; u < adj.N; u++ {
		for _, v := range adj.Neighbors[u] {
			if v <= u {
				continue
			}
			total += intersectionSize(adj, u, v)
		}
	}
	return total / 3
}

func intersectionSize(adj *simplegraph.Adjacency, u, v int) int {
	nu, nv := adj.Neighbors[u], adj.Neighbors[v]
	// Both neighbor lists are sorted ascending (see simplegraph.BuildAdjacency).
	i, j, count := 0, 0, 0
	for i < len(nu) && j < len(nv) {
		switch {
		case nu[i] == nv[j]:
			count++
			i++
			j++
		case nu[i] < nv[j]:
			i++
		default:
			j++
		}
	}
	return count
}

// Clustering returns the average local clustering coefficient: for
// each vertex v with degree >= 2, the local coefficient is
// 2*edges(N(v)) / (deg(v)*(deg(v)-1)); vertices with degree < 2 are
// excluded. Returns 0 if no vertex qualifies.
func Clustering(adj *simplegraph.Adjacency) float64 {
	var sum float64
	count := 0
	for v := 0; v < adj.N; v++ {
		deg := adj.Degree(v)
		if deg < 2 {
			continue
		}
		edgesAmongNeighbors := 0
		nbrs := adj.Neighbors[v]
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if adj.HasEdge(nbrs[i], nbrs[j]) {
					edgesAmongNeighbors++
				}
			}
		}
		coeff := 2 * float64(edgesAmongNeighbors) / float64(deg*(deg-1))
		sum += coeff
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
