package invariant

import (
	"math/rand"

	"github.com/katalvlaran/radspec/simplegraph"
)

// DenseAPLThreshold is the vertex count below which AveragePathLength
// uses every vertex as a BFS source instead of sampling.
const DenseAPLThreshold = 160

// DefaultAPLSampleSize is the number of sampled sources used once n
// reaches DenseAPLThreshold (and sampleSources requests sampling).
const DefaultAPLSampleSize = 40

// AveragePathLength returns the sampled average path length (C7): nil
// if adj is disconnected. Sources are every vertex when n <
// DenseAPLThreshold or sampleSources == 0; otherwise a uniform sample
// of min(DefaultAPLSampleSize, n) sources drawn with seed. APL is the
// sum of BFS distances over the sum of ordered pairs, where each
// source contributes (n-1) pairs.
func AveragePathLength(adj *simplegraph.Adjacency, seed int64, sampleSources int) *float64 {
	if !IsConnected(adj) {
		return nil
	}
	if adj.N <= 1 {
		zero := 0.0
		return &zero
	}

	var sources []int
	if adj.N < DenseAPLThreshold || sampleSources == 0 {
		sources = make([]int, adj.N)
		for i := range sources {
			sources[i] = i
		}
	} else {
		size := DefaultAPLSampleSize
		if size > adj.N {
			size = adj.N
		}
		rng := rand.New(rand.NewSource(seed))
		perm := rng.Perm(adj.N)
		sources = perm[:size]
	}

	var totalDist int64
	for _, src := range sources {
		dist := bfsDistances(adj, src)
		for v, d := range dist {
			if v == src {
				continue
			}
			totalDist += int64(d)
		}
	}

	pairs := int64(len(sources)) * int64(adj.N-1)
	if pairs == 0 {
		zero := 0.0
		return &zero
	}
	apl := float64(totalDist) / float64(pairs)
	return &apl
}

// bfsDistances returns per-vertex hop distance from src (-1 if
// unreached, though AveragePathLength only calls this on connected
// graphs).
func bfsDistances(adj *simplegraph.Adjacency, src int) []int {
	dist := make([]int, adj.N)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range adj.Neighbors[v] {
			if dist[u] == -1 {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}
