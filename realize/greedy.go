package realize

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/radspec/simplegraph"
)

// stub couples a vertex with its remaining demand for the realization
// loop; it is the "stub" of stub-matching, named after the corpus's
// random-regular builder which uses the same vocabulary.
type stub struct {
	vertex    int
	remaining int
}

// havelHakimiRealize is the shared realization loop behind Greedy and
// RandomGreedy: repeatedly take the currently-highest-demand vertex
// and connect it to the next-highest-demand candidates. When rng is
// non-nil, the top candidate pool (size max(k,3)) is shuffled before
// the k connections are chosen, producing the randomized-greedy
// variant; when rng is nil, ties break by ascending vertex index for
// a fully deterministic realization.
func havelHakimiRealize(d simplegraph.DegreeSequence, rng *rand.Rand) (simplegraph.EdgeSet, error) {
	n := len(d)
	remaining := make([]int, n)
	copy(remaining, d)

	edges := make(simplegraph.EdgeSet, 0, d.Sum()/2)

	for {
		stubs := make([]stub, 0, n)
		for v := 0; v < n; v++ {
			if remaining[v] > 0 {
				stubs = append(stubs, stub{vertex: v, remaining: remaining[v]})
			}
		}
		if len(stubs) == 0 {
			break
		}
		sort.SliceStable(stubs, func(i, j int) bool {
			if stubs[i].remaining != stubs[j].remaining {
				return stubs[i].remaining > stubs[j].remaining
			}
			return stubs[i].vertex < stubs[j].vertex
		})

		head := stubs[0]
		pool := stubs[1:]
		k := head.remaining
		if k > len(pool) {
			return nil, fmt.Errorf("%s: vertex %d demands %d of %d available: %w", MethodGreedy, head.vertex, k, len(pool), ErrNonGraphical)
		}

		if rng != nil {
			poolSize := k
			if poolSize < 3 {
				poolSize = 3
			}
			if poolSize > len(pool) {
				poolSize = len(pool)
			}
			top := pool[:poolSize]
			rng.Shuffle(len(top), func(i, j int) { top[i], top[j] = top[j], top[i] })
		}

		chosen := pool[:k]
		remaining[head.vertex] = 0
		for _, c := range chosen {
			u, v := head.vertex, c.vertex
			if u > v {
				u, v = v, u
			}
			edges = append(edges, simplegraph.Edge{U: u, V: v})
			remaining[c.vertex]--
			if remaining[c.vertex] < 0 {
				return nil, fmt.Errorf("%s: vertex %d over-decremented: %w", MethodGreedy, c.vertex, ErrNonGraphical)
			}
		}
	}

	sort.Sort(edges)
	return edges, nil
}

// Greedy realizes d deterministically via Havel–Hakimi construction:
// at each step, the highest-remaining-degree vertex connects to the
// vertices of next-highest remaining degree. Fastest of the three
// realizers; does not attempt to preserve connectivity.
//
// Complexity: O(n^2 log n).
func Greedy(d simplegraph.DegreeSequence) (simplegraph.EdgeSet, error) {
	return havelHakimiRealize(d, nil)
}

// RandomGreedy realizes d like Greedy, but shuffles the top candidate
// pool (size max(k,3)) before each connection step, yielding diverse
// realizations of the same degree sequence across seeds.
//
// Complexity: O(n^2 log n).
func RandomGreedy(d simplegraph.DegreeSequence, seed int64) (simplegraph.EdgeSet, error) {
	rng := rand.New(rand.NewSource(seed))
	return havelHakimiRealize(d, rng)
}
