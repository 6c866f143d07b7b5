package rewire

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/radspec/simplegraph"
)

// TwoSwitch attempts one degree-preserving 2-switch (C8): two edges
// are drawn uniformly at random; the move is rejected unless their
// four endpoints are distinct, and unless one of the two possible
// rewirings {(a,c),(b,d)} or {(a,d),(b,c)} introduces no multiedge.
// The first such orientation (checked in that order) is applied.
//
// Returns the original edges unchanged and ok=false when no move is
// found; otherwise returns a new EdgeSet (original left untouched)
// and ok=true.
func TwoSwitch(edges simplegraph.EdgeSet, rng *rand.Rand) (simplegraph.EdgeSet, bool) {
	if len(edges) < 2 {
		return edges, false
	}

	i := rng.Intn(len(edges))
	j := rng.Intn(len(edges))
	if j == i {
		j = (j + 1) % len(edges)
	}
	e1, e2 := edges[i], edges[j]
	a, b := e1.U, e1.V
	c, d := e2.U, e2.V

	if a == c || a == d || b == c || b == d {
		return edges, false // fewer than four distinct endpoints
	}

	has := make(map[simplegraph.Edge]bool, len(edges))
	for _, e := range edges {
		has[e] = true
	}

	orientations := [][2]simplegraph.Edge{
		{normalize(a, c), normalize(b, d)},
		{normalize(a, d), normalize(b, c)},
	}

	for _, pair := range orientations {
		p, q := pair[0], pair[1]
		if p == q || p == e1 || p == e2 || q == e1 || q == e2 {
			continue
		}
		if has[p] || has[q] {
			continue
		}
		out := make(simplegraph.EdgeSet, 0, len(edges))
		for k, e := range edges {
			if k == i || k == j {
				continue
			}
			out = append(out, e)
		}
		out = append(out, p, q)
		sort.Sort(out)
		return out, true
	}

	return edges, false
}

func normalize(u, v int) simplegraph.Edge {
	if u > v {
		u, v = v, u
	}
	return simplegraph.Edge{U: u, V: v}
}
