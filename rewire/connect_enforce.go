package rewire

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/simplegraph"
)

// EnforceConnected takes an edge set that realizes the desired degree
// sequence but may be disconnected, and repeatedly fuses the first
// two connected components via a degree-preserving 2-switch until a
// single component remains (C10). Degrees are never altered.
//
// Fails with ErrCannotConnect if a component has no internal edge
// (an isolated, zero-degree vertex), or ErrLimitExceeded if the
// outer/inner attempt budgets are exhausted.
func EnforceConnected(n int, edges simplegraph.EdgeSet, rng *rand.Rand, maxOuter, maxInner int) (simplegraph.EdgeSet, error) {
	current := edges.Clone()

	for outer := 0; outer < maxOuter; outer++ {
		adj := simplegraph.BuildAdjacency(n, current)
		comps := invariant.Components(adj)
		if len(comps) <= 1 {
			return current, nil
		}

		c1, c2 := comps[0], comps[1]
		inC1, inC2 := memberSet(c1), memberSet(c2)
		edgesC1 := intraComponentEdges(current, inC1)
		edgesC2 := intraComponentEdges(current, inC2)
		if len(edgesC1) == 0 || len(edgesC2) == 0 {
			return nil, fmt.Errorf("%s: %w", MethodEnforceConnected, ErrCannotConnect)
		}

		fused := false
		for inner := 0; inner < maxInner; inner++ {
			e1 := edgesC1[rng.Intn(len(edgesC1))]
			e2 := edgesC2[rng.Intn(len(edgesC2))]
			if next, ok := fuseAcross(current, e1, e2); ok {
				current = next
				fused = true
				break
			}
		}
		if !fused {
			return nil, fmt.Errorf("%s: %w", MethodEnforceConnected, ErrLimitExceeded)
		}
	}

	return nil, fmt.Errorf("%s: %w", MethodEnforceConnected, ErrLimitExceeded)
}

func memberSet(vertices []int) map[int]bool {
	m := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		m[v] = true
	}
	return m
}

func intraComponentEdges(edges simplegraph.EdgeSet, member map[int]bool) simplegraph.EdgeSet {
	var out simplegraph.EdgeSet
	for _, e := range edges {
		if member[e.U] && member[e.V] {
			out = append(out, e)
		}
	}
	return out
}

// fuseAcross rewires e1=(a,b) (inside one component) and e2=(c,d)
// (inside the other) into {(a,c),(b,d)} or {(a,d),(b,c)}, whichever
// orientation avoids a multiedge, placing one endpoint from each side
// on each new edge.
func fuseAcross(edges simplegraph.EdgeSet, e1, e2 simplegraph.Edge) (simplegraph.EdgeSet, bool) {
	a, b := e1.U, e1.V
	c, d := e2.U, e2.V

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
		for _, e := range edges {
			if e == e1 || e == e2 {
				continue
			}
			out = append(out, e)
		}
		out = append(out, p, q)
		sort.Sort(out)
		return out, true
	}
	return nil, false
}
