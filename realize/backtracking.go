package realize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/radspec/simplegraph"
)

// ExactBacktracking realizes d via exhaustive backtracking search
// (C3): at each step the currently highest-remaining-degree vertex
// chooses k of its candidate neighbors (enumerated in descending
// remaining-degree order) as an ordered combination, recurses, and
// undoes on failure. A total step counter bounds the search;
// exceeding maxSteps returns ErrLimitExceeded rather than spinning
// forever on a pathological instance.
//
// Finds a realization whenever one exists within the step budget;
// returns ErrNonGraphical only once every combination at the top
// level has been exhausted.
func ExactBacktracking(d simplegraph.DegreeSequence, maxSteps int) (simplegraph.EdgeSet, error) {
	n := len(d)
	remaining := make([]int, n)
	copy(remaining, d)
	if d.Sum()%2 != 0 {
		return nil, fmt.Errorf("%s: odd sum: %w", MethodExactBacktracking, ErrNonGraphical)
	}
	for _, v := range d {
		if v < 0 || v > n-1 {
			return nil, fmt.Errorf("%s: entry out of [0,%d]: %w", MethodExactBacktracking, n-1, ErrNonGraphical)
		}
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	edges := make([]simplegraph.Edge, 0, d.Sum()/2)
	steps := 0
	limitHit := false

	var solve func() bool
	var chooseCombo func(head int, candidates []int, start, need int, chosen []int) bool

	solve = func() bool {
		steps++
		if steps > maxSteps {
			limitHit = true
			return false
		}
		head, max := -1, -1
		for v := 0; v < n; v++ {
			if remaining[v] > max {
				max, head = remaining[v], v
			}
		}
		if head == -1 || max == 0 {
			return true // all demands satisfied
		}

		candidates := make([]int, 0, n)
		for v := 0; v < n; v++ {
			if v != head && remaining[v] > 0 && !adj[head][v] {
				candidates = append(candidates, v)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			if remaining[candidates[i]] != remaining[candidates[j]] {
				return remaining[candidates[i]] > remaining[candidates[j]]
			}
			return candidates[i] < candidates[j]
		})

		need := remaining[head]
		if need > len(candidates) {
			return false
		}
		return chooseCombo(head, candidates, 0, need, nil)
	}

	chooseCombo = func(head int, candidates []int, start, need int, chosen []int) bool {
		if limitHit {
			return false
		}
		if need == 0 {
			for _, c := range chosen {
				adj[head][c], adj[c][head] = true, true
				remaining[head]--
				remaining[c]--
				u, v := head, c
				if u > v {
					u, v = v, u
				}
				edges = append(edges, simplegraph.Edge{U: u, V: v})
			}
			if solve() {
				return true
			}
			for _, c := range chosen {
				adj[head][c], adj[c][head] = false, false
				remaining[head]++
				remaining[c]++
				edges = edges[:len(edges)-1]
			}
			return false
		}
		if start >= len(candidates) || len(candidates)-start < need {
			return false
		}
		// Try including candidates[start], then excluding it.
		next := append(append([]int{}, chosen...), candidates[start])
		if chooseCombo(head, candidates, start+1, need-1, next) {
			return true
		}
		if chooseCombo(head, candidates, start+1, need, chosen) {
			return true
		}
		return false
	}

	ok := solve()
	if limitHit {
		return nil, fmt.Errorf("%s: %d steps: %w", MethodExactBacktracking, maxSteps, ErrLimitExceeded)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", MethodExactBacktracking, ErrNonGraphical)
	}

	out := simplegraph.EdgeSet(edges)
	sort.Sort(out)
	return out, nil
}
