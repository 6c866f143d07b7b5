package degseq

import (
	"sort"

	"github.com/katalvlaran/radspec/simplegraph"
)

// IsGraphical decides whether d is realizable as a simple graph via
// the Havel–Hakimi criterion (C1): repeatedly drop the largest
// remaining degree x, subtract 1 from the next x largest entries, and
// fail if x is negative, exceeds the remaining length, or any
// decrement drives an entry negative. Accept once the sequence is
// exhausted.
//
// Pure and total: never mutates the input slice, never panics.
// Complexity: O(n^2 log n).
func IsGraphical(d simplegraph.DegreeSequence) bool {
	if len(d) == 0 {
		return true
	}
	if d.Sum()%2 != 0 {
		return false
	}

	work := d.Clone()
	for len(work) > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(work)))
		x := work[0]
		work = work[1:]
		if x < 0 {
			return false
		}
		if x == 0 {
			continue
		}
		if x > len(work) {
			return false
		}
		for i := 0; i < x; i++ {
			work[i]--
			if work[i] < 0 {
				return false
			}
		}
	}
	return true
}
