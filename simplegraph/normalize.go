package simplegraph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidVertexCount is returned when n is negative.
var ErrInvalidVertexCount = errors.New("simplegraph: n must be non-negative")

// ErrOutOfRangeEndpoint is returned by NormalizeEdges when strict
// mode is requested and an edge endpoint falls outside [0, n).
var ErrOutOfRangeEndpoint = errors.New("simplegraph: edge endpoint out of range")

// NormalizeEdges reduces an arbitrary list of integer pairs to
// canonical form over n vertices (C4): loops are dropped, each pair
// is oriented U<V, duplicates are removed via a set, and the result
// is sorted ascending by (U,V). Out-of-range endpoints are silently
// dropped unless strict is true, in which case the first offending
// pair yields ErrOutOfRangeEndpoint wrapped with call-site context.
//
// Total: never panics, always returns a result for n>=0.
func NormalizeEdges(n int, pairs []Edge, strict bool) (EdgeSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("NormalizeEdges: %w", ErrInvalidVertexCount)
	}

	seen := make(map[Edge]struct{}, len(pairs))
	out := make(EdgeSet, 0, len(pairs))
	for _, p := range pairs {
		u, v := p.U, p.V
		if u == v {
			continue // drop loops
		}
		if u > v {
			u, v = v, u // orient u<v
		}
		if u < 0 || v >= n {
			if strict {
				return nil, fmt.Errorf("NormalizeEdges: (%d,%d) against n=%d: %w", p.U, p.V, n, ErrOutOfRangeEndpoint)
			}
			continue
		}
		key := Edge{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	sort.Sort(out)
	return out, nil
}
