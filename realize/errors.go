package realize

import "errors"

// ErrNonGraphical is returned by a realizer when the input degree
// sequence cannot be realized as a simple graph.
var ErrNonGraphical = errors.New("realize: degree sequence is not graphical")

// ErrLimitExceeded is returned by the exact backtracking realizer
// when its step budget is exhausted before a realization is found or
// refuted.
var ErrLimitExceeded = errors.New("realize: step limit exceeded")

const (
	MethodGreedy            = "Greedy"
	MethodRandomGreedy       = "RandomGreedy"
	MethodExactBacktracking  = "ExactBacktracking"
)

// DefaultMaxSteps bounds the exact backtracking realizer's total
// work, matching the corpus's source (2,000,000 steps).
const DefaultMaxSteps = 2_000_000
