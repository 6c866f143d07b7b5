package anneal

import (
	"time"

	"github.com/katalvlaran/radspec/simplegraph"
)

// Mode selects whether the search minimizes or maximizes the
// objective (spectral radius, in this module's only use).
type Mode string

const (
	ModeMin Mode = "min"
	ModeMax Mode = "max"
)

// Objective scores a candidate edge set; the search loops are
// agnostic to what the objective measures.
type Objective func(edges simplegraph.EdgeSet) (float64, error)

// Result is the outcome of a hill-climb or simulated-annealing run.
type Result struct {
	Edges        simplegraph.EdgeSet
	Objective    float64
	Iterations   int
	Accepted     int
	DurationMs   int64
}

// Params configures both HillClimb and SimulatedAnnealing.
type Params struct {
	N             int
	Iterations    int
	Mode          Mode
	ConnectedOnly bool
	Seed          int64
	// T0 and TEnd are only read by SimulatedAnnealing.
	T0, TEnd float64
}

func measure(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
