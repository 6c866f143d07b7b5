package anneal

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/rewire"
	"github.com/katalvlaran/radspec/simplegraph"
)

// HillClimb runs deterministic-acceptance local search over the
// 2-switch neighborhood (C9): each step proposes a 2-switch and
// accepts it only on strict improvement under p.Mode. Structurally
// invalid proposals (rejected by rewire.TwoSwitch) or, when
// p.ConnectedOnly is set, proposals that disconnect the graph, are
// skipped without consuming an accepted move.
func HillClimb(start simplegraph.EdgeSet, objective Objective, p Params) (Result, error) {
	startTime := time.Now()
	rng := rand.New(rand.NewSource(p.Seed))

	current := start.Clone()
	curScore, err := objective(current)
	if err != nil {
		return Result{}, err
	}

	accepted := 0
	for it := 0; it < p.Iterations; it++ {
		candidate, ok := rewire.TwoSwitch(current, rng)
		if !ok {
			continue
		}
		if p.ConnectedOnly {
			adj := simplegraph.BuildAdjacency(p.N, candidate)
			if !invariant.IsConnected(adj) {
				continue
			}
		}
		candScore, err := objective(candidate)
		if err != nil {
			continue
		}

		improved := candScore < curScore
		if p.Mode == ModeMax {
			improved = candScore > curScore
		}
		if improved {
			current = candidate
			curScore = candScore
			accepted++
		}
	}

	return Result{
		Edges:      current,
		Objective:  curScore,
		Iterations: p.Iterations,
		Accepted:   accepted,
		DurationMs: measure(startTime),
	}, nil
}
