package anneal

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/rewire"
	"github.com/katalvlaran/radspec/simplegraph"
)

// MinTemperature is the floor the linear temperature schedule clamps
// to when it would otherwise reach zero or go negative.
const MinTemperature = 1e-12

// SimulatedAnnealing runs the same 2-switch local search as
// HillClimb, but accepts worsening moves probabilistically under a
// linear temperature schedule T(it) = t0 + (tEnd-t0)*it/max(1,
// iterations-1). Let Δ = candidate-current (min) or
// current-candidate (max); a move is accepted if Δ<0, else with
// probability exp(-Δ/T). There is no reheating and no separate
// best-seen tracking: the returned Result is the trajectory's end
// state, by design — see this module's design notes on why that is
// not "improved" into best-seen tracking.
func SimulatedAnnealing(start simplegraph.EdgeSet, objective Objective, p Params) (Result, error) {
	startTime := time.Now()
	rng := rand.New(rand.NewSource(p.Seed))

	current := start.Clone()
	curScore, err := objective(current)
	if err != nil {
		return Result{}, err
	}

	accepted := 0
	denom := p.Iterations - 1
	if denom < 1 {
		denom = 1
	}

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

		var delta float64
		if p.Mode == ModeMax {
			delta = curScore - candScore
		} else {
			delta = candScore - curScore
		}

		temp := p.T0 + (p.TEnd-p.T0)*float64(it)/float64(denom)
		if temp <= 0 {
			temp = MinTemperature
		}

		accept := delta < 0
		if !accept {
			accept = rng.Float64() < math.Exp(-delta/temp)
		}
		if accept {
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
