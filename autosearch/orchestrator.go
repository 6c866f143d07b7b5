package autosearch

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/radspec/anneal"
	"github.com/katalvlaran/radspec/canon"
	"github.com/katalvlaran/radspec/degseq"
	"github.com/katalvlaran/radspec/discovery"
	"github.com/katalvlaran/radspec/graph6"
	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/realize"
	"github.com/katalvlaran/radspec/simplegraph"
	"github.com/katalvlaran/radspec/store"
)

// runBatch executes the C12 orchestration loop for p.Batch
// iterations, persisting Runs and Discoveries through rt.Store.
// Per-iteration failures are logged and recorded as progress without
// aborting the batch (§7); only an unexpected failure outside any
// iteration's own try-scope would abort it, and none of the steps
// below can do that — every fallible step here already degrades to
// "skip this iteration" on error.
func (rt *Runtime) runBatch(ctx context.Context, jobID string, p Params) error {
	for i := 0; i < p.Batch; i++ {
		rt.runIteration(ctx, jobID, p, i)
		_ = rt.Store.UpdateJob(ctx, jobID, func(j *store.AutoSearchJob) {
			j.ProgressDone = i + 1
			j.UpdatedAt = time.Now()
		})
	}
	return nil
}

func (rt *Runtime) runIteration(ctx context.Context, jobID string, p Params, i int) {
	baseSeed := iterationSeed(p.BaseSeed, i)

	degrees, ok := rt.sampleGraphicalDegrees(p, baseSeed)
	if !ok {
		rt.note(ctx, jobID, "skip: no graphical degree sequence found")
		return
	}

	fingerprint := degseq.Fingerprint(degrees)

	start, bestFound := rt.runBaselines(ctx, p, degrees, fingerprint, baseSeed)
	if !bestFound {
		greedy, err := realize.Greedy(degrees)
		if err != nil {
			rt.note(ctx, jobID, "skip: fallback greedy realization failed: "+err.Error())
			return
		}
		start = greedy
	}

	objective := func(edges simplegraph.EdgeSet) (float64, error) {
		return invariant.SpectralRadius(p.N, edges)
	}

	hcSeed := derive(baseSeed, 7)
	hc, err := anneal.HillClimb(start, objective, anneal.Params{
		N: p.N, Iterations: p.Iterations, Mode: anneal.Mode(p.Mode),
		ConnectedOnly: p.ConnectedOnly, Seed: hcSeed,
	})
	if err == nil && (!p.ConnectedOnly || isConnectedEdges(p.N, hc.Edges)) {
		rt.persistMetaRun(ctx, store.AlgoHillClimb, p, degrees, fingerprint, hc, hcSeed)
	} else if err != nil {
		rt.note(ctx, jobID, "hill climb failed: "+err.Error())
	}

	saSeed := derive(baseSeed, 11)
	sa, err := anneal.SimulatedAnnealing(start, objective, anneal.Params{
		N: p.N, Iterations: p.Iterations, Mode: anneal.Mode(p.Mode),
		ConnectedOnly: p.ConnectedOnly, Seed: saSeed, T0: p.T0, TEnd: p.TEnd,
	})
	if err == nil && (!p.ConnectedOnly || isConnectedEdges(p.N, sa.Edges)) {
		rt.persistMetaRun(ctx, store.AlgoSimulatedAnnealing, p, degrees, fingerprint, sa, saSeed)
	} else if err != nil {
		rt.note(ctx, jobID, "simulated annealing failed: "+err.Error())
	}

	if _, err := discovery.Detect(ctx, rt.Store, fingerprint, p.Mode, discovery.Params{
		Epsilon: p.Eps, TriRatio: p.TriRatio, APLRatio: p.APLRatio, ClRatio: p.ClRatio,
	}); err != nil {
		rt.note(ctx, jobID, "discovery detection failed: "+err.Error())
	}
}

// sampleGraphicalDegrees implements §4.13 step 1: up to
// p.MaxDegAttempts tries of degseq.GenerateFixedSum, each checked
// with degseq.IsGraphical.
func (rt *Runtime) sampleGraphicalDegrees(p Params, baseSeed int64) (simplegraph.DegreeSequence, bool) {
	for att := 0; att < p.MaxDegAttempts; att++ {
		seed := baseSeed + int64(att)
		d, err := degseq.GenerateFixedSum(p.N, p.K, seed, 2000)
		if err != nil {
			continue
		}
		if degseq.IsGraphical(d) {
			return d, true
		}
	}
	return nil, false
}

// runBaselines implements §4.13 steps 2-3: greedy, random_reps
// randomized-greedy, and (gated by n/timeout) exact realization, each
// persisted as a Run and compared against the running per-iteration
// best. Returns the best qualifying baseline's edges, or ok=false if
// none qualified (caller falls back to a fresh greedy start, step 4).
func (rt *Runtime) runBaselines(ctx context.Context, p Params, degrees simplegraph.DegreeSequence, fingerprint string, baseSeed int64) (simplegraph.EdgeSet, bool) {
	var best simplegraph.EdgeSet
	var bestScore float64
	found := false

	consider := func(edges simplegraph.EdgeSet) {
		if p.ConnectedOnly && !isConnectedEdges(p.N, edges) {
			return
		}
		score, err := invariant.SpectralRadius(p.N, edges)
		if err != nil {
			return
		}
		if !found || betterScore(p.Mode, score, bestScore) {
			best, bestScore, found = edges, score, true
		}
	}

	if p.DoGreedy {
		if edges, err := realize.Greedy(degrees); err == nil {
			rt.persistBasicRun(ctx, store.AlgoGreedy, p, degrees, fingerprint, edges, baseSeed)
			consider(edges)
		}
	}

	if p.DoRandom {
		for rr := 0; rr < p.RandomReps; rr++ {
			seed := baseSeed*1000 + int64(rr)
			if edges, err := realize.RandomGreedy(degrees, seed); err == nil {
				rt.persistBasicRun(ctx, store.AlgoRandom, p, degrees, fingerprint, edges, seed)
				consider(edges)
			}
		}
	}

	if p.DoExact && p.N <= p.ExactNMax {
		timeout := time.Duration(p.ExactTimeoutS * float64(time.Second))
		edges, completed, err := RunExactIsolated(ctx, degrees, realize.DefaultMaxSteps, timeout)
		if err != nil {
			log.Warn().Err(err).Msg("exact realization subprocess error")
		} else if completed {
			rt.persistBasicRun(ctx, store.AlgoExactRealization, p, degrees, fingerprint, edges, baseSeed)
			consider(edges)
		}
	}

	return best, found
}

func betterScore(mode store.Mode, candidate, current float64) bool {
	if mode == store.ModeMax {
		return candidate > current
	}
	return candidate < current
}

func isConnectedEdges(n int, edges simplegraph.EdgeSet) bool {
	return invariant.IsConnected(simplegraph.BuildAdjacency(n, edges))
}

func (rt *Runtime) note(ctx context.Context, jobID, msg string) {
	log.Warn().Str("job_id", jobID).Msg(msg)
	_ = rt.Store.UpdateJob(ctx, jobID, func(j *store.AutoSearchJob) {
		j.LastMessage = msg
		j.UpdatedAt = time.Now()
	})
}

func (rt *Runtime) persistBasicRun(ctx context.Context, algo store.Algorithm, p Params, degrees simplegraph.DegreeSequence, fingerprint string, edges simplegraph.EdgeSet, seed int64) {
	start := time.Now()
	run := rt.buildRun(ctx, algo, p, degrees, fingerprint, edges, &seed, start)
	run.ConnectedOnly = p.ConnectedOnly
	if err := rt.Store.InsertRun(ctx, run); err != nil {
		log.Warn().Err(err).Msg("failed to persist basic run")
	}
}

func (rt *Runtime) persistMetaRun(ctx context.Context, algo store.Algorithm, p Params, degrees simplegraph.DegreeSequence, fingerprint string, result anneal.Result, seed int64) {
	start := time.Now().Add(-time.Duration(result.DurationMs) * time.Millisecond)
	run := rt.buildRun(ctx, algo, p, degrees, fingerprint, result.Edges, &seed, start)
	run.ConnectedOnly = p.ConnectedOnly
	iterations := result.Iterations
	accepted := result.Accepted
	run.Iterations = &iterations
	run.AcceptedMoves = &accepted
	run.MetaParams = map[string]float64{"t0": p.T0, "t_end": p.TEnd}
	if err := rt.Store.InsertRun(ctx, run); err != nil {
		log.Warn().Err(err).Msg("failed to persist meta run")
	}
}

// buildRun assembles a store.Run from a realized edge set, computing
// every §3 structural field (graph6, spectral radius, triangles,
// clustering, connectivity, sampled APL).
func (rt *Runtime) buildRun(ctx context.Context, algo store.Algorithm, p Params, degrees simplegraph.DegreeSequence, fingerprint string, edges simplegraph.EdgeSet, seed *int64, start time.Time) *store.Run {
	adj := simplegraph.BuildAdjacency(p.N, edges)
	spectral, err := invariant.SpectralRadius(p.N, edges)
	if err != nil {
		spectral = math.NaN()
	}
	triangles := invariant.Triangles(adj)
	clustering := invariant.Clustering(adj)
	connected := invariant.IsConnected(adj)
	apl := invariant.AveragePathLength(adj, derefSeed(seed), 0)

	g6, _ := graph6.Encode(p.N, edges)
	g6b64 := graph6.ToBase64(g6)

	canonG6, err := canon.CanonicalG6WithDefaultTimeout(ctx, g6)
	var canonG6b64 string
	if err != nil {
		log.Debug().Err(err).Msg("canonical graph6 unavailable, leaving fields empty")
		canonG6 = ""
	} else {
		canonG6b64 = graph6.ToBase64(canonG6)
	}

	k := p.K
	return &store.Run{
		N: p.N, K: &k, Seed: seed,
		Algorithm: algo, Degrees: degrees.Clone(), Fingerprint: fingerprint,
		Edges: edges.Clone(),
		Graph6: g6, Graph6Base64: g6b64,
		CanonicalGraph6: canonG6, CanonicalGraph6Base64: canonG6b64,
		WallTimeMs:     time.Since(start).Milliseconds(),
		ObjectiveName:  store.ObjectiveSpectralRadius,
		Mode:           p.Mode,
		ObjectiveValue: spectral,
		SpectralRadius: spectral,
		Triangles:      &triangles,
		APL:            apl,
		Clustering:     &clustering,
		IsConnected:    connected,
		CreatedAt:      time.Now(),
	}
}

func derefSeed(seed *int64) int64 {
	if seed == nil {
		return 0
	}
	return *seed
}

// iterationSeed derives the per-iteration base seed s = base+i; when
// base is nil, falls back to a process-time-derived seed so the batch
// still proceeds without a caller-supplied base (§4.13).
func iterationSeed(base *int64, i int) int64 {
	if base == nil {
		return derive(time.Now().UnixNano(), i)
	}
	return *base + int64(i)
}

// derive mixes x and salt via a SplitMix64-style avalanche step,
// giving independent-looking child seeds from a single parent seed
// without needing a shared RNG instance across goroutines.
func derive(x int64, salt int) int64 {
	z := uint64(x) + uint64(salt)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z)
}
