package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/radspec/anneal"
	"github.com/katalvlaran/radspec/autosearch"
	"github.com/katalvlaran/radspec/canon"
	"github.com/katalvlaran/radspec/degseq"
	"github.com/katalvlaran/radspec/graph6"
	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/realize"
	"github.com/katalvlaran/radspec/simplegraph"
	"github.com/katalvlaran/radspec/store"
)

// ErrUnknownAlgorithm is returned when a command names an algorithm
// outside its closed set (§9: dynamic algorithm dispatch rejects
// unknown tags at the boundary).
var ErrUnknownAlgorithm = errors.New("request: unknown algorithm")

// ErrValidation covers malformed command payloads (§7:
// ValidationError): non-graphical degrees where graphicality is
// required, invalid mode, iterations < 1.
var ErrValidation = errors.New("request: validation error")

// Adapter is the request-adapter contract's implementation: it holds
// exactly the two external collaborators the base specification names
// (a Store and the autosearch job Runtime) and exposes one method per
// §6 command.
type Adapter struct {
	Store   store.Store
	Runtime *autosearch.Runtime
}

// NewAdapter builds an Adapter over st, also constructing the
// autosearch.Runtime that shares the same Store.
func NewAdapter(st store.Store) *Adapter {
	return &Adapter{Store: st, Runtime: autosearch.NewRuntime(st)}
}

// GenerateDegrees implements the generate_degrees command.
func (a *Adapter) GenerateDegrees(req GenerateDegreesRequest) (GenerateDegreesResponse, error) {
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 2000
	}
	d, err := degseq.GenerateFixedSum(req.N, req.K, seed, maxAttempts)
	if err != nil {
		return GenerateDegreesResponse{}, fmt.Errorf("GenerateDegrees: %w", err)
	}
	return GenerateDegreesResponse{
		N: req.N, K: req.K, Seed: seed, Degrees: d, Graphical: degseq.IsGraphical(d),
	}, nil
}

// RunBasic implements the run_basic command: dispatches to one of
// the three realizers and returns a full Run view (not persisted —
// persistence is the caller's/autosearch's concern; run_basic here is
// a pure scoring endpoint).
func (a *Adapter) RunBasic(ctx context.Context, req RunBasicRequest) (*store.Run, error) {
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	}

	var edges simplegraph.EdgeSet
	var algo store.Algorithm
	var err error

	switch req.Algo {
	case BasicGreedy:
		edges, err = realize.Greedy(req.Degrees)
		algo = store.AlgoGreedy
	case BasicRandom:
		edges, err = realize.RandomGreedy(req.Degrees, seed)
		algo = store.AlgoRandom
	case BasicExact:
		edgesIso, completed, exactErr := autosearch.RunExactIsolated(ctx, req.Degrees, realize.DefaultMaxSteps, 10*time.Second)
		if exactErr != nil {
			return nil, fmt.Errorf("RunBasic: %w", exactErr)
		}
		if !completed {
			return nil, fmt.Errorf("RunBasic: exact realization timed out")
		}
		edges, algo = edgesIso, store.AlgoExactRealization
	default:
		return nil, fmt.Errorf("RunBasic: %q: %w", req.Algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("RunBasic: %w", err)
	}

	return scoreRun(ctx, algo, req.Degrees, edges, req.K, &seed, store.ModeMin)
}

// RunMeta implements the run_meta command. It always derives its
// starting point from a fresh Greedy realization using req.Seed, per
// SPEC_FULL.md's supplemented-features note, then runs hill climbing
// or simulated annealing from there.
func (a *Adapter) RunMeta(ctx context.Context, req RunMetaRequest) (*store.Run, error) {
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	}
	if req.Iterations < 1 {
		return nil, fmt.Errorf("RunMeta: iterations=%d: %w", req.Iterations, ErrValidation)
	}
	mode := store.Mode(req.Mode)
	if mode != store.ModeMin && mode != store.ModeMax {
		return nil, fmt.Errorf("RunMeta: mode=%q: %w", req.Mode, ErrValidation)
	}

	start, err := realize.Greedy(req.Degrees)
	if err != nil {
		return nil, fmt.Errorf("RunMeta: fresh greedy start: %w", err)
	}

	n := len(req.Degrees)
	objective := func(edges simplegraph.EdgeSet) (float64, error) {
		return invariant.SpectralRadius(n, edges)
	}

	params := anneal.Params{N: n, Iterations: req.Iterations, Mode: anneal.Mode(mode), ConnectedOnly: req.ConnectedOnly, Seed: seed}
	var algo store.Algorithm
	var result anneal.Result

	switch req.Algo {
	case MetaHillClimb:
		result, err = anneal.HillClimb(start, objective, params)
		algo = store.AlgoHillClimb
	case MetaSimulatedAnnealing:
		if req.T0 != nil {
			params.T0 = *req.T0
		} else {
			params.T0 = 1.0
		}
		if req.TEnd != nil {
			params.TEnd = *req.TEnd
		} else {
			params.TEnd = 0.001
		}
		result, err = anneal.SimulatedAnnealing(start, objective, params)
		algo = store.AlgoSimulatedAnnealing
	default:
		return nil, fmt.Errorf("RunMeta: %q: %w", req.Algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("RunMeta: %w", err)
	}

	run, err := scoreRun(ctx, algo, req.Degrees, result.Edges, req.K, &seed, mode)
	if err != nil {
		return nil, err
	}
	run.ConnectedOnly = req.ConnectedOnly
	iterations, accepted := result.Iterations, result.Accepted
	run.Iterations = &iterations
	run.AcceptedMoves = &accepted
	run.MetaParams = map[string]float64{"t0": params.T0, "t_end": params.TEnd}
	run.WallTimeMs = result.DurationMs
	return run, nil
}

// ListRuns implements list_runs (most-recent <=300 Runs).
func (a *Adapter) ListRuns(ctx context.Context) ([]store.Run, error) {
	return a.Store.ListRuns(ctx, 300)
}

// BestRun implements best_run.
func (a *Adapter) BestRun(ctx context.Context, req BestRunRequest) (*store.Run, error) {
	mode := store.Mode(req.Mode)
	if req.DegreesHash == nil {
		return nil, fmt.Errorf("BestRun: %w: degrees_hash required", ErrValidation)
	}
	return a.Store.BestRun(ctx, mode, *req.DegreesHash)
}

// ListDiscoveries implements list_discoveries (most-recent <=200).
func (a *Adapter) ListDiscoveries(ctx context.Context) ([]store.Discovery, error) {
	return a.Store.ListDiscoveries(ctx, 200)
}

// AutoSearchStart implements autosearch_start.
func (a *Adapter) AutoSearchStart(ctx context.Context, p autosearch.Params) (AutoSearchStartResponse, error) {
	id, err := a.Runtime.Start(ctx, p)
	if err != nil {
		return AutoSearchStartResponse{}, err
	}
	return AutoSearchStartResponse{JobID: id, Status: string(store.JobQueued)}, nil
}

// AutoSearchStatus implements autosearch_status.
func (a *Adapter) AutoSearchStatus(ctx context.Context, req AutoSearchStatusRequest) (AutoSearchStatusResponse, error) {
	job, err := a.Runtime.Status(ctx, req.JobID)
	if err != nil {
		return AutoSearchStatusResponse{}, err
	}
	return AutoSearchStatusResponse{
		Status: string(job.Status), ProgressDone: job.ProgressDone, ProgressTotal: job.ProgressTotal,
		LastMessage: job.LastMessage, Error: job.Error,
	}, nil
}

// scoreRun computes the full §3 structural view of edges and packages
// it as a (not-yet-persisted) Run, shared by RunBasic and RunMeta.
func scoreRun(ctx context.Context, algo store.Algorithm, degrees simplegraph.DegreeSequence, edges simplegraph.EdgeSet, k *int, seed *int64, mode store.Mode) (*store.Run, error) {
	n := len(degrees)
	adj := simplegraph.BuildAdjacency(n, edges)
	spectral, err := invariant.SpectralRadius(n, edges)
	if err != nil {
		return nil, fmt.Errorf("scoreRun: %w", err)
	}
	triangles := invariant.Triangles(adj)
	clustering := invariant.Clustering(adj)
	connected := invariant.IsConnected(adj)
	apl := invariant.AveragePathLength(adj, derefSeed(seed), 0)
	fingerprint := degseq.Fingerprint(degrees)

	g6, _ := graph6.Encode(n, edges)
	g6b64 := graph6.ToBase64(g6)

	canonG6, err := canon.CanonicalG6WithDefaultTimeout(ctx, g6)
	var canonG6b64 string
	if err != nil {
		canonG6 = ""
	} else {
		canonG6b64 = graph6.ToBase64(canonG6)
	}

	return &store.Run{
		N: n, K: k, Seed: seed,
		Algorithm: algo, Degrees: degrees.Clone(), Fingerprint: fingerprint, Edges: edges.Clone(),
		Graph6: g6, Graph6Base64: g6b64,
		CanonicalGraph6: canonG6, CanonicalGraph6Base64: canonG6b64,
		ObjectiveName: store.ObjectiveSpectralRadius, Mode: mode,
		ObjectiveValue: spectral, SpectralRadius: spectral,
		Triangles: &triangles, APL: apl, Clustering: &clustering, IsConnected: connected,
		CreatedAt: time.Now(),
	}, nil
}

func derefSeed(seed *int64) int64 {
	if seed == nil {
		return 0
	}
	return *seed
}
