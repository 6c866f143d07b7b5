package request

import "github.com/katalvlaran/radspec/simplegraph"

// GenerateDegreesRequest is the generate_degrees command payload.
type GenerateDegreesRequest struct {
	N, K        int
	Seed        *int64
	MaxAttempts int
}

// GenerateDegreesResponse is generate_degrees's output.
type GenerateDegreesResponse struct {
	N, K      int
	Seed      int64
	Degrees   simplegraph.DegreeSequence
	Graphical bool
}

// BasicAlgorithm is the closed set {greedy, random, exact} accepted
// by run_basic.
type BasicAlgorithm string

const (
	BasicGreedy BasicAlgorithm = "greedy"
	BasicRandom BasicAlgorithm = "random"
	BasicExact  BasicAlgorithm = "exact"
)

// RunBasicRequest is the run_basic command payload.
type RunBasicRequest struct {
	Algo    BasicAlgorithm
	Degrees simplegraph.DegreeSequence
	K       *int
	Seed    *int64
}

// MetaAlgorithm is the closed set {hc, sa} accepted by run_meta.
type MetaAlgorithm string

const (
	MetaHillClimb          MetaAlgorithm = "hc"
	MetaSimulatedAnnealing MetaAlgorithm = "sa"
)

// RunMetaRequest is the run_meta command payload. Per SPEC_FULL.md's
// supplemented features, the adapter always derives its starting
// point from a fresh Greedy realization using Seed — it never accepts
// an arbitrary caller-supplied starting edge set.
type RunMetaRequest struct {
	Algo          MetaAlgorithm
	Degrees       simplegraph.DegreeSequence
	K             *int
	Seed          *int64
	Mode          string
	Iterations    int
	ConnectedOnly bool
	T0, TEnd      *float64
}

// BestRunRequest is the best_run command payload. Adapter.BestRun
// looks the problem instance up by DegreesHash only; N and K are not
// consulted, and a request without DegreesHash fails with ErrValidation.
type BestRunRequest struct {
	Mode        string
	DegreesHash *string
	N, K        *int
}

// AutoSearchStatusRequest is the autosearch_status command payload.
type AutoSearchStatusRequest struct {
	JobID string
}

// AutoSearchStatusResponse is autosearch_status's output.
type AutoSearchStatusResponse struct {
	Status        string
	ProgressDone  int
	ProgressTotal int
	LastMessage   string
	Error         string
}

// AutoSearchStartResponse is autosearch_start's output.
type AutoSearchStartResponse struct {
	JobID  string
	Status string
}
