package store

import (
	"time"

	"github.com/katalvlaran/radspec/simplegraph"
)

// Algorithm tags the method that produced a Run. String values are
// pinned to match the problem instance's original taxonomy so that
// fingerprint-and-algorithm-set filters (see discovery package) carry
// the same semantics across this module's history.
type Algorithm string

const (
	AlgoGreedy             Algorithm = "greedy"
	AlgoRandom             Algorithm = "random"
	AlgoExactRealization   Algorithm = "exact_realization"
	AlgoHillClimb          Algorithm = "hc"
	AlgoSimulatedAnnealing Algorithm = "sa"
)

// Mode selects whether a Run's objective is being minimized or
// maximized.
type Mode string

const (
	ModeMin Mode = "min"
	ModeMax Mode = "max"
)

// ObjectiveSpectralRadius is the only objective name this version of
// the engine scores Runs by.
const ObjectiveSpectralRadius = "spectral_radius"

// Run is a persisted record of one algorithmic attempt (§3). It is
// immutable once created: no field is ever mutated after InsertRun.
type Run struct {
	ID  string
	N   int
	K   *int
	Seed *int64

	Algorithm   Algorithm
	Degrees     simplegraph.DegreeSequence
	Fingerprint string
	Edges       simplegraph.EdgeSet

	Graph6                string
	Graph6Base64          string
	CanonicalGraph6       string
	CanonicalGraph6Base64 string

	WallTimeMs int64

	ObjectiveName  string
	Mode           Mode
	ObjectiveValue float64
	SpectralRadius float64

	Iterations    *int
	AcceptedMoves *int
	MetaParams    map[string]float64

	Triangles  *int
	APL        *float64
	Clustering *float64

	IsConnected bool
	// ConnectedOnly records whether the caller requested connectivity
	// filtering for this Run, independent of whether IsConnected ended
	// up true — useful for explaining why a disconnected basic-algorithm
	// Run was still persisted. See SPEC_FULL.md's supplemented features.
	ConnectedOnly bool

	CreatedAt time.Time
}

// Discovery is a per-(fingerprint, mode) notable event (§3). Appended
// only; never mutated.
type Discovery struct {
	ID          string
	Fingerprint string
	Mode        Mode

	ObjectiveName     string
	BestRunID         string
	PreviousBestValue *float64
	NewBestValue      float64
	Improvement       *float64
	AnomalyFlags      []string
	Note              string

	CreatedAt time.Time
}

// JobStatus is the AutoSearchJob lifecycle state.
type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// AutoSearchJob is a background job descriptor (§3). Status
// transitions queued -> running -> done|failed.
type AutoSearchJob struct {
	ID     string
	Status JobStatus

	Params map[string]interface{}

	ProgressDone  int
	ProgressTotal int
	LastMessage   string
	Error         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
