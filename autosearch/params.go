package autosearch

import "github.com/katalvlaran/radspec/store"

// Params is the autosearch command payload (§4.13, §6's
// autosearch_start). Every field has a default matching §6's
// parameter-defaults table; use DefaultParams and Option overrides
// rather than constructing a zero-value Params, whose zero Iterations
// and Batch would run nothing.
type Params struct {
	N     int
	K     int
	Batch int

	Iterations int
	Mode       store.Mode

	Eps      float64
	TriRatio float64
	APLRatio float64
	ClRatio  float64

	T0, TEnd float64

	DoGreedy   bool
	DoRandom   bool
	RandomReps int

	DoExact       bool
	ExactNMax     int
	ExactTimeoutS float64

	ConnectedOnly  bool
	MaxDegAttempts int

	// BaseSeed seeds per-iteration seed derivation (s = *BaseSeed + i).
	// Nil means each iteration derives its own unseeded randomness.
	BaseSeed *int64
}

// Option customizes Params on top of DefaultParams.
type Option func(p *Params)

// DefaultParams returns the §6 parameter defaults: n=30, k=120,
// batch=10, iters=6000, mode="min", eps=1e-6, tri_ratio=0.5,
// apl_ratio=1.25, cl_ratio=0.7, t0=1.0, t_end=0.001, do_greedy=true,
// do_random=true, random_reps=2, do_exact=true, exact_n_max=20,
// exact_timeout_s=2.0, connected_only=false, max_deg_attempts=20.
func DefaultParams(opts ...Option) Params {
	p := Params{
		N:              30,
		K:              120,
		Batch:          10,
		Iterations:     6000,
		Mode:           store.ModeMin,
		Eps:            1e-6,
		TriRatio:       0.5,
		APLRatio:       1.25,
		ClRatio:        0.7,
		T0:             1.0,
		TEnd:           0.001,
		DoGreedy:       true,
		DoRandom:       true,
		RandomReps:     2,
		DoExact:        true,
		ExactNMax:      20,
		ExactTimeoutS:  2.0,
		ConnectedOnly:  false,
		MaxDegAttempts: 20,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithN(n int) Option          { return func(p *Params) { p.N = n } }
func WithK(k int) Option          { return func(p *Params) { p.K = k } }
func WithBatch(b int) Option      { return func(p *Params) { p.Batch = b } }
func WithMode(m store.Mode) Option { return func(p *Params) { p.Mode = m } }
func WithBaseSeed(seed int64) Option {
	return func(p *Params) { p.BaseSeed = &seed }
}
func WithConnectedOnly(v bool) Option { return func(p *Params) { p.ConnectedOnly = v } }
func WithExact(enabled bool, nMax int, timeoutS float64) Option {
	return func(p *Params) { p.DoExact = enabled; p.ExactNMax = nMax; p.ExactTimeoutS = timeoutS }
}
