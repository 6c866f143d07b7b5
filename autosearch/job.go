package autosearch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/radspec/store"
)

// jobLock is the process-global non-reentrant try-lock (C14, §9): at
// most one autosearch job runs at a time across the whole process. A
// second concurrent Start fails fast rather than queuing, matching
// the corpus's source behavior (see DESIGN.md, "Global job lock
// semantics").
var jobLock sync.Mutex

// Runtime wires a Store to the job lifecycle and owns the one global
// try-lock declared above. Construct one Runtime per process; callers
// do not need more than one.
type Runtime struct {
	Store store.Store
}

// NewRuntime returns a Runtime backed by st.
func NewRuntime(st store.Store) *Runtime {
	return &Runtime{Store: st}
}

// Start persists a queued AutoSearchJob and launches its worker in
// the background (C14). It returns immediately with the job ID; the
// caller polls Status for progress.
func (rt *Runtime) Start(ctx context.Context, p Params) (string, error) {
	now := time.Now()
	job := &store.AutoSearchJob{
		Status:        store.JobQueued,
		Params:        paramsToMap(p),
		ProgressTotal: p.Batch,
		ProgressDone:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := rt.Store.InsertJob(ctx, job); err != nil {
		return "", err
	}

	go rt.worker(context.Background(), job.ID, p)
	return job.ID, nil
}

// Status returns the current AutoSearchJob view for jobID (§6's
// autosearch_status).
func (rt *Runtime) Status(ctx context.Context, jobID string) (*store.AutoSearchJob, error) {
	return rt.Store.GetJob(ctx, jobID)
}

// worker acquires the global try-lock, runs the batch loop, and
// guarantees lock release and a terminal job status on every exit
// path — including the lock-acquisition failure itself (§7:
// ConcurrencyConflict, recorded as a failed job rather than a thrown
// error to the caller, who already received the job ID from Start).
func (rt *Runtime) worker(ctx context.Context, jobID string, p Params) {
	if !jobLock.TryLock() {
		log.Warn().Str("job_id", jobID).Msg("autosearch job rejected: another job is running")
		_ = rt.Store.UpdateJob(ctx, jobID, func(j *store.AutoSearchJob) {
			j.Status = store.JobFailed
			j.Error = ErrJobRunning.Error()
			j.UpdatedAt = time.Now()
		})
		return
	}
	defer jobLock.Unlock()

	_ = rt.Store.UpdateJob(ctx, jobID, func(j *store.AutoSearchJob) {
		j.Status = store.JobRunning
		j.UpdatedAt = time.Now()
	})
	log.Info().Str("job_id", jobID).Int("batch", p.Batch).Msg("autosearch job started")

	err := rt.runBatch(ctx, jobID, p)

	_ = rt.Store.UpdateJob(ctx, jobID, func(j *store.AutoSearchJob) {
		if err != nil {
			j.Status = store.JobFailed
			j.Error = err.Error()
		} else {
			j.Status = store.JobDone
		}
		j.UpdatedAt = time.Now()
	})
	if err != nil {
		log.Error().Str("job_id", jobID).Err(err).Msg("autosearch job failed")
	} else {
		log.Info().Str("job_id", jobID).Msg("autosearch job done")
	}
}

func paramsToMap(p Params) map[string]interface{} {
	m := map[string]interface{}{
		"n": p.N, "k": p.K, "batch": p.Batch,
		"iterations": p.Iterations, "mode": string(p.Mode),
		"eps": p.Eps, "tri_ratio": p.TriRatio, "apl_ratio": p.APLRatio, "cl_ratio": p.ClRatio,
		"t0": p.T0, "t_end": p.TEnd,
		"do_greedy": p.DoGreedy, "do_random": p.DoRandom, "random_reps": p.RandomReps,
		"do_exact": p.DoExact, "exact_n_max": p.ExactNMax, "exact_timeout_s": p.ExactTimeoutS,
		"connected_only": p.ConnectedOnly, "max_deg_attempts": p.MaxDegAttempts,
	}
	if p.BaseSeed != nil {
		m["base_seed"] = *p.BaseSeed
	}
	return m
}
