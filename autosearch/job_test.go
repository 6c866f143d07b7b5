package autosearch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radspec/store"
)

// This file lives in package autosearch (not autosearch_test) so it
// can hold the process-global jobLock for the duration of a
// deterministic concurrency-conflict assertion.

func TestWorker_RejectsWhenLockHeld(t *testing.T) {
	jobLock.Lock()
	defer jobLock.Unlock()

	st := store.NewMemStore()
	rt := NewRuntime(st)
	ctx := context.Background()

	job := &store.AutoSearchJob{Status: store.JobQueued}
	require.NoError(t, st.InsertJob(ctx, job))

	rt.worker(ctx, job.ID, DefaultParams(WithN(4), WithK(3), WithBatch(1)))

	got, err := st.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, store.JobFailed, got.Status)
	assert.Equal(t, ErrJobRunning.Error(), got.Error)
}

func TestStart_RunsBatchToCompletion(t *testing.T) {
	st := store.NewMemStore()
	rt := NewRuntime(st)
	ctx := context.Background()

	p := DefaultParams(
		WithN(5), WithK(4), WithBatch(1),
		WithExact(false, 20, 1.0),
	)
	p.Iterations = 20
	p.RandomReps = 1

	jobID, err := rt.Start(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	deadline := time.Now().Add(5 * time.Second)
	var job *store.AutoSearchJob
	for time.Now().Before(deadline) {
		job, err = rt.Status(ctx, jobID)
		require.NoError(t, err)
		if job.Status == store.JobDone || job.Status == store.JobFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.NotNil(t, job)
	assert.Equal(t, store.JobDone, job.Status)
	assert.Equal(t, 1, job.ProgressDone)

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, runs, "at least one Run should have been persisted by the batch")
}
