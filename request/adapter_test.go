package request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radspec/autosearch"
	"github.com/katalvlaran/radspec/request"
	"github.com/katalvlaran/radspec/simplegraph"
	"github.com/katalvlaran/radspec/store"
)

func TestGenerateDegrees_ReturnsGraphicalFlagAndMatchingSum(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	resp, err := a.GenerateDegrees(request.GenerateDegreesRequest{N: 10, K: 15})
	require.NoError(t, err)
	assert.Len(t, resp.Degrees, 10)
	assert.Equal(t, 30, resp.Degrees.Sum())
}

func TestRunBasic_Greedy(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	run, err := a.RunBasic(context.Background(), request.RunBasicRequest{
		Algo:    request.BasicGreedy,
		Degrees: simplegraph.DegreeSequence{3, 3, 3, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, store.AlgoGreedy, run.Algorithm)
	assert.InDelta(t, 3.0, run.SpectralRadius, 1e-6)
	assert.True(t, run.IsConnected)
}

func TestRunBasic_Random(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	seed := int64(5)
	run, err := a.RunBasic(context.Background(), request.RunBasicRequest{
		Algo: request.BasicRandom, Degrees: simplegraph.DegreeSequence{3, 3, 3, 3}, Seed: &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, store.AlgoRandom, run.Algorithm)
}

func TestRunBasic_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.RunBasic(context.Background(), request.RunBasicRequest{
		Algo: request.BasicAlgorithm("bogus"), Degrees: simplegraph.DegreeSequence{3, 3, 3, 3},
	})
	assert.ErrorIs(t, err, request.ErrUnknownAlgorithm)
}

func TestRunBasic_NonGraphicalFails(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.RunBasic(context.Background(), request.RunBasicRequest{
		Algo: request.BasicGreedy, Degrees: simplegraph.DegreeSequence{3, 3, 1},
	})
	assert.Error(t, err)
}

func TestRunMeta_HillClimb(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	run, err := a.RunMeta(context.Background(), request.RunMetaRequest{
		Algo: request.MetaHillClimb, Degrees: simplegraph.DegreeSequence{3, 3, 3, 3, 2, 2},
		Mode: "max", Iterations: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, store.AlgoHillClimb, run.Algorithm)
	require.NotNil(t, run.Iterations)
	assert.Equal(t, 100, *run.Iterations)
}

func TestRunMeta_SimulatedAnnealingDefaultSchedule(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	run, err := a.RunMeta(context.Background(), request.RunMetaRequest{
		Algo: request.MetaSimulatedAnnealing, Degrees: simplegraph.DegreeSequence{3, 3, 3, 3, 2, 2},
		Mode: "min", Iterations: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, store.AlgoSimulatedAnnealing, run.Algorithm)
	assert.Equal(t, 1.0, run.MetaParams["t0"])
	assert.Equal(t, 0.001, run.MetaParams["t_end"])
}

func TestRunMeta_InvalidIterations(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.RunMeta(context.Background(), request.RunMetaRequest{
		Algo: request.MetaHillClimb, Degrees: simplegraph.DegreeSequence{3, 3, 3, 3}, Mode: "min", Iterations: 0,
	})
	assert.ErrorIs(t, err, request.ErrValidation)
}

func TestRunMeta_InvalidMode(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.RunMeta(context.Background(), request.RunMetaRequest{
		Algo: request.MetaHillClimb, Degrees: simplegraph.DegreeSequence{3, 3, 3, 3}, Mode: "sideways", Iterations: 10,
	})
	assert.ErrorIs(t, err, request.ErrValidation)
}

func TestRunMeta_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.RunMeta(context.Background(), request.RunMetaRequest{
		Algo: request.MetaAlgorithm("bogus"), Degrees: simplegraph.DegreeSequence{3, 3, 3, 3}, Mode: "min", Iterations: 10,
	})
	assert.ErrorIs(t, err, request.ErrUnknownAlgorithm)
}

func TestBestRun_RequiresDegreesHash(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.BestRun(context.Background(), request.BestRunRequest{Mode: "max"})
	assert.ErrorIs(t, err, request.ErrValidation)
}

func TestBestRun_DelegatesToStore(t *testing.T) {
	t.Parallel()

	st := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, st.InsertRun(ctx, &store.Run{Fingerprint: "fp", ObjectiveValue: 3.0}))

	a := request.NewAdapter(st)
	fp := "fp"
	run, err := a.BestRun(ctx, request.BestRunRequest{Mode: "max", DegreesHash: &fp})
	require.NoError(t, err)
	assert.Equal(t, 3.0, run.ObjectiveValue)
}

func TestListRuns_DelegatesToStore(t *testing.T) {
	t.Parallel()

	st := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, st.InsertRun(ctx, &store.Run{Fingerprint: "fp"}))

	a := request.NewAdapter(st)
	runs, err := a.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListDiscoveries_DelegatesToStore(t *testing.T) {
	t.Parallel()

	st := store.NewMemStore()
	a := request.NewAdapter(st)
	discoveries, err := a.ListDiscoveries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, discoveries)
}

func TestAutoSearchStartAndStatus(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	ctx := context.Background()

	p := autosearch.DefaultParams(
		autosearch.WithN(4), autosearch.WithK(3), autosearch.WithBatch(1),
		autosearch.WithExact(false, 20, 1.0),
	)
	resp, err := a.AutoSearchStart(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, resp.JobID)
	assert.Equal(t, string(store.JobQueued), resp.Status)

	statusResp, err := a.AutoSearchStatus(ctx, request.AutoSearchStatusRequest{JobID: resp.JobID})
	require.NoError(t, err)
	assert.NotEmpty(t, statusResp.Status)
}

func TestAutoSearchStatus_UnknownJob(t *testing.T) {
	t.Parallel()

	a := request.NewAdapter(store.NewMemStore())
	_, err := a.AutoSearchStatus(context.Background(), request.AutoSearchStatusRequest{JobID: "nonexistent"})
	assert.Error(t, err)
}
