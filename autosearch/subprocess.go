package autosearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/katalvlaran/radspec/realize"
	"github.com/katalvlaran/radspec/simplegraph"
)

// ExactWorkerSubcommand is the hidden argv[1] cmd/radspec dispatches
// to run exact realization inside an isolated child process. It is
// exported so cmd/radspec can reference the same constant without a
// back-import of autosearch into the CLI's flag-parsing path.
const ExactWorkerSubcommand = "__exact_worker__"

type exactWorkerRequest struct {
	Degrees  []int `json:"degrees"`
	MaxSteps int   `json:"max_steps"`
}

type exactWorkerResponse struct {
	OK    bool    `json:"ok"`
	Edges [][2]int `json:"edges,omitempty"`
	Error string  `json:"error,omitempty"`
}

// RunExactWorker is the child-process entry point: cmd/radspec's main
// calls this when invoked with ExactWorkerSubcommand, reading a
// request from stdin and writing a response to stdout. It never talks
// to the store, the lock, or anything else stateful — it is a pure
// function over its stdin payload, which is what makes process
// isolation (rather than a goroutine) sufficient to terminate it
// forcibly from the parent.
func RunExactWorker(stdin []byte) []byte {
	var req exactWorkerRequest
	resp := exactWorkerResponse{}
	if err := json.Unmarshal(stdin, &req); err != nil {
		resp.Error = fmt.Sprintf("bad request: %v", err)
		b, _ := json.Marshal(resp)
		return b
	}

	edges, err := realize.ExactBacktracking(simplegraph.DegreeSequence(req.Degrees), req.MaxSteps)
	if err != nil {
		resp.Error = err.Error()
		b, _ := json.Marshal(resp)
		return b
	}

	resp.OK = true
	resp.Edges = make([][2]int, len(edges))
	for i, e := range edges {
		resp.Edges[i] = [2]int{e.U, e.V}
	}
	b, _ := json.Marshal(resp)
	return b
}

// ErrExactWorkerFailed wraps any non-timeout failure of the isolated
// exact-realization subprocess (bad exit, malformed response).
var ErrExactWorkerFailed = errors.New("autosearch: exact realization subprocess failed")

// RunExactIsolated runs exact realization for degrees in a separate
// OS process (C14's exact-realization guard), bounded by timeout.
// completed=false, err=nil means the subprocess did not finish within
// timeout and was terminated — §7 models this as a null result, not a
// thrown error. completed=false with a non-nil err means the
// subprocess ran but failed for another reason (missing binary,
// malformed output); the caller should treat that as an Internal
// error, not a timeout.
func RunExactIsolated(ctx context.Context, degrees simplegraph.DegreeSequence, maxSteps int, timeout time.Duration) (edges simplegraph.EdgeSet, completed bool, err error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := exactWorkerRequest{Degrees: []int(degrees), MaxSteps: maxSteps}
	payload, _ := json.Marshal(req)

	exe, lookErr := os.Executable()
	if lookErr != nil {
		exe = os.Args[0]
	}
	cmd := exec.CommandContext(cctx, exe, ExactWorkerSubcommand)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	runErr := cmd.Run()

	if cctx.Err() == context.DeadlineExceeded {
		return nil, false, nil
	}
	if runErr != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrExactWorkerFailed, runErr)
	}

	var resp exactWorkerResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, false, fmt.Errorf("%w: malformed response: %v", ErrExactWorkerFailed, err)
	}
	if !resp.OK {
		return nil, false, fmt.Errorf("%w: %s", ErrExactWorkerFailed, resp.Error)
	}

	out := make(simplegraph.EdgeSet, len(resp.Edges))
	for i, pair := range resp.Edges {
		out[i] = simplegraph.Edge{U: pair[0], V: pair[1]}
	}
	return out, true, nil
}
