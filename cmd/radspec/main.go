// Command radspec is the CLI entry point for the extremal-spectral-
// radius search engine. Besides a small "autosearch" demonstration
// subcommand, its main job is to host the hidden exact-realization
// worker subcommand that package autosearch re-execs itself into for
// process-isolated, timeout-guarded exact realization (C14).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/radspec/autosearch"
	"github.com/katalvlaran/radspec/store"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if len(os.Args) > 1 && os.Args[1] == autosearch.ExactWorkerSubcommand {
		runExactWorker()
		return
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: radspec autosearch [flags]")
		os.Exit(2)
	}

	switch os.Args[1] {
	case "autosearch":
		runAutosearch(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(2)
	}
}

// runExactWorker is invoked only as a re-exec'd child process; it
// reads a JSON request from stdin and writes a JSON response to
// stdout, with no access to the store, the job lock, or logging — a
// pure function over its input, by design (see autosearch.RunExactWorker).
func runExactWorker() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(autosearch.RunExactWorker(input))
}

// runAutosearch starts one autosearch job against an in-memory store
// and blocks until it finishes, printing status transitions. It is a
// demonstration entry point, not the production job-submission path —
// a real deployment drives autosearch.Runtime from its own HTTP
// surface instead.
func runAutosearch(args []string) {
	fs := flag.NewFlagSet("autosearch", flag.ExitOnError)
	n := fs.Int("n", 30, "vertex count")
	k := fs.Int("k", 120, "edge count")
	batch := fs.Int("batch", 10, "batch iterations")
	mode := fs.String("mode", "min", "min or max")
	seed := fs.Int64("seed", 1, "base seed")
	_ = fs.Parse(args)

	st := store.NewMemStore()
	rt := autosearch.NewRuntime(st)

	params := autosearch.DefaultParams(
		autosearch.WithN(*n), autosearch.WithK(*k), autosearch.WithBatch(*batch),
		autosearch.WithMode(store.Mode(*mode)), autosearch.WithBaseSeed(*seed),
	)

	ctx := context.Background()
	jobID, err := rt.Start(ctx, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}

	for {
		job, err := rt.Status(ctx, jobID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "status: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("job %s: %s (%d/%d) %s\n", jobID, job.Status, job.ProgressDone, job.ProgressTotal, job.LastMessage)
		if job.Status == store.JobDone || job.Status == store.JobFailed {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
}
