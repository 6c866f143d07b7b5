package autosearch

import "errors"

// ErrJobRunning is the sentinel behind §7's ConcurrencyConflict: a
// second job attempted to start while one is already running.
var ErrJobRunning = errors.New("autosearch: another job is running")

const (
	MethodStart    = "Start"
	MethodRunBatch = "runBatch"
)
