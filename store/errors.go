package store

import "errors"

// ErrNotFound is returned by any lookup that finds no matching
// record.
var ErrNotFound = errors.New("store: not found")

// ErrConcurrencyConflict names the §7 ConcurrencyConflict category. No
// function in this module returns it: a second job that starts while
// one is running is marked failed with autosearch.ErrJobRunning.
var ErrConcurrencyConflict = errors.New("store: concurrency conflict")
