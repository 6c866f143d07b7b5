// Package discovery implements the best-so-far comparison and
// structural-anomaly detector (C13): given a fingerprint and mode, it
// finds the current best Run, compares it against the previous
// Discovery for that (fingerprint, mode), and — transactionally —
// appends a new Discovery when a record improves or when enough
// anomaly flags accumulate even without an improvement.
package discovery
