// Package canon computes isomorphism-canonical graph6 strings by
// invoking the external `labelg` utility from the nauty package (C6).
// It is the one point in this module that shells out to another
// program; every call is wrapped in a context so callers can impose a
// timeout, matching the corpus's context.Context-based cancellation
// idiom used around other long-running operations.
package canon
