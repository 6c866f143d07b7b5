// Package request is the thin request-adapter contract (§6): typed
// payloads for each command the external HTTP surface would expose,
// and an Adapter with one method per command that maps it to the
// engine calls that satisfy it. Package request has no transport of its own — no
// HTTP handlers, no serialization format opinion — it is the
// boundary the (out-of-scope) HTTP layer would sit behind.
package request
