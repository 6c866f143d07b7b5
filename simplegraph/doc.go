// Package simplegraph defines the shared value types for simple,
// undirected, unweighted graphs used throughout radspec: degree
// sequences, edge sets in canonical form, and the adjacency view built
// from them.
//
// Every type here is a value type: a DegreeSequence or EdgeSet is a
// copy of a slice, never an aliased mutable handle shared across
// components. Callers that need to mutate a graph produce a new
// EdgeSet rather than editing one in place, matching how Runs in the
// store hold immutable snapshots (see package store).
package simplegraph
