// Package radspec is an extremal-spectral-radius graph search engine.
//
// Given a target vertex count and edge count, it samples graphical
// degree sequences, realizes them into concrete simple graphs by
// several strategies (deterministic greedy Havel-Hakimi, randomized
// greedy, exact backtracking), scores them by spectral radius and a
// handful of structural invariants, and searches the degree-preserving
// rewiring neighborhood by hill climbing and simulated annealing to
// push that score toward a minimum or maximum. An autosearch
// orchestrator runs this as a background batch job, and a discovery
// detector flags runs whose structural profile looks anomalous against
// a running baseline.
//
// The repository is organized as one package per concern:
//
//	simplegraph/ — vertex-indexed edge-set value types, adjacency, normalization
//	degseq/      — degree sequences: graphicality, generation, fingerprinting
//	realize/     — degree sequence -> edge set realizers
//	graph6/      — graph6 ASCII encoding and a base64 transport wrapper
//	canon/       — isomorphism-canonical graph6 via an external labelg process
//	invariant/   — spectral radius, triangles, clustering, connectivity, APL
//	rewire/      — degree-preserving 2-switch moves and connectivity repair
//	anneal/      — hill climbing and simulated annealing over rewire moves
//	store/       — the Run/Discovery/AutoSearchJob domain model and storage
//	discovery/   — baseline statistics and anomaly classification
//	autosearch/  — the batch orchestration loop and background job runtime
//	request/     — typed command payloads and the request-adapter contract
//	matrix/      — dense matrix representation and numerical routines
//
//	go get github.com/katalvlaran/radspec
package radspec
