// Package invariant computes the graph metrics the search loop scores
// candidates by (C7): spectral radius of the adjacency matrix,
// triangle count, local clustering coefficient, BFS connectivity, and
// sampled average path length.
//
// Spectral radius is computed via this module's own matrix/ops Jacobi
// eigensolver (adapted from the corpus's dense real-symmetric
// eigendecomposition) rather than any external numerics dependency;
// every other invariant here is a direct BFS/set-intersection
// computation over the adjacency view in package simplegraph.
package invariant
