// Package matrix is a dense-matrix numerical toolkit: a Dense type plus
// linear-algebra, element-wise, and statistics kernels (see matrix/ops
// for decompositions and the Jacobi eigensolver invariant reuses).
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
package matrix
