// Package graph6 implements the NAUTY graph6 ASCII encoding for
// simple undirected graphs (C5), plus a base64 transport wrapper.
//
// Bit order: this package emits and reads the upper triangle in
// column-major order (for j=1..n-1, for i=0..j-1, bit = adj[i][j]),
// matching the NAUTY specification so that round-tripped graph6
// strings are directly interoperable with external tools such as
// labelg (package canon). This is a deliberate choice: the reference
// source this package's behavior was distilled from instead emits
// row-major (i, j>i) order, which canonicalizes identically under
// labelg (labelg reads a graph, not a bit pattern) but does not
// round-trip against other NAUTY-family consumers. See the column-major
// vs row-major note in this module's design log.
package graph6
