// Package realize turns a degree sequence into a simple-graph edge
// set realizing it (C3), via three algorithms: deterministic greedy
// Havel–Hakimi realization, a randomized-greedy variant for diverse
// samples of the same sequence, and an exact backtracking search
// bounded by a total step budget.
//
// All three return simplegraph.EdgeSet values already in canonical
// form; callers do not need to pass the result through
// simplegraph.NormalizeEdges.
package realize
