// Package rewire implements the degree-preserving 2-switch move (C8)
// and the connectivity enforcer built on top of it (C10). Every
// function here returns a new simplegraph.EdgeSet rather than
// mutating its input, matching the value-type discipline of package
// simplegraph.
package rewire
