// Package anneal implements the two local-search metaheuristics that
// drive the extremal search (C9): hill climbing and simulated
// annealing, both over the degree-preserving 2-switch neighborhood in
// package rewire. Both report the trajectory's end state, not a
// separately-tracked best-seen candidate — simulated annealing in
// particular is not "improved" into a best-seen tracker here; its
// return value is defined as the state the trajectory ends in.
package anneal
