package simplegraph

import "sort"

// DegreeSequence is a position-indexed sequence of vertex degrees:
// entry i is the degree of vertex i. Order carries identity — two
// sequences with the same multiset of values but different order
// describe different labeled problems.
type DegreeSequence []int

// Clone returns an independent copy of d.
func (d DegreeSequence) Clone() DegreeSequence {
	out := make(DegreeSequence, len(d))
	copy(out, d)
	return out
}

// Sum returns the sum of all degrees.
func (d DegreeSequence) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// Edge is an unordered pair of distinct vertices, stored with U < V.
type Edge struct {
	U, V int
}

// EdgeSet is a canonical simple-graph edge list: no loops, no
// duplicates, every edge oriented U<V, sorted ascending by (U,V).
type EdgeSet []Edge

// Clone returns an independent copy of e.
func (e EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(e))
	copy(out, e)
	return out
}

// Len implements sort.Interface.
func (e EdgeSet) Len() int { return len(e) }

// Less implements sort.Interface: lexicographic on (U, V).
func (e EdgeSet) Less(i, j int) bool {
	if e[i].U != e[j].U {
		return e[i].U < e[j].U
	}
	return e[i].V < e[j].V
}

// Swap implements sort.Interface.
func (e EdgeSet) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// DegreesOf computes the realized degree sequence of e over n
// vertices. Used by tests and callers that want to confirm a realizer
// produced the degree sequence it was asked for.
func (e EdgeSet) DegreesOf(n int) DegreeSequence {
	out := make(DegreeSequence, n)
	for _, ed := range e {
		out[ed.U]++
		out[ed.V]++
	}
	return out
}

// sortedCopy returns e sorted into canonical (U,V) order without
// mutating the receiver.
func (e EdgeSet) sortedCopy() EdgeSet {
	out := e.Clone()
	sort.Sort(out)
	return out
}
