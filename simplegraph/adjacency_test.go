package simplegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/radspec/simplegraph"
)

// k4Edges returns the complete graph on 4 vertices.
func k4Edges() simplegraph.EdgeSet {
	return simplegraph.EdgeSet{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	}
}

func TestBuildAdjacency_K4(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(4, k4Edges())
	for v := 0; v < 4; v++ {
		assert.Equal(t, 3, adj.Degree(v))
		for w := 0; w < 4; w++ {
			if w == v {
				continue
			}
			assert.True(t, adj.HasEdge(v, w), "expected edge (%d,%d)", v, w)
		}
	}
}

func TestBuildAdjacency_NeighborsSortedAscending(t *testing.T) {
	t.Parallel()

	edges := simplegraph.EdgeSet{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 3}, {U: 2, V: 3}}
	adj := simplegraph.BuildAdjacency(4, edges)

	assert.Equal(t, []int{0, 1, 2}, adj.Neighbors[3])
	assert.Equal(t, []int{0, 3}, adj.Neighbors[1])
}

func TestBuildAdjacency_HasEdgeOutOfRange(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(2, simplegraph.EdgeSet{{U: 0, V: 1}})
	assert.False(t, adj.HasEdge(-1, 0))
	assert.False(t, adj.HasEdge(5, 0))
}

func TestEdgeSet_DegreesOf(t *testing.T) {
	t.Parallel()

	d := k4Edges().DegreesOf(4)
	assert.Equal(t, simplegraph.DegreeSequence{3, 3, 3, 3}, d)
}

func TestDegreeSequence_CloneAndSum(t *testing.T) {
	t.Parallel()

	d := simplegraph.DegreeSequence{3, 3, 3, 3}
	clone := d.Clone()
	clone[0] = 99
	assert.Equal(t, 3, d[0], "Clone must not alias the original backing array")
	assert.Equal(t, 12, d.Sum())
}
