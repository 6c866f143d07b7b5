package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/simplegraph"
)

func TestIsConnected_K4(t *testing.T) {
	t.Parallel()

	n, edges := k4()
	adj := simplegraph.BuildAdjacency(n, edges)
	assert.True(t, invariant.IsConnected(adj))
}

func TestIsConnected_DisjointPair(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(4, simplegraph.EdgeSet{{U: 0, V: 1}, {U: 2, V: 3}})
	assert.False(t, invariant.IsConnected(adj))
}

func TestIsConnected_SingleVertex(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(1, nil)
	assert.True(t, invariant.IsConnected(adj))
}

func TestComponents_DisjointPair(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(4, simplegraph.EdgeSet{{U: 0, V: 1}, {U: 2, V: 3}})
	comps := invariant.Components(adj)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	assert.ElementsMatch(t, []int{2, 2}, sizes)
}

func TestComponents_FullyConnectedIsOneComponent(t *testing.T) {
	t.Parallel()

	n, edges := k4()
	adj := simplegraph.BuildAdjacency(n, edges)
	comps := invariant.Components(adj)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4)
}

func TestAveragePathLength_C5(t *testing.T) {
	t.Parallel()

	n, edges := c5()
	adj := simplegraph.BuildAdjacency(n, edges)
	apl := invariant.AveragePathLength(adj, 1, 0)
	require.NotNil(t, apl)
	// In C5 every vertex has one neighbor at distance 1 (x2) and two at distance 2 (x2): avg = (1+1+2+2)/4 = 1.5.
	assert.InDelta(t, 1.5, *apl, 1e-9)
}

func TestAveragePathLength_DisconnectedIsNil(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(4, simplegraph.EdgeSet{{U: 0, V: 1}, {U: 2, V: 3}})
	assert.Nil(t, invariant.AveragePathLength(adj, 1, 0))
}

func TestAveragePathLength_SingleVertexIsZero(t *testing.T) {
	t.Parallel()

	adj := simplegraph.BuildAdjacency(1, nil)
	apl := invariant.AveragePathLength(adj, 1, 0)
	require.NotNil(t, apl)
	assert.Equal(t, 0.0, *apl)
}
