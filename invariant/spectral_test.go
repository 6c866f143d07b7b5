package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radspec/invariant"
	"github.com/katalvlaran/radspec/simplegraph"
)

func k4() (int, simplegraph.EdgeSet) {
	return 4, simplegraph.EdgeSet{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	}
}

func c5() (int, simplegraph.EdgeSet) {
	return 5, simplegraph.EdgeSet{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 0, V: 4}}
}

func TestSpectralRadius_K4(t *testing.T) {
	t.Parallel()

	n, edges := k4()
	r, err := invariant.SpectralRadius(n, edges)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-6)
}

func TestSpectralRadius_C5(t *testing.T) {
	t.Parallel()

	n, edges := c5()
	r, err := invariant.SpectralRadius(n, edges)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, 1e-6)
}

func TestSpectralRadius_EmptyGraph(t *testing.T) {
	t.Parallel()

	r, err := invariant.SpectralRadius(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestSpectralRadius_RelabelingInvariant(t *testing.T) {
	t.Parallel()

	n, edges := k4()
	r1, err := invariant.SpectralRadius(n, edges)
	require.NoError(t, err)

	// Relabel by reversing vertex indices: (u,v) -> (n-1-u, n-1-v), re-oriented.
	relabeled := make(simplegraph.EdgeSet, len(edges))
	for i, e := range edges {
		u, v := n-1-e.U, n-1-e.V
		if u > v {
			u, v = v, u
		}
		relabeled[i] = simplegraph.Edge{U: u, V: v}
	}
	r2, err := invariant.SpectralRadius(n, relabeled)
	require.NoError(t, err)
	assert.InDelta(t, r1, r2, 1e-6)
}
