package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radspec/graph6"
	"github.com/katalvlaran/radspec/simplegraph"
)

func TestEncodeDecode_RoundTrip_K4(t *testing.T) {
	t.Parallel()

	edges := simplegraph.EdgeSet{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	}
	s, err := graph6.Encode(4, edges)
	require.NoError(t, err)

	n, got, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.ElementsMatch(t, edges, got)
}

func TestEncodeDecode_RoundTrip_P5(t *testing.T) {
	t.Parallel()

	// Path on 5 vertices: 0-1-2-3-4.
	edges := simplegraph.EdgeSet{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}
	s, err := graph6.Encode(5, edges)
	require.NoError(t, err)

	n, got, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.ElementsMatch(t, edges, got)
}

func TestEncodeDecode_RoundTrip_C5(t *testing.T) {
	t.Parallel()

	edges := simplegraph.EdgeSet{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 0, V: 4}}
	s, err := graph6.Encode(5, edges)
	require.NoError(t, err)

	n, got, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.ElementsMatch(t, edges, got)
}

func TestEncodeDecode_RoundTrip_EmptyGraph(t *testing.T) {
	t.Parallel()

	s, err := graph6.Encode(3, simplegraph.EdgeSet{})
	require.NoError(t, err)

	n, got, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, got)
}

func TestEncode_SizePrefixBoundary_62(t *testing.T) {
	t.Parallel()

	// n=62 is the largest value using the single-byte size prefix.
	s, err := graph6.Encode(62, simplegraph.EdgeSet{})
	require.NoError(t, err)
	assert.Equal(t, byte(62+63), s[0])
	assert.NotEqual(t, byte('~'), s[0])
}

func TestEncode_SizePrefixBoundary_63(t *testing.T) {
	t.Parallel()

	// n=63 crosses into the multi-byte '~' + 3-byte prefix form.
	s, err := graph6.Encode(63, simplegraph.EdgeSet{})
	require.NoError(t, err)
	assert.Equal(t, byte('~'), s[0])

	n, _, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 63, n)
}

func TestEncodeDecode_RoundTrip_FullSizeRange(t *testing.T) {
	// Covers every n from 0 to 258047 (the single-byte and '~'+3-byte
	// size-prefix tiers in full), each with an empty edge set, so the
	// boundary between tiers and every size within them round-trips.
	for n := 0; n <= 258047; n++ {
		s, err := graph6.Encode(n, simplegraph.EdgeSet{})
		require.NoErrorf(t, err, "n=%d", n)

		gotN, gotEdges, err := graph6.Decode(s)
		require.NoErrorf(t, err, "n=%d", n)
		assert.Equalf(t, n, gotN, "n=%d", n)
		assert.Emptyf(t, gotEdges, "n=%d", n)
	}
}

func TestEncode_NegativeN(t *testing.T) {
	t.Parallel()

	_, err := graph6.Encode(-1, nil)
	assert.ErrorIs(t, err, graph6.ErrVertexCountOutOfRange)
}

func TestDecode_EmptyInput(t *testing.T) {
	t.Parallel()

	_, _, err := graph6.Decode("")
	assert.ErrorIs(t, err, graph6.ErrMalformed)
}

func TestDecode_TruncatedMultiByteSizePrefix(t *testing.T) {
	t.Parallel()

	_, _, err := graph6.Decode("~~")
	assert.ErrorIs(t, err, graph6.ErrMalformed)
}

func TestBase64_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := graph6.Encode(4, simplegraph.EdgeSet{{U: 0, V: 1}})
	require.NoError(t, err)

	encoded := graph6.ToBase64(s)
	decoded, err := graph6.FromBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestBase64_FromBase64_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := graph6.FromBase64("not valid base64!!")
	assert.Error(t, err)
}
