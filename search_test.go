package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildLine wires n nodes at layer 0 into a simple path graph 0-1-2-...-n-1,
// each holding the 1-D point [i], so searchLayer's expansion order is easy
// to reason about.
func buildLine(t *testing.T, n int) *Index[int] {
	t.Helper()
	idx, err := New[int](4, 10, 1.0, EuclideanDistance, WithSeed[int](1))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		idx.nodes = append(idx.nodes, newGraphNode(i, NewPoint(Vector{float32(i)}, i), 0))
	}
	for i := 0; i < n-1; i++ {
		idx.addEdge(i, i+1, 0)
	}
	idx.entry = 0
	idx.lMax = 0
	idx.dim = 1
	return idx
}

func TestSearchLayerReturnsEntryWhenNoNeighbors(t *testing.T) {
	idx, err := New[int](4, 10, 1.0, EuclideanDistance)
	require.NoError(t, err)
	idx.nodes = append(idx.nodes, newGraphNode(0, NewPoint(Vector{0}, 0), 0))
	idx.entry = 0
	idx.lMax = 0
	idx.dim = 1

	results := idx.searchLayer(Vector{5}, 0, 0, 3)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].id)
}

func TestSearchLayerFindsClosestAlongPath(t *testing.T) {
	idx := buildLine(t, 10)

	results := idx.searchLayer(Vector{7}, 0, 0, 3)
	require.Len(t, results, 3)
	require.Equal(t, 7, results[0].id)
	require.ElementsMatch(t, []int{6, 7, 8}, []int{results[0].id, results[1].id, results[2].id})
}

func TestSearchLayerResultsAscendingByDistance(t *testing.T) {
	idx := buildLine(t, 20)

	results := idx.searchLayer(Vector{3}, 0, 0, 5)
	for i := 1; i < len(results); i++ {
		require.LessOrEqual(t, results[i-1].dist, results[i].dist)
	}
}

func TestSearchLayerDeterministicTieBreak(t *testing.T) {
	idx, err := New[int](4, 10, 1.0, EuclideanDistance)
	require.NoError(t, err)
	// Two points equidistant from the query at x=0: -1 and 1.
	idx.nodes = append(idx.nodes, newGraphNode(0, NewPoint(Vector{0}, 0), 0))
	idx.nodes = append(idx.nodes, newGraphNode(1, NewPoint(Vector{-1}, 1), 0))
	idx.nodes = append(idx.nodes, newGraphNode(2, NewPoint(Vector{1}, 2), 0))
	idx.addEdge(0, 1, 0)
	idx.addEdge(0, 2, 0)
	idx.entry = 0
	idx.lMax = 0
	idx.dim = 1

	first := idx.searchLayer(Vector{0}, 0, 0, 3)
	second := idx.searchLayer(Vector{0}, 0, 0, 3)
	require.Equal(t, first, second)
	// Tie broken by ascending node id: node 1 before node 2.
	require.Equal(t, 1, first[1].id)
	require.Equal(t, 2, first[2].id)
}
