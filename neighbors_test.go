package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMMax(t *testing.T) {
	require.Equal(t, 16, mMax(8, 0))
	require.Equal(t, 8, mMax(8, 1))
	require.Equal(t, 8, mMax(8, 5))
}

func TestSelectNeighborsCaps(t *testing.T) {
	cands := []candidate{{id: 1, dist: 1}, {id: 2, dist: 2}, {id: 3, dist: 3}}
	require.Len(t, selectNeighbors(cands, 2), 2)
	require.Len(t, selectNeighbors(cands, 10), 3)
}

func TestAddEdgeIsBidirectional(t *testing.T) {
	idx, err := New[int](2, 10, 1.0, EuclideanDistance)
	require.NoError(t, err)
	idx.nodes = []*graphNode[int]{
		newGraphNode(0, NewPoint(Vector{0}, 0), 0),
		newGraphNode(1, NewPoint(Vector{1}, 1), 0),
	}

	idx.addEdge(0, 1, 0)

	_, ok := idx.nodes[0].neighbors[0][1]
	require.True(t, ok)
	_, ok = idx.nodes[1].neighbors[0][0]
	require.True(t, ok)
}

func TestAddEdgePrunesOverDegreeAndStaysReciprocal(t *testing.T) {
	idx, err := New[int](2, 10, 1.0, EuclideanDistance) // M=2, M_max(0)=4
	require.NoError(t, err)

	// Hub at 0; spokes at increasing distance 1..5.
	idx.nodes = append(idx.nodes, newGraphNode(0, NewPoint(Vector{0}, 0), 0))
	for i := 1; i <= 5; i++ {
		idx.nodes = append(idx.nodes, newGraphNode(i, NewPoint(Vector{float32(i)}, i), 0))
	}
	for i := 1; i <= 5; i++ {
		idx.addEdge(0, i, 0)
	}

	hub := idx.nodes[0]
	require.LessOrEqual(t, hub.degree(0), mMax(2, 0))

	// Every remaining edge must still be reciprocal, and every dropped
	// spoke must have had its back-edge to the hub removed.
	for i := 1; i <= 5; i++ {
		_, hubHasSpoke := hub.neighbors[0][i]
		_, spokeHasHub := idx.nodes[i].neighbors[0][0]
		require.Equal(t, hubHasSpoke, spokeHasHub)
	}

	// The farthest spokes are the ones pruned first.
	_, keptClosest := hub.neighbors[0][1]
	require.True(t, keptClosest)
}
