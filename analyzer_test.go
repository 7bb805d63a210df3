package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzerOnEmptyIndex(t *testing.T) {
	idx, err := New[int](4, 10, 1.0, EuclideanDistance)
	require.NoError(t, err)

	a := &Analyzer[int]{Index: idx}
	require.Equal(t, 0, a.Height())
	require.Nil(t, a.Topography())
	require.Nil(t, a.Connectivity())
}

func TestAnalyzerTopographyIsMonotonicallyDecreasing(t *testing.T) {
	idx, err := New[int](4, 50, 0.5, EuclideanDistance, WithSeed[int](4))
	require.NoError(t, err)
	require.NoError(t, idx.InsertBatch(randomPoints(300, 8, 4)))

	a := &Analyzer[int]{Index: idx}
	topo := a.Topography()
	require.Equal(t, a.Height(), len(topo))
	require.Equal(t, idx.Len(), topo[0], "layer 0 holds every node")

	for l := 1; l < len(topo); l++ {
		require.LessOrEqual(t, topo[l], topo[l-1])
	}
}

func TestAnalyzerConnectivityWithinDegreeCap(t *testing.T) {
	idx, err := New[int](6, 50, 0.3, EuclideanDistance, WithSeed[int](6))
	require.NoError(t, err)
	require.NoError(t, idx.InsertBatch(randomPoints(200, 8, 6)))

	a := &Analyzer[int]{Index: idx}
	conn := a.Connectivity()
	for l, avg := range conn {
		require.LessOrEqual(t, avg, float64(mMax(idx.m, l)))
	}
}
