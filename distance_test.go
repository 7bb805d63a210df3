package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEuclideanDistance(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	require.InDelta(t, 5.196152, EuclideanDistance(a, b), 1e-5)
}

func TestEuclideanDistanceSelfIsZero(t *testing.T) {
	a := Vector{1, -2, 3.5}
	require.Equal(t, float32(0), EuclideanDistance(a, a))
}

func TestEuclideanDistanceSymmetric(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{-4, 0, 2}
	require.Equal(t, EuclideanDistance(a, b), EuclideanDistance(b, a))
}
