package hnsw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelSamplerNonNegative(t *testing.T) {
	s := newLevelSampler(rand.New(rand.NewSource(1)), defaultLevelMult(16))
	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, s.next(), 0)
	}
}

func TestLevelSamplerDeterministicWithSeed(t *testing.T) {
	a := newLevelSampler(rand.New(rand.NewSource(42)), 1.0)
	b := newLevelSampler(rand.New(rand.NewSource(42)), 1.0)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.next(), b.next())
	}
}

func TestDefaultLevelMult(t *testing.T) {
	require.InDelta(t, 1/2.0794415, defaultLevelMult(8), 1e-6)
}
