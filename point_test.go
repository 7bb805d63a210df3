package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointAccessors(t *testing.T) {
	p := NewPoint(Vector{1, 2, 3}, "label")
	require.Equal(t, Vector{1, 2, 3}, p.Coords())
	require.Equal(t, "label", p.Label())
}
