package hnsw

import "cmp"

// Vector is a fixed-dimension real-valued coordinate sequence.
type Vector = []float32

// Point is an immutable pair of a coordinate vector and an opaque,
// caller-supplied label. The index never interprets the label; it is
// returned verbatim from Search and IterNodes.
type Point[K cmp.Ordered] struct {
	coords Vector
	label  K
}

// NewPoint builds a Point. coords is not copied; callers should treat it as
// owned by the point once passed in.
func NewPoint[K cmp.Ordered](coords Vector, label K) Point[K] {
	return Point[K]{coords: coords, label: label}
}

// Coords returns the point's coordinate vector.
func (p Point[K]) Coords() Vector { return p.coords }

// Label returns the point's opaque identifier.
func (p Point[K]) Label() K { return p.label }
