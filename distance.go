package hnsw

import "github.com/chewxy/math32"

// DistanceFunc computes a non-negative, symmetric distance between two
// equal-length coordinate vectors, with dist(a, a) == 0. Dimension
// mismatches are a programmer error and are not checked here; the index
// validates dimensions once at Insert/Search time instead of on every
// comparison.
type DistanceFunc func(a, b Vector) float32

// EuclideanDistance is the reference distance function: the square root of
// the summed squared coordinate differences, computed in full for every
// pair (no early termination), so that repeated comparisons against the
// same query are consistent across call sites.
func EuclideanDistance(a, b Vector) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}
