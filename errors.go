package hnsw

import "fmt"

// Sentinel error kinds. Use errors.Is against these to distinguish failure
// modes at the API boundary; the index state is never partially mutated
// when one of these is returned.
var (
	// ErrInvalidConfig is returned when a tunable (M, ef_construction,
	// level_mult, ef_search, k) is non-positive.
	ErrInvalidConfig = fmt.Errorf("hnsw: invalid config")

	// ErrDimensionMismatch is returned when a point or query's coordinate
	// length differs from the dimension established by the first insert.
	ErrDimensionMismatch = fmt.Errorf("hnsw: dimension mismatch")
)

func invalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func dimensionMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDimensionMismatch, fmt.Sprintf(format, args...))
}
