package outline

import "fmt"

// InvalidInputError is returned when an operation receives fewer points than
// it needs.
type InvalidInputError struct {
	// The operation that rejected the input.
	Op string
	// The number of points that were passed.
	Got int
	// The minimum number of points the operation accepts.
	Min int
}

func (err *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: need at least %d points, got %d", err.Op, err.Min, err.Got)
}

// DegenerateInputError is returned when a computation needs a segment of
// non-zero length but got two coincident points. Callers should remove
// consecutive duplicates (see [Dedup]) before building hulls.
type DegenerateInputError struct {
	Op     string
	P0, P1 Point
}

func (err *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: zero-length segment from %s to %s", err.Op, err.P0, err.P1)
}
