package sbc

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateQuery is matched by *DegenerateQueryError.
	ErrDegenerateQuery      = errors.New("query point coincides with a vertex")
	ErrNumericalSingularity = errors.New("coordinates are numerically singular")
	ErrEmptyPolyhedron      = errors.New("polyhedron has no vertices")
	ErrLengthMismatch       = errors.New("weights and values differ in length")
)

// DegenerateQueryError reports a query point closer to a vertex than the
// normalization can tolerate. The limit of the coordinates at that point is
// OneHot(n, Vertex).
type DegenerateQueryError struct {
	Vertex   int
	Distance float64
}

func (e *DegenerateQueryError) Error() string {
	return fmt.Sprintf("%v: vertex %d at distance %g", ErrDegenerateQuery, e.Vertex, e.Distance)
}

func (e *DegenerateQueryError) Unwrap() error {
	return ErrDegenerateQuery
}
