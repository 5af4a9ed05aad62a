package polyhedron

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrTooFewVertices      = errors.New("polyhedron needs at least 4 vertices")
	ErrNoFaces             = errors.New("polyhedron has no faces")
	ErrFaceDegree          = errors.New("face has fewer than 3 vertices")
	ErrIndexOutOfRange     = errors.New("face index out of range")
	ErrRepeatedIndex       = errors.New("face repeats a vertex")
	ErrOpenSurface         = errors.New("edge not shared by exactly two faces")
	ErrInconsistentWinding = errors.New("faces do not share one winding")
)

type edge [2]int

// Validate checks the preconditions under which the evaluator produces true
// barycentric coordinates. It reports every problem found, joined with
// errors.Join, so callers can test each with errors.Is.
//
// Validate is opt-in: evaluators never call it.
func (p *Polyhedron) Validate() error {
	var errs []error

	if len(p.Vertices) < 4 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(p.Vertices)))
	}
	if len(p.Faces) == 0 {
		errs = append(errs, ErrNoFaces)
	}

	directed := make(map[edge]int)
	for fi, face := range p.Faces {
		if len(face) < 3 {
			errs = append(errs, fmt.Errorf("%w: face %d has %d", ErrFaceDegree, fi, len(face)))
			continue
		}
		if err := p.checkFaceIndices(fi, face); err != nil {
			errs = append(errs, err)
			continue
		}
		for k := range face {
			directed[edge{face[k], face[(k+1)%len(face)]}]++
		}
	}

	// Sort edges so reported errors are deterministic
	edges := make([]edge, 0, len(directed))
	for e := range directed {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	var open, inconsistent []edge
	for _, e := range edges {
		count := directed[e]
		if count > 1 {
			inconsistent = append(inconsistent, e)
		}
		// Count each undirected edge once, from its smaller endpoint
		if e[0] < e[1] || directed[edge{e[1], e[0]}] == 0 {
			if count+directed[edge{e[1], e[0]}] != 2 {
				open = append(open, e)
			}
		}
	}

	if len(open) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d edges, first %v", ErrOpenSurface, len(open), open[0]))
	}
	if len(inconsistent) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d directed edges used twice, first %v",
			ErrInconsistentWinding, len(inconsistent), inconsistent[0]))
	}

	return errors.Join(errs...)
}

func (p *Polyhedron) checkFaceIndices(fi int, face []int) error {
	for k, i := range face {
		if !p.validIndex(i) {
			return fmt.Errorf("%w: face %d index %d = %d (vertices: %d)", ErrIndexOutOfRange, fi, k, i, len(p.Vertices))
		}
		if slices.Contains(face[:k], i) {
			return fmt.Errorf("%w: face %d vertex %d", ErrRepeatedIndex, fi, i)
		}
	}
	return nil
}
