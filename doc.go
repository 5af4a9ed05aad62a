// Package sbc computes spherical barycentric coordinates of points in space
// with respect to a closed polyhedral surface.
//
// The coordinates generalize planar mean-value coordinates. Vertices are
// projected onto the unit sphere centered at the query point, and each
// spherical face gets mean-value weights in the plane tangent to the sphere
// at its spherical normal. The result is one weight per vertex, normalized to
// sum to 1, that blends per-vertex attributes smoothly inside and outside
// the polyhedron.
//
// Typical use:
//
//	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))
//	weights, err := ev.Compute(mgl64.Vec3{0.1, 0.2, 0.3})
//	if err != nil {
//		// errors.Is(err, sbc.ErrDegenerateQuery) when the point is a vertex
//	}
//	color, _ := sbc.Interpolate(weights, vertexColors)
//
// An Evaluator is immutable after construction and safe for concurrent use.
//
// References:
//   - Langer, Belyaev, Seidel: "Spherical Barycentric Coordinates" (SGP 2006)
//   - Floater: "Mean Value Coordinates" (CAGD 2003)
package sbc
