package sbc

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// boundaryCoordinates handles a query point lying in the plane of face.
// If the point is inside the face or on its border, w is overwritten with
// the planar mean-value coordinates of the point with respect to the face
// (the limit of the spherical coordinates on the surface) and true is
// returned. Points on an edge get linear interpolation of its endpoints.
// Otherwise w is left untouched and false is returned.
//
// s.u and s.r must already hold the directions and distances to every vertex.
func (e *Evaluator) boundaryCoordinates(face []int, normal mgl64.Vec3, s *scratch, w []float64) bool {
	n := len(face)

	// On an edge: both endpoints are seen in opposite directions
	for i := 0; i < n; i++ {
		a, b := face[i], face[(i+1)%n]
		if s.u[a].Cross(s.u[b]).Len() < edgeEpsilon && s.u[a].Dot(s.u[b]) < 0 {
			ra, rb := s.r[a], s.r[b]
			clear(w)
			w[a] += rb / (ra + rb)
			w[b] += ra / (ra + rb)
			return true
		}
	}

	// Signed angles subtended by each edge, around the face normal.
	// They add up to ±2π inside the face and to 0 outside.
	total := 0.0
	for i := 0; i < n; i++ {
		a, b := s.u[face[i]], s.u[face[(i+1)%n]]
		s.alpha[i] = math.Atan2(normal.Dot(a.Cross(b)), a.Dot(b))
		total += s.alpha[i]
	}
	if math.Abs(total) < math.Pi {
		return false
	}

	sign := 1.0
	if total < 0 {
		sign = -1.0
	}

	clear(w)
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		k := face[i]
		w[k] += sign * (math.Tan(s.alpha[j]/2) + math.Tan(s.alpha[i]/2)) / s.r[k]
	}

	return true
}
