package sbc

import (
	"math"
	"sync"

	"github.com/akmonengine/sbc/polyhedron"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Distance below which the query point is considered to be a vertex
	degenerateEpsilon = 1e-12
	// Cross product length below which two unit directions are collinear
	edgeEpsilon = 1e-12
	// Spherical face vector length below which a face has no projected area
	faceEpsilon = 1e-12
	// Polar angles are kept this far from 0 and π, and tangent-plane
	// cosines this far from 0
	poleEpsilon = 1e-9
	// Relative distance to a face plane under which the query point is on it
	planeEpsilon = 1e-10
)

// Evaluator computes spherical barycentric coordinates for one polyhedron.
// It must be created with New or NewFromPolyhedron and not copied afterwards.
type Evaluator struct {
	poly   *polyhedron.Polyhedron
	planes []polyhedron.Plane

	nVertices int
	nFaces    int
	maxDegree int

	// Absolute distance to a face plane treated as lying on it
	planeTolerance float64

	scratchPool sync.Pool
}

// New creates an evaluator from copies of vertices and faces.
// Faces must index vertices in [0, len(vertices)) and share one winding;
// nothing is validated here (see polyhedron.Validate).
func New(vertices []mgl64.Vec3, faces [][]int) *Evaluator {
	return newEvaluator(polyhedron.New(vertices, faces))
}

// NewFromPolyhedron creates an evaluator from a copy of p.
func NewFromPolyhedron(p *polyhedron.Polyhedron) *Evaluator {
	return newEvaluator(p.Clone())
}

func newEvaluator(p *polyhedron.Polyhedron) *Evaluator {
	e := &Evaluator{
		poly:           p,
		planes:         make([]polyhedron.Plane, p.FaceCount()),
		nVertices:      p.VertexCount(),
		nFaces:         p.FaceCount(),
		maxDegree:      p.MaxDegree(),
		planeTolerance: planeEpsilon * max(1, p.Extent()),
	}
	for i := range e.planes {
		e.planes[i] = p.FacePlane(i)
	}

	nVertices, maxDegree := e.nVertices, e.maxDegree
	e.scratchPool.New = func() any {
		return newScratch(nVertices, maxDegree)
	}

	Logger().Debug("sbc: evaluator created",
		"vertices", e.nVertices, "faces", e.nFaces, "maxDegree", e.maxDegree)

	return e
}

func (e *Evaluator) VertexCount() int {
	return e.nVertices
}

func (e *Evaluator) FaceCount() int {
	return e.nFaces
}

// Polyhedron returns a copy of the evaluated surface.
func (e *Evaluator) Polyhedron() *polyhedron.Polyhedron {
	return e.poly.Clone()
}

// Compute returns the spherical barycentric coordinates of x: one weight per
// vertex, in vertex order, summing to 1.
//
// Errors:
//   - *DegenerateQueryError (ErrDegenerateQuery) if x is a vertex
//   - ErrNumericalSingularity if the weights cannot be normalized
//   - ErrEmptyPolyhedron if there are no vertices
func (e *Evaluator) Compute(x mgl64.Vec3) ([]float64, error) {
	return e.ComputeInto(nil, x)
}

// ComputeInto is Compute writing into dst when its capacity allows, so tight
// loops can run without allocating. The returned slice aliases dst in that case.
func (e *Evaluator) ComputeInto(dst []float64, x mgl64.Vec3) ([]float64, error) {
	if e.nVertices == 0 {
		return nil, ErrEmptyPolyhedron
	}

	var w []float64
	if cap(dst) >= e.nVertices {
		w = dst[:e.nVertices]
		clear(w)
	} else {
		w = make([]float64, e.nVertices)
	}

	s := e.getScratch()
	defer e.putScratch(s)

	// Project vertices onto the unit sphere centered at x
	for i, vertex := range e.poly.Vertices {
		d := vertex.Sub(x)
		r := d.Len()
		if r < degenerateEpsilon {
			return nil, &DegenerateQueryError{Vertex: i, Distance: r}
		}
		s.u[i] = d.Mul(1.0 / r)
		s.r[i] = r
	}

	// Faces are accumulated in input order so results are bit-reproducible
	for fi, face := range e.poly.Faces {
		if len(face) < 3 {
			continue
		}

		plane := e.planes[fi]
		if plane.Valid && math.Abs(plane.SignedDistance(x)) <= e.planeTolerance {
			// x on the face plane: either on the surface itself, where the
			// coordinates reduce to the planar ones of this face, or
			// outside the face, whose projection then has no area
			if e.boundaryCoordinates(face, plane.Normal, s, w) {
				break
			}
			continue
		}

		e.sphericalFace(face, s, w)
	}

	// Equation (10)
	sum := 0.0
	for _, wi := range w {
		sum += wi
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, ErrNumericalSingularity
	}
	for i := range w {
		w[i] /= sum
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return nil, ErrNumericalSingularity
		}
	}

	return w, nil
}

// sphericalFace adds the contribution of one face to w.
func (e *Evaluator) sphericalFace(face []int, s *scratch, w []float64) {
	n := len(face)

	// Equation (11): spherical face vector
	var vf mgl64.Vec3
	for i := 0; i < n; i++ {
		a, b := s.u[face[i]], s.u[face[(i+1)%n]]
		edge := a.Cross(b)
		edgeLength := edge.Len()
		if edgeLength < edgeEpsilon {
			continue
		}
		vf = vf.Add(edge.Mul(0.5 * safeAcos(a.Dot(b)) / edgeLength))
	}

	vfLength := vf.Len()
	if vfLength < faceEpsilon {
		return
	}
	v := vf.Mul(1.0 / vfLength)

	// Project onto the plane tangent to the sphere at v
	for i := 0; i < n; i++ {
		u := s.u[face[i]]
		cosine := u.Dot(v)
		if math.Abs(cosine) < poleEpsilon {
			cosine = math.Copysign(poleEpsilon, cosine)
		}
		s.uHat[i] = u.Mul(1.0 / cosine)
		s.theta[i] = clampPole(safeAcos(cosine))
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s.alpha[i] = safeAcos(s.uHat[i].Dot(s.uHat[j]) / (s.uHat[i].Len() * s.uHat[j].Len()))
	}

	// Equation (12)
	denominator := 0.0
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		denominator += (math.Tan(s.alpha[j]/2) + math.Tan(s.alpha[i]/2)) / math.Tan(s.theta[i])
	}

	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		k := face[i]
		w[k] += vfLength / s.r[k] * (math.Tan(s.alpha[j]/2) + math.Tan(s.alpha[i]/2)) /
			math.Sin(s.theta[i]) / denominator
	}
}

// safeAcos clamps rounding noise outside [-1, 1] before math.Acos.
func safeAcos(x float64) float64 {
	return math.Acos(mgl64.Clamp(x, -1, 1))
}

func clampPole(theta float64) float64 {
	return mgl64.Clamp(theta, poleEpsilon, math.Pi-poleEpsilon)
}
