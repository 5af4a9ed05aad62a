// Package polyhedron holds the immutable surface description used by the
// spherical barycentric coordinate evaluator.
//
// A polyhedron is stored as a vertex arena plus faces that reference vertices
// by index, never by pointer. Faces are ordered vertex loops and are expected
// to share one winding (counter-clockwise seen from outside for Outward
// orientation).
package polyhedron

import "github.com/go-gl/mathgl/mgl64"

// Polyhedron is a closed polygonal surface.
// Values returned by New and the solid constructors are never mutated by this
// package; methods that "change" the surface return a new Polyhedron.
type Polyhedron struct {
	Vertices []mgl64.Vec3
	Faces    [][]int
}

// Plane is the supporting plane of a face: Normal · p = Offset.
type Plane struct {
	Normal mgl64.Vec3 // unit, follows the face winding (right-hand rule)
	Offset float64
	Valid  bool // false for zero-area faces
}

// New builds a polyhedron from copies of vertices and faces, so later changes
// to the caller's slices do not leak into it.
func New(vertices []mgl64.Vec3, faces [][]int) *Polyhedron {
	p := &Polyhedron{
		Vertices: make([]mgl64.Vec3, len(vertices)),
		Faces:    make([][]int, len(faces)),
	}
	copy(p.Vertices, vertices)
	for i, face := range faces {
		p.Faces[i] = append([]int(nil), face...)
	}

	return p
}

// Clone returns a deep copy.
func (p *Polyhedron) Clone() *Polyhedron {
	return New(p.Vertices, p.Faces)
}

func (p *Polyhedron) VertexCount() int {
	return len(p.Vertices)
}

func (p *Polyhedron) FaceCount() int {
	return len(p.Faces)
}

// Face returns the vertex indices of face i.
func (p *Polyhedron) Face(i int) []int {
	return p.Faces[i]
}

// MaxDegree returns the largest face degree, 0 for a polyhedron without faces.
func (p *Polyhedron) MaxDegree() int {
	maxDegree := 0
	for _, face := range p.Faces {
		maxDegree = max(maxDegree, len(face))
	}
	return maxDegree
}

// Centroid returns the average of all vertices.
func (p *Polyhedron) Centroid() mgl64.Vec3 {
	if len(p.Vertices) == 0 {
		return mgl64.Vec3{0, 0, 0}
	}

	sum := mgl64.Vec3{0, 0, 0}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}

	return sum.Mul(1.0 / float64(len(p.Vertices)))
}

// FacePlane computes the plane of face i with Newell's method, which is
// robust for slightly non-planar and non-convex loops.
// Faces referencing out-of-range vertices or with zero area yield an invalid plane.
func (p *Polyhedron) FacePlane(i int) Plane {
	face := p.Faces[i]
	n := len(face)
	if n < 3 {
		return Plane{Normal: mgl64.Vec3{0, 1, 0}}
	}

	var normal, centroid mgl64.Vec3
	for k := 0; k < n; k++ {
		a, b := face[k], face[(k+1)%n]
		if !p.validIndex(a) || !p.validIndex(b) {
			return Plane{Normal: mgl64.Vec3{0, 1, 0}}
		}
		normal = normal.Add(p.Vertices[a].Cross(p.Vertices[b]))
		centroid = centroid.Add(p.Vertices[a])
	}
	centroid = centroid.Mul(1.0 / float64(n))

	normalLength := normal.Len()
	if normalLength < 1e-12 {
		// Degenerate face (zero area)
		return Plane{Normal: mgl64.Vec3{0, 1, 0}, Offset: centroid.Y()}
	}
	normal = normal.Mul(1.0 / normalLength)

	return Plane{
		Normal: normal,
		Offset: normal.Dot(centroid),
		Valid:  true,
	}
}

// FaceArea returns the area of face i (half the Newell vector length).
func (p *Polyhedron) FaceArea(i int) float64 {
	face := p.Faces[i]
	var normal mgl64.Vec3
	for k := range face {
		a, b := face[k], face[(k+1)%len(face)]
		if !p.validIndex(a) || !p.validIndex(b) {
			return 0
		}
		normal = normal.Add(p.Vertices[a].Cross(p.Vertices[b]))
	}
	return 0.5 * normal.Len()
}

// SignedDistance returns the distance from point to the plane, positive on
// the side the normal points to.
func (pl Plane) SignedDistance(point mgl64.Vec3) float64 {
	return pl.Normal.Dot(point) - pl.Offset
}

// ReverseWinding returns a copy with every face loop reversed, which flips
// every face normal.
func (p *Polyhedron) ReverseWinding() *Polyhedron {
	reversed := p.Clone()
	for _, face := range reversed.Faces {
		for i, j := 0, len(face)-1; i < j; i, j = i+1, j-1 {
			face[i], face[j] = face[j], face[i]
		}
	}
	return reversed
}

// Volume returns the signed volume enclosed by the surface (divergence
// theorem over a fan triangulation of each face). Outward winding gives a
// positive volume.
func (p *Polyhedron) Volume() float64 {
	volume := 0.0
	for _, face := range p.Faces {
		if len(face) < 3 || !p.validFace(face) {
			continue
		}
		a := p.Vertices[face[0]]
		for k := 1; k+1 < len(face); k++ {
			b := p.Vertices[face[k]]
			c := p.Vertices[face[k+1]]
			volume += a.Dot(b.Cross(c))
		}
	}
	return volume / 6.0
}

func (p *Polyhedron) validIndex(i int) bool {
	return i >= 0 && i < len(p.Vertices)
}

func (p *Polyhedron) validFace(face []int) bool {
	for _, i := range face {
		if !p.validIndex(i) {
			return false
		}
	}
	return true
}

// Extent returns the diagonal length of the bounding box, used to scale
// geometric tolerances.
func (p *Polyhedron) Extent() float64 {
	return p.Bounds().Size().Len()
}
