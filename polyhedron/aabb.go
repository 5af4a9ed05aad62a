package polyhedron

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Bounds returns the bounding box of all vertices. An empty polyhedron
// yields a zero box.
func (p *Polyhedron) Bounds() AABB {
	if len(p.Vertices) == 0 {
		return AABB{}
	}

	min := p.Vertices[0]
	max := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		min[0] = math.Min(min[0], v[0])
		min[1] = math.Min(min[1], v[1])
		min[2] = math.Min(min[2], v[2])

		max[0] = math.Max(max[0], v[0])
		max[1] = math.Max(max[1], v[1])
		max[2] = math.Max(max[2], v[2])
	}

	return AABB{Min: min, Max: max}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Center returns the middle of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the edge lengths of the box
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}
