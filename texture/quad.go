package texture

import "github.com/go-gl/mathgl/mgl64"

// Quad is a planar (or bilinear) patch mapped onto texture space.
// Corners are given at texture coordinates (0,0), (1,0), (1,1) and (0,1).
type Quad struct {
	Corners [4]mgl64.Vec3
}

// DefaultQuad returns the unit quad that slants through the cube of half
// edge 0.5 along the z axis, crossing its center.
func DefaultQuad() Quad {
	return Quad{Corners: [4]mgl64.Vec3{
		{0.433, -0.25, 0.5},
		{0.433, -0.25, -0.5},
		{-0.433, 0.25, -0.5},
		{-0.433, 0.25, 0.5},
	}}
}

// Point returns the bilinear interpolation of the corners at (u, v).
func (q Quad) Point(u, v float64) mgl64.Vec3 {
	bottom := q.Corners[0].Mul(1 - u).Add(q.Corners[1].Mul(u))
	top := q.Corners[3].Mul(1 - u).Add(q.Corners[2].Mul(u))
	return bottom.Mul(1 - v).Add(top.Mul(v))
}

// Center returns Point(0.5, 0.5).
func (q Quad) Center() mgl64.Vec3 {
	return q.Point(0.5, 0.5)
}
