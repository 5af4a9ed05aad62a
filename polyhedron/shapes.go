package polyhedron

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box returns an axis-aligned box centered at the origin.
//
// Vertex order: the four corners of the +Z face counter-clockwise from
// (+x,+y), then the same corners on the -Z face. Faces wind counter-clockwise
// seen from outside.
func Box(halfExtents mgl64.Vec3) *Polyhedron {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	vertices := []mgl64.Vec3{
		{+hx, +hy, +hz},
		{-hx, +hy, +hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{+hx, +hy, -hz},
		{-hx, +hy, -hz},
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
	}
	faces := [][]int{
		{0, 1, 2, 3}, // +Z
		{0, 4, 5, 1}, // +Y
		{0, 3, 7, 4}, // +X
		{4, 7, 6, 5}, // -Z
		{2, 6, 7, 3}, // -Y
		{1, 5, 6, 2}, // -X
	}

	return New(vertices, faces)
}

// Cube returns a cube of half edge length half, centered at the origin.
func Cube(half float64) *Polyhedron {
	return Box(mgl64.Vec3{half, half, half})
}

// Tetrahedron returns the regular tetrahedron inscribed in the cube [-1, 1]³.
func Tetrahedron() *Polyhedron {
	vertices := []mgl64.Vec3{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}

	return New(vertices, faces)
}

// Octahedron returns the regular octahedron with vertices on the unit axes.
// Vertex order: +X, -X, +Y, -Y, +Z, -Z.
func Octahedron() *Polyhedron {
	vertices := []mgl64.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	faces := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	return New(vertices, faces)
}

// Prism returns a right prism over a regular n-gon of the given circumradius,
// spanning z in [-halfHeight, halfHeight]. Vertices 0..n-1 form the bottom
// ring, n..2n-1 the top ring.
func Prism(n int, radius, halfHeight float64) (*Polyhedron, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: prism base with %d sides", ErrFaceDegree, n)
	}

	vertices := make([]mgl64.Vec3, 0, 2*n)
	for _, z := range []float64{-halfHeight, halfHeight} {
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			vertices = append(vertices, mgl64.Vec3{radius * math.Cos(angle), radius * math.Sin(angle), z})
		}
	}

	faces := make([][]int, 0, n+2)
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = n - 1 - i
		top[i] = n + i
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, []int{i, j, n + j, n + i})
	}

	return New(vertices, faces), nil
}
