package polyhedron

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// soup returns p with every face owning its own copy of its vertices
func soup(p *Polyhedron, jitter float64) *Polyhedron {
	var vertices []mgl64.Vec3
	var faces [][]int
	for fi, face := range p.Faces {
		loop := make([]int, len(face))
		for k, i := range face {
			offset := jitter * float64((fi+k)%3-1)
			loop[k] = len(vertices)
			vertices = append(vertices, p.Vertices[i].Add(mgl64.Vec3{offset, 0, 0}))
		}
		faces = append(faces, loop)
	}
	return &Polyhedron{Vertices: vertices, Faces: faces}
}

func TestWeldTriangleSoup(t *testing.T) {
	tests := []struct {
		name      string
		poly      *Polyhedron
		jitter    float64
		tolerance float64
	}{
		{name: "exact cube", poly: Cube(0.5), tolerance: 0},
		{name: "jittered cube", poly: Cube(0.5), jitter: 1e-9, tolerance: 1e-6},
		{name: "octahedron", poly: Octahedron(), tolerance: 1e-9},
		{name: "hexagonal prism", poly: mustPrism(t, 6), jitter: 1e-8, tolerance: 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := soup(tt.poly, tt.jitter)
			if err := s.Validate(); err == nil {
				t.Fatal("unwelded soup unexpectedly validates")
			}

			welded, remap := s.Weld(tt.tolerance)
			if welded.VertexCount() != tt.poly.VertexCount() {
				t.Fatalf("VertexCount() = %d, want %d", welded.VertexCount(), tt.poly.VertexCount())
			}
			if welded.FaceCount() != tt.poly.FaceCount() {
				t.Errorf("FaceCount() = %d, want %d", welded.FaceCount(), tt.poly.FaceCount())
			}
			if err := welded.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if len(remap) != s.VertexCount() {
				t.Fatalf("len(remap) = %d, want %d", len(remap), s.VertexCount())
			}
			for i, j := range remap {
				if d := welded.Vertices[j].Sub(s.Vertices[i]).Len(); d > tt.tolerance {
					t.Errorf("vertex %d moved by %v", i, d)
				}
			}
		})
	}
}

func TestWeldKeepsDistinctVertices(t *testing.T) {
	cube := Cube(0.5)
	welded, remap := cube.Weld(0.1)

	if welded.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", welded.VertexCount())
	}
	for i, j := range remap {
		if i != j {
			t.Errorf("remap[%d] = %d, want identity", i, j)
		}
	}
}

func TestWeldCollapsesFaces(t *testing.T) {
	// Vertices 3 and 4 coincide: the pentagon becomes a quad and the
	// sliver triangle disappears
	p := New([]mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 1, 0},
	}, [][]int{
		{0, 1, 2, 3, 4},
		{2, 3, 4},
		{0, 1, 9},
	})

	welded, remap := p.Weld(1e-9)
	if remap[4] != 3 {
		t.Errorf("remap[4] = %d, want 3", remap[4])
	}
	if welded.FaceCount() != 2 {
		t.Fatalf("FaceCount() = %d, want 2 (%v)", welded.FaceCount(), welded.Faces)
	}
	if got := welded.Faces[0]; len(got) != 4 || got[3] != 3 {
		t.Errorf("face 0 = %v, want [0 1 2 3]", got)
	}
	if got := welded.Faces[1]; got[2] != 9 {
		t.Errorf("face 1 = %v, out-of-range index should be kept", got)
	}
}

func TestWeldWrapAroundRepeat(t *testing.T) {
	p := New([]mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0},
	}, [][]int{{0, 1, 2, 3}})

	welded, _ := p.Weld(0)
	if got := welded.Faces[0]; len(got) != 3 {
		t.Errorf("face = %v, want the closing repeat removed", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{8, 8},
		{9, 16},
		{1000, 1024},
	}

	for _, tt := range tests {
		if result := nextPowerOfTwo(tt.input); result != tt.expected {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestWorldToCell(t *testing.T) {
	grid := newVertexGrid(1.0, 16)

	tests := []struct {
		name     string
		position mgl64.Vec3
		expected cellKey
	}{
		{"origin", mgl64.Vec3{0, 0, 0}, cellKey{0, 0, 0}},
		{"positive", mgl64.Vec3{1.5, 2.3, 3.7}, cellKey{1, 2, 3}},
		{"negative", mgl64.Vec3{-1.5, -2.3, -3.7}, cellKey{-2, -3, -4}},
		{"large", mgl64.Vec3{100.7, -200.3, 50.1}, cellKey{100, -201, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := grid.worldToCell(tt.position); result != tt.expected {
				t.Errorf("worldToCell(%v) = %v, want %v", tt.position, result, tt.expected)
			}
		})
	}
}

func TestHashCellInRange(t *testing.T) {
	grid := newVertexGrid(1.0, 16)
	for _, key := range []cellKey{{0, 0, 0}, {1, 2, 3}, {-1, -2, -3}, {100, -200, 300}} {
		if h := grid.hashCell(key); h < 0 || h >= len(grid.cells) {
			t.Errorf("hashCell(%v) = %d, out of range", key, h)
		}
	}
}
