package polyhedron

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey - coordinates of a grid cell
type cellKey struct {
	X, Y, Z int
}

// vertexGrid is a uniform grid hashed into a power-of-two table, used to
// find vertices lying close to each other.
type vertexGrid struct {
	cellSize float64
	cells    [][]int
	cellMask int
}

func newVertexGrid(cellSize float64, numCells int) *vertexGrid {
	numCells = nextPowerOfTwo(numCells)

	return &vertexGrid{
		cellSize: cellSize,
		cells:    make([][]int, numCells),
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo rounds n up to a power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (g *vertexGrid) insert(index int, pos mgl64.Vec3) {
	cellIdx := g.hashCell(g.worldToCell(pos))
	g.cells[cellIdx] = append(g.cells[cellIdx], index)
}

// find returns the smallest inserted index within tolerance of pos, or -1.
// Cells are at least tolerance wide, so the 27 cells around pos cover
// every candidate; hash collisions only add candidates that fail the
// distance test.
func (g *vertexGrid) find(vertices []mgl64.Vec3, pos mgl64.Vec3, tolerance float64) int {
	center := g.worldToCell(pos)
	found := -1

	for x := center.X - 1; x <= center.X+1; x++ {
		for y := center.Y - 1; y <= center.Y+1; y++ {
			for z := center.Z - 1; z <= center.Z+1; z++ {
				for _, idx := range g.cells[g.hashCell(cellKey{x, y, z})] {
					if found >= 0 && idx >= found {
						continue
					}
					if vertices[idx].Sub(pos).Len() <= tolerance {
						found = idx
					}
				}
			}
		}
	}

	return found
}

// worldToCell converts a position into cell coordinates
func (g *vertexGrid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell maps a cell to an index in the table
func (g *vertexGrid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}

// Weld merges vertices closer than tolerance, as found in meshes exported
// face by face. It returns the welded copy and remap, where remap[i] is the
// new index of vertex i. Each merged vertex keeps the position of its lowest
// original index and kept vertices stay in their original order.
//
// Face loops are remapped; consecutive repeats collapse, and faces left
// with fewer than 3 vertices are dropped. Out-of-range indices are kept
// unchanged for Validate to report.
func (p *Polyhedron) Weld(tolerance float64) (*Polyhedron, []int) {
	tolerance = max(tolerance, 0)
	cellSize := max(tolerance, 1e-9*max(1, p.Extent()))
	grid := newVertexGrid(cellSize, len(p.Vertices))

	remap := make([]int, len(p.Vertices))
	vertices := make([]mgl64.Vec3, 0, len(p.Vertices))
	for i, v := range p.Vertices {
		if j := grid.find(vertices, v, tolerance); j >= 0 {
			remap[i] = j
			continue
		}
		remap[i] = len(vertices)
		grid.insert(len(vertices), v)
		vertices = append(vertices, v)
	}

	faces := make([][]int, 0, len(p.Faces))
	for _, face := range p.Faces {
		welded := make([]int, 0, len(face))
		for _, i := range face {
			if p.validIndex(i) {
				i = remap[i]
			}
			if len(welded) > 0 && welded[len(welded)-1] == i {
				continue
			}
			welded = append(welded, i)
		}
		for len(welded) > 1 && welded[0] == welded[len(welded)-1] {
			welded = welded[:len(welded)-1]
		}
		if len(welded) >= 3 {
			faces = append(faces, welded)
		}
	}

	return &Polyhedron{Vertices: vertices, Faces: faces}, remap
}
