package sbc

import "github.com/go-gl/mathgl/mgl64"

// scratch holds the per-call buffers of Compute. A scratch is owned by one
// call between Get and Put on the evaluator pool, never shared.
type scratch struct {
	// Unit directions from the query point to every vertex, and distances
	u []mgl64.Vec3
	r []float64

	// Per-face buffers, sized to the largest face degree
	uHat  []mgl64.Vec3
	alpha []float64
	theta []float64
}

func newScratch(nVertices, maxDegree int) *scratch {
	return &scratch{
		u:     make([]mgl64.Vec3, nVertices),
		r:     make([]float64, nVertices),
		uHat:  make([]mgl64.Vec3, maxDegree),
		alpha: make([]float64, maxDegree),
		theta: make([]float64, maxDegree),
	}
}

func (e *Evaluator) getScratch() *scratch {
	return e.scratchPool.Get().(*scratch)
}

func (e *Evaluator) putScratch(s *scratch) {
	e.scratchPool.Put(s)
}
