package sbc

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Interpolate returns Σ weights[i] * values[i].
func Interpolate(weights []float64, values []mgl64.Vec3) (mgl64.Vec3, error) {
	if len(weights) != len(values) {
		return mgl64.Vec3{}, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}

	var sum mgl64.Vec3
	for i, w := range weights {
		sum = sum.Add(values[i].Mul(w))
	}
	return sum, nil
}

// InterpolateScalar returns Σ weights[i] * values[i].
func InterpolateScalar(weights []float64, values []float64) (float64, error) {
	if len(weights) != len(values) {
		return 0, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}

	sum := 0.0
	for i, w := range weights {
		sum += w * values[i]
	}
	return sum, nil
}

// Reconstruct interpolates the vertex positions. Inside the polyhedron the
// result approximates the query point the weights were computed for.
func (e *Evaluator) Reconstruct(weights []float64) (mgl64.Vec3, error) {
	return Interpolate(weights, e.poly.Vertices)
}

// OneHot returns the weights of the limit at vertex k: 1 at k, 0 elsewhere.
// Callers use it to resolve a DegenerateQueryError.
func OneHot(n, k int) []float64 {
	w := make([]float64, n)
	if k >= 0 && k < n {
		w[k] = 1
	}
	return w
}
