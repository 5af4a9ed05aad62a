package sbc

import "github.com/go-gl/mathgl/mgl64"

// Result is the outcome of one point of a batch.
type Result struct {
	Weights []float64
	Err     error
}

// ComputeBatch evaluates every point on up to workers goroutines.
// results[i] belongs to points[i] and equals what Compute(points[i]) returns.
func (e *Evaluator) ComputeBatch(points []mgl64.Vec3, workers int) []Result {
	results := make([]Result, len(points))
	e.ComputeBatchFunc(points, workers, func(i int, weights []float64, err error) {
		if err != nil {
			results[i].Err = err
			return
		}
		results[i].Weights = append([]float64(nil), weights...)
	})

	return results
}

// ComputeBatchFunc evaluates every point on up to workers goroutines and
// hands each result to fn without allocating per point.
//
// fn is called concurrently from several goroutines, once per point. The
// weights slice is a per-worker buffer, valid only until fn returns.
func (e *Evaluator) ComputeBatchFunc(points []mgl64.Vec3, workers int, fn func(i int, weights []float64, err error)) {
	task(workers, len(points), func(start, end int) {
		buf := make([]float64, e.nVertices)
		for i := start; i < end; i++ {
			weights, err := e.ComputeInto(buf, points[i])
			fn(i, weights, err)
		}
	})
}
