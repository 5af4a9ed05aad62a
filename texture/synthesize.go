package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"github.com/akmonengine/sbc"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSize is the width and height used when Options leaves them zero.
const DefaultSize = 512

// Options controls Synthesize. Zero fields take their defaults.
type Options struct {
	Width   int
	Height  int
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultSize
	}
	if o.Height == 0 {
		o.Height = DefaultSize
	}
	o.Workers = max(sbc.DefaultWorkers, o.Workers)
	return o
}

// Stats counts the samples that did not go through the regular blend.
type Stats struct {
	Samples int
	// Samples lying on a vertex, painted with that vertex color
	Degenerate int
	// Samples without usable coordinates, left transparent
	Singular int
}

// Synthesize renders a Width x Height image of quad, blending colors (one per
// polyhedron vertex) with the spherical barycentric coordinates of each pixel
// center. Pixel (i, j) samples quad.Point((i+0.5)/Width, (j+0.5)/Height).
//
// Channels are clamped to [0, 255] since coordinates outside the polyhedron
// may be negative. Output pixels are opaque, except for numerically singular
// samples which stay transparent black.
func Synthesize(ev *sbc.Evaluator, colors []color.NRGBA, quad Quad, opts Options) (*image.NRGBA, Stats, error) {
	if ev == nil {
		return nil, Stats{}, ErrNilEvaluator
	}
	if len(colors) != ev.VertexCount() {
		return nil, Stats{}, fmt.Errorf("%w: %d colors for %d vertices", ErrColorCount, len(colors), ev.VertexCount())
	}
	opts = opts.withDefaults()
	if opts.Width < 0 || opts.Height < 0 {
		return nil, Stats{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	logger := sbc.Logger()
	logger.Debug("texture: synthesis started",
		"width", opts.Width, "height", opts.Height, "workers", opts.Workers)
	start := time.Now()

	palette := make([]mgl64.Vec3, len(colors))
	for k, c := range colors {
		palette[k] = mgl64.Vec3{float64(c.R), float64(c.G), float64(c.B)}
	}

	points := make([]mgl64.Vec3, opts.Width*opts.Height)
	for j := 0; j < opts.Height; j++ {
		v := (float64(j) + 0.5) / float64(opts.Height)
		for i := 0; i < opts.Width; i++ {
			u := (float64(i) + 0.5) / float64(opts.Width)
			points[j*opts.Width+i] = quad.Point(u, v)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	var degenerate, singular atomic.Int64

	// Every index owns a distinct pixel, so workers never write the same bytes
	ev.ComputeBatchFunc(points, opts.Workers, func(idx int, weights []float64, err error) {
		x, y := idx%opts.Width, idx/opts.Width

		if err != nil {
			var degenerateErr *sbc.DegenerateQueryError
			if errors.As(err, &degenerateErr) {
				degenerate.Add(1)
				img.SetNRGBA(x, y, opaque(colors[degenerateErr.Vertex]))
				return
			}
			singular.Add(1)
			return
		}

		rgb, err := sbc.Interpolate(weights, palette)
		if err != nil {
			singular.Add(1)
			return
		}
		img.SetNRGBA(x, y, color.NRGBA{R: channel(rgb.X()), G: channel(rgb.Y()), B: channel(rgb.Z()), A: 255})
	})

	stats := Stats{
		Samples:    len(points),
		Degenerate: int(degenerate.Load()),
		Singular:   int(singular.Load()),
	}
	if stats.Singular > 0 {
		logger.Warn("texture: singular samples left transparent", "count", stats.Singular)
	}
	logger.Debug("texture: synthesis done",
		"samples", stats.Samples, "degenerate", stats.Degenerate, "elapsed", time.Since(start))

	return img, stats, nil
}

func channel(value float64) uint8 {
	return uint8(math.Round(mgl64.Clamp(value, 0, 255)))
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
