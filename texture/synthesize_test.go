package texture

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/akmonengine/sbc"
	"github.com/akmonengine/sbc/polyhedron"
	"github.com/go-gl/mathgl/mgl64"
)

func cubeColors() []color.NRGBA {
	return []color.NRGBA{
		{R: 255, G: 165, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 0, G: 255, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 165, B: 255, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
}

func uniformColors(n int, c color.NRGBA) []color.NRGBA {
	colors := make([]color.NRGBA, n)
	for i := range colors {
		colors[i] = c
	}
	return colors
}

func closeChannel(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestOptionsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{name: "zero", in: Options{}, want: Options{Width: 512, Height: 512, Workers: 1}},
		{name: "custom", in: Options{Width: 16, Height: 8, Workers: 4}, want: Options{Width: 16, Height: 8, Workers: 4}},
		{name: "negative workers", in: Options{Width: 4, Height: 4, Workers: -2}, want: Options{Width: 4, Height: 4, Workers: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSynthesizeErrors(t *testing.T) {
	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))

	tests := []struct {
		name    string
		ev      *sbc.Evaluator
		colors  []color.NRGBA
		opts    Options
		wantErr error
	}{
		{name: "nil evaluator", ev: nil, colors: cubeColors(), wantErr: ErrNilEvaluator},
		{name: "too few colors", ev: ev, colors: cubeColors()[:7], wantErr: ErrColorCount},
		{name: "negative width", ev: ev, colors: cubeColors(), opts: Options{Width: -1, Height: 4}, wantErr: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := Synthesize(tt.ev, tt.colors, DefaultQuad(), tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Synthesize() error = %v, want %v", err, tt.wantErr)
			}
			if img != nil {
				t.Error("Synthesize() returned an image along with an error")
			}
		})
	}
}

func TestSynthesizeUniformColor(t *testing.T) {
	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))
	want := color.NRGBA{R: 10, G: 200, B: 30, A: 255}

	img, stats, err := Synthesize(ev, uniformColors(8, want), DefaultQuad(), Options{Width: 16, Height: 12})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if stats.Samples != 16*12 || stats.Degenerate != 0 || stats.Singular != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("bounds = %v, want 16x12", b)
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSynthesizeCenterPixel(t *testing.T) {
	// The middle pixel of a 3x3 image samples the cube center, where every
	// vertex weighs 1/8
	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))

	img, _, err := Synthesize(ev, cubeColors(), DefaultQuad(), Options{Width: 3, Height: 3})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	got := img.NRGBAAt(1, 1)
	want := color.NRGBA{R: 96, G: 169, B: 96, A: 255}
	if !closeChannel(got.R, want.R) || !closeChannel(got.G, want.G) || !closeChannel(got.B, want.B) || got.A != 255 {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestSynthesizeWorkersAgree(t *testing.T) {
	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))
	opts := Options{Width: 24, Height: 20, Workers: 1}

	sequential, _, err := Synthesize(ev, cubeColors(), DefaultQuad(), opts)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	for _, workers := range []int{2, 3, 8} {
		opts.Workers = workers
		parallel, _, err := Synthesize(ev, cubeColors(), DefaultQuad(), opts)
		if err != nil {
			t.Fatalf("Synthesize(workers=%d) error = %v", workers, err)
		}
		if !bytes.Equal(sequential.Pix, parallel.Pix) {
			t.Errorf("workers=%d: image differs from the sequential one", workers)
		}
	}
}

func TestSynthesizeDegenerateSamples(t *testing.T) {
	// A quad collapsed onto vertex 3 samples that vertex everywhere
	cube := polyhedron.Cube(0.5)
	ev := sbc.NewFromPolyhedron(cube)
	v := cube.Vertices[3]
	quad := Quad{Corners: [4]mgl64.Vec3{v, v, v, v}}

	img, stats, err := Synthesize(ev, cubeColors(), quad, Options{Width: 4, Height: 4, Workers: 2})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if stats.Degenerate != 16 {
		t.Errorf("stats.Degenerate = %d, want 16", stats.Degenerate)
	}

	want := cubeColors()[3]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSynthesizeOutsideIsClamped(t *testing.T) {
	// Outside the cube some weights are negative, so blends overshoot
	cube := polyhedron.Cube(0.5)
	ev := sbc.NewFromPolyhedron(cube)
	far := mgl64.Vec3{0, 0, 5}
	quad := Quad{Corners: [4]mgl64.Vec3{far, far, far, far}}

	colors := uniformColors(8, color.NRGBA{A: 255})
	for _, k := range []int{0, 1, 2, 3} {
		colors[k] = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	img, _, err := Synthesize(ev, colors, quad, Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel = %v, want clamped white", got)
	}
}

func BenchmarkSynthesize(b *testing.B) {
	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))
	colors := cubeColors()
	opts := Options{Width: 64, Height: 64, Workers: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Synthesize(ev, colors, DefaultQuad(), opts)
	}
}
