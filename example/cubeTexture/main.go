// Command cubeTexture renders the spherical barycentric blend of per-vertex
// colors over a quad slicing a polyhedron, and writes it as an image.
//
// Without a config it reproduces the classic demo: an 8-color unit cube cut
// by a slanted quad, rendered at 512x512.
//
//	cubeTexture -out cube.png -workers 8 -mipmaps
//	cubeTexture -config shape.json -size 256 -out shape.tiff
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/akmonengine/sbc"
	"github.com/akmonengine/sbc/polyhedron"
	"github.com/akmonengine/sbc/texture"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cubeTexture", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config describing polyhedron, colors and quad")
	out := fs.String("out", "", "output image (.png, .bmp, .tif, .tiff)")
	size := fs.Int("size", 0, "texture width and height in pixels")
	workers := fs.Int("workers", runtime.NumCPU(), "number of goroutines")
	mipmaps := fs.Bool("mipmaps", false, "also write the mipmap chain next to the output")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sbc.SetLogger(logger)
	defer sbc.SetLogger(nil)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *out != "" {
		cfg.Out = *out
	}
	if *size > 0 {
		cfg.Width, cfg.Height = *size, *size
	}
	if cfg.Workers <= 0 {
		cfg.Workers = *workers
	}
	if _, err := texture.ParseFormat(filepath.Ext(cfg.Out)); err != nil {
		return err
	}

	poly, palette, err := cfg.Build()
	if err != nil {
		return err
	}
	if orientation := poly.Orientation(); orientation != polyhedron.Outward {
		logger.Warn("faces are not wound outward", "orientation", orientation)
	}

	ev := sbc.NewFromPolyhedron(poly)
	img, stats, err := texture.Synthesize(ev, palette, cfg.TextureQuad(), texture.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}
	logger.Info("texture synthesized",
		"vertices", poly.VertexCount(), "faces", poly.FaceCount(),
		"width", cfg.Width, "height", cfg.Height,
		"degenerate", stats.Degenerate, "singular", stats.Singular)

	levels := []*image.NRGBA{img}
	if *mipmaps {
		levels = texture.Mipmaps(img, 0)
	}
	for i, level := range levels {
		path := levelPath(cfg.Out, i)
		if err := texture.WriteFile(path, level); err != nil {
			return err
		}
		logger.Info("wrote image", "path", path, "size", level.Bounds().Size())
	}

	return nil
}
