package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/akmonengine/sbc/polyhedron"
	"github.com/akmonengine/sbc/texture"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultOut  = "texture.png"
	defaultHalf = 0.5
)

var errConfig = errors.New("invalid config")

// Config describes what to render. Every field is optional: an empty config
// renders the colored unit cube through the default quad.
type Config struct {
	Vertices []mgl64.Vec3   `json:"vertices,omitempty"`
	Faces    [][]int        `json:"faces,omitempty"`
	Colors   [][3]uint8     `json:"colors,omitempty"`
	Quad     *[4]mgl64.Vec3 `json:"quad,omitempty"`
	Width    int            `json:"width,omitempty"`
	Height   int            `json:"height,omitempty"`
	Workers  int            `json:"workers,omitempty"`
	Out      string         `json:"out,omitempty"`
	// Distance under which vertices are merged, 0 disables welding
	Weld float64 `json:"weld,omitempty"`
}

func defaultColors() [][3]uint8 {
	return [][3]uint8{
		{255, 165, 0},
		{255, 0, 0},
		{0, 255, 0},
		{255, 255, 0},
		{0, 255, 255},
		{0, 255, 0},
		{0, 165, 255},
		{0, 0, 255},
	}
}

// loadConfig reads the JSON config at path and fills in defaults. An empty
// path yields the default config.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Defaults / validation
	switch {
	case len(cfg.Vertices) == 0 && len(cfg.Faces) == 0:
		cube := polyhedron.Cube(defaultHalf)
		cfg.Vertices, cfg.Faces = cube.Vertices, cube.Faces
		if len(cfg.Colors) == 0 {
			cfg.Colors = defaultColors()
		}
	case len(cfg.Vertices) == 0 || len(cfg.Faces) == 0:
		return nil, fmt.Errorf("%w: vertices and faces must be given together", errConfig)
	}
	if len(cfg.Colors) != len(cfg.Vertices) {
		return nil, fmt.Errorf("%w: %d colors for %d vertices", errConfig, len(cfg.Colors), len(cfg.Vertices))
	}
	if cfg.Quad == nil {
		corners := texture.DefaultQuad().Corners
		cfg.Quad = &corners
	}
	if cfg.Width <= 0 {
		cfg.Width = texture.DefaultSize
	}
	if cfg.Height <= 0 {
		cfg.Height = texture.DefaultSize
	}
	if cfg.Out == "" {
		cfg.Out = defaultOut
	}

	return &cfg, nil
}

// Build returns the configured surface and its vertex colors, after welding
// when requested and checking the surface is closed and consistently wound.
// Welded vertices keep the color of their lowest original index.
func (c *Config) Build() (*polyhedron.Polyhedron, []color.NRGBA, error) {
	if c.Weld < 0 {
		return nil, nil, fmt.Errorf("%w: negative weld distance %v", errConfig, c.Weld)
	}

	p := polyhedron.New(c.Vertices, c.Faces)
	remap := make([]int, len(c.Vertices))
	for i := range remap {
		remap[i] = i
	}
	if c.Weld > 0 {
		p, remap = p.Weld(c.Weld)
	}

	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	palette := make([]color.NRGBA, p.VertexCount())
	for i := len(c.Colors) - 1; i >= 0; i-- {
		rgb := c.Colors[i]
		palette[remap[i]] = color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	}

	return p, palette, nil
}

func (c *Config) TextureQuad() texture.Quad {
	return texture.Quad{Corners: *c.Quad}
}

// levelPath names mipmap level i after the base output: texture.png gives
// texture_1.png, texture_2.png, ...
func levelPath(out string, level int) string {
	if level == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", out[:len(out)-len(ext)], level, ext)
}
