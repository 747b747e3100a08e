// Package config holds the CLI-overridable render configuration: flag
// defaults live here so both the cobra command and tests share one source
// of truth, and validation happens before any scene is built.
package config

import (
	"fmt"

	"github.com/dfraymond/goprogressivetracer/pkg/scene"
)

// Renderer selects which of the three interchangeable scheduling policies
// drives the render.
type Renderer string

const (
	Sequential       Renderer = "sequential"
	ParallelWorkpool Renderer = "parallel-workpool"
	ParallelChannels Renderer = "parallel-channels"
)

// Config is the full set of CLI-overridable options. Width, Height and
// SamplesPerPixel are overrides: a zero value means "use the selected
// scene's own default" rather than literally rendering a zero-sized image.
type Config struct {
	Output          string
	Renderer        Renderer
	Scene           string
	Moving          bool
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

// Default returns the CLI's documented defaults (spec §6): PNG output,
// work-stealing pool, the Cornell box with an explicit glass-sphere light
// target, a fixed shutter, and no dimension/sample overrides.
func Default() Config {
	return Config{
		Output:   "out-test.png",
		Renderer: ParallelWorkpool,
		Scene:    "cornell-box-glass-sphere",
		Moving:   false,
		MaxDepth: 50,
		Seed:     0,
	}
}

// Validate checks the fields that can be checked without building a scene:
// an unknown renderer policy, or a negative override. An unknown scene name
// is instead caught by scene.Build, since the valid set lives in that
// package's registry.
func (c Config) Validate() error {
	switch c.Renderer {
	case Sequential, ParallelWorkpool, ParallelChannels:
	default:
		return fmt.Errorf("config: unknown renderer %q (must be one of %s, %s, %s)",
			c.Renderer, Sequential, ParallelWorkpool, ParallelChannels)
	}
	if c.Width < 0 || c.Height < 0 || c.SamplesPerPixel < 0 {
		return fmt.Errorf("config: width, height and samples-per-pixel must not be negative")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max-depth must not be negative")
	}
	return nil
}

// ApplyOverrides returns sc.Config with any nonzero CLI override applied in
// place of the scene's own default.
func (c Config) ApplyOverrides(sc scene.Config) scene.Config {
	if c.Width > 0 {
		sc.Width = c.Width
		sc.AspectRatio = float64(c.Width) / float64(sc.Height)
	}
	if c.Height > 0 {
		sc.Height = c.Height
		sc.AspectRatio = float64(sc.Width) / float64(c.Height)
	}
	if c.SamplesPerPixel > 0 {
		sc.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		sc.MaxDepth = c.MaxDepth
	}
	return sc
}
