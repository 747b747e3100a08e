// Package scene holds the immutable, already-built description of a render:
// the geometry root, an optional light list, the camera, the background
// colour, and the render configuration. It also owns the named-scene
// catalogue the CLI selects from.
package scene

import (
	"fmt"

	"github.com/dfraymond/goprogressivetracer/pkg/camera"
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Config is the render configuration carried alongside a built Scene: pixel
// dimensions, sampling budget, recursion depth, and the shutter interval the
// camera was constructed with.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Time0, Time1    float64
	AspectRatio     float64
}

// CameraConfig is the set of parameters a scene builder hands to
// camera.New; kept as its own type (rather than inlined into each builder)
// so every named scene documents its camera placement the same way.
type CameraConfig struct {
	LookFrom, LookAt, Vup vec3.Vec3
	Vfov                  float64
	Aperture              float64
	FocusDist             float64
}

// Scene is a fully constructed, read-only render input: everything the
// integrator and renderer need, with no further construction work required.
type Scene struct {
	World      core.Hittable
	Lights     core.SamplableHittable // nil when the scene has no explicit light-sampling target
	Camera     *camera.Camera
	Background vec3.Vec3
	Config     Config
}

// Builder constructs a Scene given a base seed (used to build any
// scene-construction-time randomness, e.g. the random-sphere scenes) and
// whether the camera's shutter should be open (motion blur enabled).
type Builder func(rng *core.Rng, moving bool) (*Scene, error)

// registry is the named-scene catalogue the CLI's --scene flag selects
// from. Keys match spec's scene selector values.
var registry = map[string]Builder{
	"random-uniform-spheres":        buildRandomUniformSpheres,
	"random-checker-ground-spheres": buildRandomCheckerGroundSpheres,
	"two-checker-spheres":           buildTwoCheckerSpheres,
	"two-perlin-spheres":            buildTwoPerlinSpheres,
	"image-mapped-sphere":           buildImageMappedSphere,
	"simple-light":                  buildSimpleLight,
	"cornell-box":                   buildCornellBox,
	"cornell-box-smoke":             buildCornellBoxSmoke,
	"final-scene":                   buildFinalScene,
	"cornell-box-glass-sphere":      buildCornellBoxGlassSphere,
}

// names is the declaration order of the registry, used for stable --scene
// help text and error messages (map iteration order is not stable).
var names = []string{
	"random-uniform-spheres",
	"random-checker-ground-spheres",
	"two-checker-spheres",
	"two-perlin-spheres",
	"image-mapped-sphere",
	"simple-light",
	"cornell-box",
	"cornell-box-smoke",
	"final-scene",
	"cornell-box-glass-sphere",
}

// Names returns the valid --scene values in declaration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Build looks up name in the registry and runs its Builder. An unknown name
// is a fatal scene-build error, per the CLI's error-handling contract.
func Build(name string, rng *core.Rng, moving bool) (*Scene, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (valid names: %v)", name, Names())
	}
	return builder(rng, moving)
}

// shutterInterval returns [0,1] when moving is requested, and the
// degenerate [0,0] interval otherwise, matching the CLI's --moving flag.
func shutterInterval(moving bool) (time0, time1 float64) {
	if moving {
		return 0, 1
	}
	return 0, 0
}

// buildConfig fills in the Config fields shared by every scene; aspect
// ratio is derived from width/height once both are known.
func buildConfig(width, height, samplesPerPixel, maxDepth int, time0, time1 float64) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Time0:           time0,
		Time1:           time1,
		AspectRatio:     float64(width) / float64(height),
	}
}
