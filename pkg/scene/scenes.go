package scene

import (
	"fmt"

	"github.com/dfraymond/goprogressivetracer/pkg/camera"
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/hittable"
	"github.com/dfraymond/goprogressivetracer/pkg/material"
	"github.com/dfraymond/goprogressivetracer/pkg/texture"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// wideConfig is the 3:2, 500-sample default shared by every sphere-garden
// scene (random-uniform, random-checker, two-checker, two-perlin,
// image-mapped).
func wideConfig(moving bool) Config {
	time0, time1 := shutterInterval(moving)
	return buildConfig(1200, 800, 500, 50, time0, time1)
}

// squareConfig is the 1:1, 600px, 200-sample Cornell-box default.
func squareConfig(moving bool) Config {
	time0, time1 := shutterInterval(moving)
	return buildConfig(600, 600, 200, 50, time0, time1)
}

func newCamera(cc CameraConfig, cfg Config) *camera.Camera {
	return camera.New(cc.LookFrom, cc.LookAt, cc.Vup, cc.Vfov, cfg.AspectRatio, cc.Aperture, cc.FocusDist, cfg.Time0, cfg.Time1)
}

var up = vec3.New(0, 1, 0)

// buildRandomUniformSpheres reproduces the "Ray Tracing in One Weekend"
// cover scene: a grey ground sphere and a field of small random spheres
// around three large fixed ones, accelerated by a Bvh.
func buildRandomUniformSpheres(rng *core.Rng, moving bool) (*Scene, error) {
	return buildRandomField(rng, moving, false)
}

// buildRandomCheckerGroundSpheres is the same field over a checkered ground
// plane instead of a solid grey one.
func buildRandomCheckerGroundSpheres(rng *core.Rng, moving bool) (*Scene, error) {
	return buildRandomField(rng, moving, true)
}

func buildRandomField(rng *core.Rng, moving, checkerGround bool) (*Scene, error) {
	cfg := wideConfig(moving)

	var ground core.Hittable
	if checkerGround {
		checker := texture.NewCheckerColors(vec3.New(0.2, 0.3, 0.1), vec3.New(0.9, 0.9, 0.9))
		ground = hittable.NewSphere(vec3.New(0, -1000, 0), 1000, material.NewLambertianTexture(checker))
	} else {
		ground = hittable.NewSphere(vec3.New(0, -1000, 0), 1000, material.NewLambertian(vec3.New(0.5, 0.5, 0.5)))
	}

	items := []core.Hittable{ground}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := vec3.New(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(vec3.New(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng, 0, 1).MulVec(core.RandomVec3(rng, 0, 1))
				mat := material.NewLambertian(albedo)
				if cfg.Time0 == cfg.Time1 {
					items = append(items, hittable.NewSphere(center, 0.2, mat))
				} else {
					center2 := center.Add(vec3.New(0, rng.Range(0, 0.5), 0))
					items = append(items, hittable.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := core.RandomVec3(rng, 0.5, 1)
				fuzz := rng.Range(0, 0.5)
				items = append(items, hittable.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				items = append(items, hittable.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	items = append(items,
		hittable.NewSphere(vec3.New(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		hittable.NewSphere(vec3.New(-4, 1, 0), 1.0, material.NewLambertian(vec3.New(0.4, 0.2, 0.1))),
		hittable.NewSphere(vec3.New(4, 1, 0), 1.0, material.NewMetal(vec3.New(0.7, 0.6, 0.5), 0.0)),
	)

	world, err := hittable.NewBvh(rng, items, cfg.Time0, cfg.Time1)
	if err != nil {
		return nil, fmt.Errorf("scene: random field: %w", err)
	}

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(13, 2, 3), LookAt: vec3.New(0, 0, 0), Vup: up,
		Vfov: 20, Aperture: 0.1, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0), Config: cfg}, nil
}

// buildTwoCheckerSpheres is a pair of large checkered spheres stacked on the
// Y axis, a minimal scene for validating the Checker texture in isolation.
func buildTwoCheckerSpheres(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := wideConfig(moving)
	checker := texture.NewCheckerColors(vec3.New(0.2, 0.3, 0.1), vec3.New(0.9, 0.9, 0.9))
	mat := material.NewLambertianTexture(checker)

	world := hittable.NewList(
		hittable.NewSphere(vec3.New(0, -10, 0), 10, mat),
		hittable.NewSphere(vec3.New(0, 10, 0), 10, mat),
	)

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(13, 2, 3), LookAt: vec3.New(0, 0, 0), Vup: up,
		Vfov: 20, Aperture: 0, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0), Config: cfg}, nil
}

// buildTwoPerlinSpheres exercises the Noise texture: a marbled ground plane
// and a matching sphere.
func buildTwoPerlinSpheres(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := wideConfig(moving)
	noise := texture.NewNoise(rng, 4)
	mat := material.NewLambertianTexture(noise)

	world := hittable.NewList(
		hittable.NewSphere(vec3.New(0, -1000, 0), 1000, mat),
		hittable.NewSphere(vec3.New(0, 2, 0), 2, mat),
	)

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(13, 2, 3), LookAt: vec3.New(0, 0, 0), Vup: up,
		Vfov: 20, Aperture: 0, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0), Config: cfg}, nil
}

// imageTexturePath is the earth-map texture loaded by image-mapped-sphere
// and final-scene, resolved relative to the working directory.
const imageTexturePath = "data/earthmap.bmp"

// buildImageMappedSphere wraps a single sphere in an Image texture, the
// minimal scene for validating image decoding end to end.
func buildImageMappedSphere(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := wideConfig(moving)

	img, err := texture.LoadImage(imageTexturePath)
	if err != nil {
		return nil, fmt.Errorf("scene: image-mapped sphere: %w", err)
	}
	mat := material.NewLambertianTexture(img)

	world := hittable.NewList(hittable.NewSphere(vec3.New(0, 0, 0), 2, mat))

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(13, 2, 3), LookAt: vec3.New(0, 0, 0), Vup: up,
		Vfov: 20, Aperture: 0, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0), Config: cfg}, nil
}

// buildSimpleLight is a marbled ground and sphere lit by a single rectangle
// light against a black background, the first scene where an explicit
// light-sampling target matters.
func buildSimpleLight(rng *core.Rng, moving bool) (*Scene, error) {
	time0, time1 := shutterInterval(moving)
	cfg := buildConfig(1200, 800, 400, 50, time0, time1)

	noise := texture.NewNoise(rng, 4)
	groundMat := material.NewLambertianTexture(noise)

	lightRect := hittable.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(vec3.New(4, 4, 4)))

	world := hittable.NewList(
		hittable.NewSphere(vec3.New(0, -1000, 0), 1000, groundMat),
		hittable.NewSphere(vec3.New(0, 2, 0), 2, groundMat),
		lightRect,
	)

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(26, 3, 6), LookAt: vec3.New(0, 2, 0), Vup: up,
		Vfov: 20, Aperture: 0, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Lights: lightRect, Camera: cam, Background: vec3.New(0, 0, 0), Config: cfg}, nil
}

// cornellWalls returns the five walls and ceiling light shared by every
// Cornell-box variant, parameterised on the light's own emission colour and
// footprint (the smoke variant uses a dimmer, larger light than the plain
// and glass-sphere variants).
func cornellWalls(lightEmission vec3.Vec3, lightX0, lightX1, lightZ0, lightZ1 float64) (*hittable.List, core.Material, *hittable.XZRect) {
	red := material.NewLambertian(vec3.New(0.65, 0.05, 0.05))
	white := material.NewLambertian(vec3.New(0.73, 0.73, 0.73))
	green := material.NewLambertian(vec3.New(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(lightEmission)

	lightRect := hittable.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, 554, light)

	// The rect's outward normal is +Y, but the lamp shines down into the
	// box, so the world carries it behind a FlipNormals; the raw rect is
	// still what the integrator's light pdf samples.
	walls := hittable.NewList(
		hittable.NewYZRect(0, 555, 0, 555, 555, green),
		hittable.NewYZRect(0, 555, 0, 555, 0, red),
		hittable.NewFlipNormals(lightRect),
		hittable.NewXZRect(0, 555, 0, 555, 0, white),
		hittable.NewXZRect(0, 555, 0, 555, 555, white),
		hittable.NewXYRect(0, 555, 0, 555, 555, white),
	)
	return walls, white, lightRect
}

func cornellCamera(cfg Config) *camera.Camera {
	return newCamera(CameraConfig{
		LookFrom: vec3.New(278, 278, -800), LookAt: vec3.New(278, 278, 0), Vup: up,
		Vfov: 40, Aperture: 0, FocusDist: 10,
	}, cfg)
}

// buildCornellBox is the canonical empty Cornell box with two rotated
// boxes, the book's direct-light-sampling benchmark scene.
func buildCornellBox(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := squareConfig(moving)
	walls, white, lightRect := cornellWalls(vec3.New(15, 15, 15), 213, 343, 227, 332)

	tallBox := hittable.NewTranslate(
		hittable.NewRotateY(hittable.NewBox(vec3.New(0, 0, 0), vec3.New(165, 330, 165), white), 15),
		vec3.New(265, 0, 295),
	)
	shortBox := hittable.NewTranslate(
		hittable.NewRotateY(hittable.NewBox(vec3.New(0, 0, 0), vec3.New(165, 165, 165), white), -18),
		vec3.New(130, 0, 65),
	)
	walls.Add(tallBox)
	walls.Add(shortBox)

	return &Scene{World: walls, Lights: lightRect, Camera: cornellCamera(cfg), Background: vec3.New(0, 0, 0), Config: cfg}, nil
}

// buildCornellBoxSmoke replaces the two solid boxes with constant-density
// media: black smoke and white smoke.
func buildCornellBoxSmoke(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := squareConfig(moving)
	walls, white, lightRect := cornellWalls(vec3.New(7, 7, 7), 113, 443, 127, 432)

	tallBoundary := hittable.NewTranslate(
		hittable.NewRotateY(hittable.NewBox(vec3.New(0, 0, 0), vec3.New(165, 330, 165), white), 15),
		vec3.New(265, 0, 295),
	)
	shortBoundary := hittable.NewTranslate(
		hittable.NewRotateY(hittable.NewBox(vec3.New(0, 0, 0), vec3.New(165, 165, 165), white), -18),
		vec3.New(130, 0, 65),
	)

	walls.Add(hittable.NewConstantMedium(tallBoundary, 0.01, material.NewIsotropic(vec3.New(0, 0, 0))))
	walls.Add(hittable.NewConstantMedium(shortBoundary, 0.01, material.NewIsotropic(vec3.New(1, 1, 1))))

	return &Scene{World: walls, Lights: lightRect, Camera: cornellCamera(cfg), Background: vec3.New(0, 0, 0), Config: cfg}, nil
}

// buildCornellBoxGlassSphere is the Cornell box from "Ray Tracing: The Rest
// of Your Life": the short box is replaced with a glass sphere, which is
// supplied to the integrator as an additional explicit light-sampling
// target alongside the ceiling rectangle (a glass sphere has no emission,
// but MIS still benefits from sampling toward it directly).
func buildCornellBoxGlassSphere(rng *core.Rng, moving bool) (*Scene, error) {
	cfg := squareConfig(moving)
	walls, white, lightRect := cornellWalls(vec3.New(15, 15, 15), 213, 343, 227, 332)

	tallBox := hittable.NewTranslate(
		hittable.NewRotateY(hittable.NewBox(vec3.New(0, 0, 0), vec3.New(165, 330, 165), white), 15),
		vec3.New(265, 0, 295),
	)
	glassSphere := hittable.NewSphere(vec3.New(190, 90, 190), 90, material.NewDielectric(1.5))
	walls.Add(tallBox)
	walls.Add(glassSphere)

	lights := hittable.NewList(lightRect, glassSphere)

	return &Scene{World: walls, Lights: lights, Camera: cornellCamera(cfg), Background: vec3.New(0, 0, 0), Config: cfg}, nil
}

// buildFinalScene is the "Ray Tracing: The Next Week" cover composite: a
// field of random-height boxes for ground, a rectangle light, a moving
// sphere, a glass sphere, a fuzzed metal sphere, a subsurface-scattering
// blue sphere (a dielectric boundary filled with coloured fog), a
// world-spanning thin mist, an earth-mapped sphere, a Perlin marble sphere,
// and a cube of 1000 small white spheres rotated and translated into a
// corner.
func buildFinalScene(rng *core.Rng, moving bool) (*Scene, error) {
	// The final scene's moving sphere is part of its fixed composition, not
	// an opt-in feature, so its shutter is always open regardless of
	// --moving.
	cfg := buildConfig(1000, 1000, 1000, 50, 0, 1)

	groundMat := material.NewLambertian(vec3.New(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]core.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := rng.Range(1, 101)
			z1 := z0 + w
			groundBoxes = append(groundBoxes, hittable.NewBox(vec3.New(x0, y0, z0), vec3.New(x1, y1, z1), groundMat))
		}
	}
	groundBvh, err := hittable.NewBvh(rng, groundBoxes, cfg.Time0, cfg.Time1)
	if err != nil {
		return nil, fmt.Errorf("scene: final scene ground: %w", err)
	}

	lightRect := hittable.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(vec3.New(7, 7, 7)))

	movingCenter1 := vec3.New(400, 400, 200)
	movingCenter2 := movingCenter1.Add(vec3.New(30, 0, 0))
	movingSphere := hittable.NewMovingSphere(movingCenter1, movingCenter2, 0, 1, 50, material.NewLambertian(vec3.New(0.7, 0.3, 0.1)))

	glassMat := material.NewDielectric(1.5)
	glassSphere := hittable.NewSphere(vec3.New(260, 150, 45), 50, glassMat)
	metalSphere := hittable.NewSphere(vec3.New(0, 150, 145), 50, material.NewMetal(vec3.New(0.8, 0.8, 0.9), 1.0))

	subsurfaceBoundary := hittable.NewSphere(vec3.New(360, 150, 145), 70, glassMat)
	subsurfaceFog := hittable.NewConstantMedium(subsurfaceBoundary, 0.2, material.NewIsotropic(vec3.New(0.2, 0.4, 0.9)))

	mistBoundary := hittable.NewSphere(vec3.New(0, 0, 0), 5000, glassMat)
	mist := hittable.NewConstantMedium(mistBoundary, 0.0001, material.NewIsotropic(vec3.New(1, 1, 1)))

	earthImg, err := texture.LoadImage(imageTexturePath)
	if err != nil {
		return nil, fmt.Errorf("scene: final scene: %w", err)
	}
	earthSphere := hittable.NewSphere(vec3.New(400, 200, 400), 100, material.NewLambertianTexture(earthImg))

	noiseSphere := hittable.NewSphere(vec3.New(220, 280, 300), 80, material.NewLambertianTexture(texture.NewNoise(rng, 0.1)))

	const whiteSphereCount = 1000
	whiteMat := material.NewLambertian(vec3.New(0.73, 0.73, 0.73))
	whiteSpheres := make([]core.Hittable, 0, whiteSphereCount)
	for i := 0; i < whiteSphereCount; i++ {
		whiteSpheres = append(whiteSpheres, hittable.NewSphere(core.RandomVec3(rng, 0, 165), 10, whiteMat))
	}
	whiteBvh, err := hittable.NewBvh(rng, whiteSpheres, cfg.Time0, cfg.Time1)
	if err != nil {
		return nil, fmt.Errorf("scene: final scene white cluster: %w", err)
	}
	whiteCluster := hittable.NewTranslate(hittable.NewRotateY(whiteBvh, 15), vec3.New(-100, 270, 395))

	// As in the Cornell scenes, the downward-shining ceiling lamp enters
	// the world flipped while the light pdf samples the raw rect.
	world := hittable.NewList(
		groundBvh, hittable.NewFlipNormals(lightRect), movingSphere, glassSphere, metalSphere,
		subsurfaceFog, mist, earthSphere, noiseSphere, whiteCluster,
	)

	cam := newCamera(CameraConfig{
		LookFrom: vec3.New(478, 278, -600), LookAt: vec3.New(278, 278, 0), Vup: up,
		Vfov: 40, Aperture: 0, FocusDist: 10,
	}, cfg)

	return &Scene{World: world, Lights: lightRect, Camera: cam, Background: vec3.New(0, 0, 0), Config: cfg}, nil
}
