// Package integrator implements the recursive Monte-Carlo radiance
// estimator: single-sample multiple importance sampling between an explicit
// light-sampling density and the hit material's own scattering density,
// combined by the balance heuristic via an equal-weight mixture pdf.
package integrator

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/pdf"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Background evaluates the radiance contributed by a ray that escapes the
// scene entirely, letting a scene pick a constant colour or a sky gradient.
type Background func(r vec3.Ray) vec3.Vec3

// Radiance estimates the incoming radiance along r via unidirectional path
// tracing with single-sample MIS. world is intersected directly (typically
// the scene's Bvh root); lights, if non-nil, is sampled explicitly alongside
// the material's own scattering pdf. Recursion stops at maxDepth, returning
// black, which biases the estimator only in the (vanishingly rare, for a
// reasonable maxDepth) light paths longer than the bound.
func Radiance(r vec3.Ray, world core.Hittable, lights core.SamplableHittable, background Background, rng *core.Rng, maxDepth int) vec3.Vec3 {
	if maxDepth <= 0 {
		return vec3.New(0, 0, 0)
	}

	hit, didHit := world.Hit(r, 0.001, 1e308, rng)
	if !didHit {
		if background == nil {
			return vec3.New(0, 0, 0)
		}
		return background(r)
	}

	emitted := hit.Material.Emitted(r, hit, hit.U, hit.V, hit.P)

	srec, scattered := hit.Material.Scatter(r, hit, rng)
	if !scattered {
		return emitted
	}

	if srec.Kind == core.Specular {
		reflected := Radiance(srec.Specular, world, lights, background, rng, maxDepth-1)
		return emitted.Add(srec.Attenuation.MulVec(reflected))
	}

	samplingPdf := srec.Pdf
	if lights != nil {
		lightPdf := pdf.NewHittable(lights, hit.P)
		samplingPdf = pdf.NewMixture(lightPdf, srec.Pdf)
	}

	direction := samplingPdf.Generate(rng)
	scatteredRay := vec3.NewRay(hit.P, direction, r.Time)

	pdfValue := samplingPdf.Value(direction)
	if pdfValue <= 0 {
		return emitted
	}

	scatteringPdf := hit.Material.ScatteringPdf(r, hit, scatteredRay)
	incoming := Radiance(scatteredRay, world, lights, background, rng, maxDepth-1)

	weighted := srec.Attenuation.MulVec(incoming).Mul(scatteringPdf / pdfValue)
	return emitted.Add(weighted)
}
