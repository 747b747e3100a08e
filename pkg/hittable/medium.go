package hittable

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// ConstantMedium is a homogeneous participating medium (fog, smoke) bounded
// by an arbitrary convex Hittable. A ray passing through the boundary may be
// scattered at a depth sampled from an exponential distribution with rate
// Density.
type ConstantMedium struct {
	Boundary core.Hittable
	Density  float64
	Phase    core.Material
}

// NewConstantMedium returns a ConstantMedium of the given boundary, density
// and phase-function material (conventionally an Isotropic).
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: phase}
}

// Hit implements core.Hittable. It finds the ray's entry and exit points
// through the boundary, samples a scattering distance along that segment,
// and reports a hit there if the distance falls within the segment. The
// recorded normal is arbitrary (the medium is isotropic, so the normal
// carries no surface meaning) and FrontFace is fixed to true.
func (c *ConstantMedium) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	rec1, hit1 := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rng)
	if !hit1 {
		return core.HitRecord{}, false
	}
	rec2, hit2 := c.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1), rng)
	if !hit2 {
		return core.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := -1 / c.Density * math.Log(1-rng.Float64())
	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = rec1.T + hitDistance/rayLength
	rec.P = r.At(rec.T)
	rec.Normal = vec3.New(1, 0, 0)
	rec.FrontFace = true
	rec.Material = c.Phase
	return rec, true
}

// BoundingBox implements core.Hittable as the boundary's own box.
func (c *ConstantMedium) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return c.Boundary.BoundingBox(time0, time1)
}
