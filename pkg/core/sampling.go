package core

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// RandomVec3 returns a vector with each component uniform in [min, max).
func RandomVec3(rng *Rng, min, max float64) vec3.Vec3 {
	return vec3.New(rng.Range(min, max), rng.Range(min, max), rng.Range(min, max))
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball, found by rejection sampling.
func RandomInUnitSphere(rng *Rng) vec3.Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit
// sphere.
func RandomUnitVector(rng *Rng) vec3.Vec3 {
	return RandomInUnitSphere(rng).Unit()
}

// RandomInHemisphere returns a uniformly distributed direction in the
// hemisphere about the given normal.
func RandomInHemisphere(rng *Rng, normal vec3.Vec3) vec3.Vec3 {
	v := RandomUnitVector(rng)
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Neg()
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane, used to sample a thin-lens aperture.
func RandomInUnitDisk(rng *Rng) vec3.Vec3 {
	for {
		p := vec3.New(rng.Range(-1, 1), rng.Range(-1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted random direction in the
// local frame (z-up): a point on the unit disk lifted to the sphere cap.
// Callers transform the result into world space with an Onb built from the
// surface normal.
func RandomCosineDirection(rng *Rng) vec3.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return vec3.New(x, y, z)
}

// RandomToSphere returns a random direction, in the local frame about the
// axis from the origin to a sphere's center, that lands within the cone
// subtended by a sphere of the given radius at squared distance
// distanceSquared. Used to importance-sample a sphere as a light.
func RandomToSphere(rng *Rng, radius, distanceSquared float64) vec3.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta
	return vec3.New(x, y, z)
}
