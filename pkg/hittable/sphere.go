// Package hittable implements the geometric primitives and aggregates of
// the Hittable protocol: spheres (static and moving), axis-aligned
// rectangles, boxes, the CSG-style wrappers Translate/RotateY/FlipNormals, a
// constant-density participating medium, the linear List, and the
// Bvh acceleration structure.
package hittable

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Sphere is a static sphere with an analytic ray intersection.
type Sphere struct {
	Center   vec3.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere returns a Sphere.
func NewSphere(center vec3.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements core.Hittable via the analytic quadratic root in
// [tMin, tMax], nearest root first.
func (s *Sphere) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	return hitSphereAt(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

// BoundingBox implements core.Hittable.
func (s *Sphere) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	rv := vec3.New(s.Radius, s.Radius, s.Radius)
	return core.NewAabb(s.Center.Sub(rv), s.Center.Add(rv)), true
}

// PdfValue implements core.SamplableHittable: the density of sampling this
// sphere as a light uniformly over the solid angle it subtends from origin.
func (s *Sphere) PdfValue(origin, direction vec3.Vec3) float64 {
	if _, hit := s.Hit(vec3.NewRay(origin, direction, 0), 0.001, math.Inf(1), nil); !hit {
		return 0
	}
	distSq := s.Center.Sub(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSq)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random implements core.SamplableHittable: a direction from origin toward
// a point on the sphere, distributed within the subtended cone.
func (s *Sphere) Random(origin vec3.Vec3, rng *core.Rng) vec3.Vec3 {
	direction := s.Center.Sub(origin)
	distSq := direction.LengthSquared()
	uvw := core.NewOnb(direction)
	return uvw.Local(core.RandomToSphere(rng, s.Radius, distSq))
}

// sphereUV maps a point on a unit sphere to (u, v) via spherical
// coordinates: θ = acos(−y), φ = atan2(−z, x) + π.
func sphereUV(p vec3.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// hitSphereAt is the shared analytic sphere intersection used by Sphere and
// MovingSphere, parameterised on the resolved center for the ray's time.
func hitSphereAt(center vec3.Vec3, radius float64, mat core.Material, r vec3.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	var rec core.HitRecord
	rec.T = root
	rec.P = r.At(root)
	outwardNormal := rec.P.Sub(center).Div(radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = mat
	return rec, true
}
