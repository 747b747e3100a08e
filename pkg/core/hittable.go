package core

import "github.com/dfraymond/goprogressivetracer/pkg/vec3"

// HitRecord describes a ray-primitive intersection. Normal is always in the
// hemisphere the ray arrived from: front_face = (ray.Direction · outward
// normal) < 0, and Normal is the outward normal flipped into the incident
// hemisphere when front_face is false.
type HitRecord struct {
	P         vec3.Vec3
	Normal    vec3.Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal derives FrontFace and Normal from the ray and the geometric
// (always-outward) surface normal.
func (h *HitRecord) SetFaceNormal(r vec3.Ray, outwardNormal vec3.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can intersect: geometry leaves, CSG-style
// wrappers (Translate, RotateY, FlipNormals), participating media, and
// aggregates (List, Bvh). Hit receives the caller's thread-local
// Rng because an intersection can itself be stochastic (a participating
// medium samples its scattering depth); deterministic geometry ignores it.
type Hittable interface {
	Hit(r vec3.Ray, tMin, tMax float64, rng *Rng) (HitRecord, bool)
	BoundingBox(time0, time1 float64) (Aabb, bool)
}

// SamplableHittable is implemented by Hittables that can additionally serve
// as an explicit light-sampling target for the integrator's mixture PDF.
type SamplableHittable interface {
	Hittable
	// PdfValue returns the density, with respect to solid angle at origin,
	// of sampling the direction from origin to this Hittable via Random.
	PdfValue(origin, direction vec3.Vec3) float64
	// Random returns a direction from origin toward a point on this
	// Hittable, distributed according to PdfValue.
	Random(origin vec3.Vec3, rng *Rng) vec3.Vec3
}
