package hittable

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// aabbPad is the half-thickness given to a rectangle's bounding box along
// its zero-extent axis, keeping the BVH slab test meaningful.
const aabbPad = 1e-4

// XYRect is an axis-aligned rectangle in the plane z = K, bounded by
// [x0,x1]×[y0,y1], with outward normal +Z.
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          core.Material
}

// NewXYRect returns an XYRect.
func NewXYRect(x0, x1, y0, y1, k float64, mat core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit implements core.Hittable.
func (rect *XYRect) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.Z) / r.Direction.Z
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	y := r.Origin.Y + t*r.Direction.Y
	if x < rect.X0 || x > rect.X1 || y < rect.Y0 || y > rect.Y1 {
		return core.HitRecord{}, false
	}
	var rec core.HitRecord
	rec.U = (x - rect.X0) / (rect.X1 - rect.X0)
	rec.V = (y - rect.Y0) / (rect.Y1 - rect.Y0)
	rec.T = t
	rec.SetFaceNormal(r, vec3.New(0, 0, 1))
	rec.Material = rect.Material
	rec.P = r.At(t)
	return rec, true
}

// BoundingBox implements core.Hittable, padded on the zero-thickness Z axis.
func (rect *XYRect) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return core.NewAabb(
		vec3.New(rect.X0, rect.Y0, rect.K-aabbPad),
		vec3.New(rect.X1, rect.Y1, rect.K+aabbPad),
	), true
}

// PdfValue implements core.SamplableHittable, treating the rectangle as an
// area light: density = distance²/(cosine·area) with respect to solid angle.
func (rect *XYRect) PdfValue(origin, direction vec3.Vec3) float64 {
	hit, isHit := rect.Hit(vec3.NewRay(origin, direction, 0), 0.001, math.Inf(1), nil)
	if !isHit {
		return 0
	}
	area := (rect.X1 - rect.X0) * (rect.Y1 - rect.Y0)
	return rectPdf(hit, direction, area)
}

// Random implements core.SamplableHittable: a direction toward a uniformly
// sampled point on the rectangle.
func (rect *XYRect) Random(origin vec3.Vec3, rng *core.Rng) vec3.Vec3 {
	randomPoint := vec3.New(rng.Range(rect.X0, rect.X1), rng.Range(rect.Y0, rect.Y1), rect.K)
	return randomPoint.Sub(origin)
}

// XZRect is an axis-aligned rectangle in the plane y = K, bounded by
// [x0,x1]×[z0,z1], with outward normal +Y.
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          core.Material
}

// NewXZRect returns an XZRect.
func NewXZRect(x0, x1, z0, z1, k float64, mat core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit implements core.Hittable.
func (rect *XZRect) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.Y) / r.Direction.Y
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	if x < rect.X0 || x > rect.X1 || z < rect.Z0 || z > rect.Z1 {
		return core.HitRecord{}, false
	}
	var rec core.HitRecord
	rec.U = (x - rect.X0) / (rect.X1 - rect.X0)
	rec.V = (z - rect.Z0) / (rect.Z1 - rect.Z0)
	rec.T = t
	rec.SetFaceNormal(r, vec3.New(0, 1, 0))
	rec.Material = rect.Material
	rec.P = r.At(t)
	return rec, true
}

// BoundingBox implements core.Hittable, padded on the zero-thickness Y axis.
func (rect *XZRect) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return core.NewAabb(
		vec3.New(rect.X0, rect.K-aabbPad, rect.Z0),
		vec3.New(rect.X1, rect.K+aabbPad, rect.Z1),
	), true
}

// PdfValue implements core.SamplableHittable, treating the rectangle as an
// area light: density = distance²/(cosine·area) with respect to solid angle.
func (rect *XZRect) PdfValue(origin, direction vec3.Vec3) float64 {
	hit, isHit := rect.Hit(vec3.NewRay(origin, direction, 0), 0.001, math.Inf(1), nil)
	if !isHit {
		return 0
	}
	area := (rect.X1 - rect.X0) * (rect.Z1 - rect.Z0)
	return rectPdf(hit, direction, area)
}

// rectPdf converts a rectangle hit into the solid-angle density of having
// sampled that direction uniformly by area.
func rectPdf(hit core.HitRecord, direction vec3.Vec3, area float64) float64 {
	distSq := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}
	return distSq / (cosine * area)
}

// Random implements core.SamplableHittable: a direction toward a uniformly
// sampled point on the rectangle.
func (rect *XZRect) Random(origin vec3.Vec3, rng *core.Rng) vec3.Vec3 {
	randomPoint := vec3.New(rng.Range(rect.X0, rect.X1), rect.K, rng.Range(rect.Z0, rect.Z1))
	return randomPoint.Sub(origin)
}

// YZRect is an axis-aligned rectangle in the plane x = K, bounded by
// [y0,y1]×[z0,z1], with outward normal +X.
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          core.Material
}

// NewYZRect returns a YZRect.
func NewYZRect(y0, y1, z0, z1, k float64, mat core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit implements core.Hittable.
func (rect *YZRect) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	t := (rect.K - r.Origin.X) / r.Direction.X
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	y := r.Origin.Y + t*r.Direction.Y
	z := r.Origin.Z + t*r.Direction.Z
	if y < rect.Y0 || y > rect.Y1 || z < rect.Z0 || z > rect.Z1 {
		return core.HitRecord{}, false
	}
	var rec core.HitRecord
	rec.U = (y - rect.Y0) / (rect.Y1 - rect.Y0)
	rec.V = (z - rect.Z0) / (rect.Z1 - rect.Z0)
	rec.T = t
	rec.SetFaceNormal(r, vec3.New(1, 0, 0))
	rec.Material = rect.Material
	rec.P = r.At(t)
	return rec, true
}

// BoundingBox implements core.Hittable, padded on the zero-thickness X axis.
func (rect *YZRect) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return core.NewAabb(
		vec3.New(rect.K-aabbPad, rect.Y0, rect.Z0),
		vec3.New(rect.K+aabbPad, rect.Y1, rect.Z1),
	), true
}

// PdfValue implements core.SamplableHittable, treating the rectangle as an
// area light: density = distance²/(cosine·area) with respect to solid angle.
func (rect *YZRect) PdfValue(origin, direction vec3.Vec3) float64 {
	hit, isHit := rect.Hit(vec3.NewRay(origin, direction, 0), 0.001, math.Inf(1), nil)
	if !isHit {
		return 0
	}
	area := (rect.Y1 - rect.Y0) * (rect.Z1 - rect.Z0)
	return rectPdf(hit, direction, area)
}

// Random implements core.SamplableHittable: a direction toward a uniformly
// sampled point on the rectangle.
func (rect *YZRect) Random(origin vec3.Vec3, rng *core.Rng) vec3.Vec3 {
	randomPoint := vec3.New(rect.K, rng.Range(rect.Y0, rect.Y1), rng.Range(rect.Z0, rect.Z1))
	return randomPoint.Sub(origin)
}
