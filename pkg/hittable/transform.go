package hittable

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Translate offsets a Hittable by a fixed vector, by shifting the incoming
// ray into the wrapped Hittable's local space and shifting the hit point
// back into world space.
type Translate struct {
	Hittable core.Hittable
	Offset   vec3.Vec3
}

// NewTranslate returns h translated by offset.
func NewTranslate(h core.Hittable, offset vec3.Vec3) *Translate {
	return &Translate{Hittable: h, Offset: offset}
}

// Hit implements core.Hittable.
func (t *Translate) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	moved := vec3.NewRay(r.Origin.Sub(t.Offset), r.Direction, r.Time)
	rec, hit := t.Hittable.Hit(moved, tMin, tMax, rng)
	if !hit {
		return core.HitRecord{}, false
	}
	rec.P = rec.P.Add(t.Offset)
	return rec, true
}

// BoundingBox implements core.Hittable.
func (t *Translate) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	box, ok := t.Hittable.BoundingBox(time0, time1)
	if !ok {
		return core.Aabb{}, false
	}
	return box.Translate(t.Offset), true
}

// RotateY rotates a Hittable by theta radians about the Y axis, by
// pre-rotating the incoming ray by −theta and post-rotating the resulting
// hit point and normal by +theta.
type RotateY struct {
	Hittable       core.Hittable
	SinTheta       float64
	CosTheta       float64
	Box            core.Aabb
	HasBoundingBox bool
}

// NewRotateY returns h rotated by theta degrees about the Y axis.
func NewRotateY(h core.Hittable, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box, hasBox := h.BoundingBox(0, 1)
	ry := &RotateY{Hittable: h, SinTheta: sinTheta, CosTheta: cosTheta, HasBoundingBox: hasBox}
	if !hasBox {
		return ry
	}

	min := vec3.New(math.Inf(1), math.Inf(1), math.Inf(1))
	max := vec3.New(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				corner := vec3.New(newX, y, newZ)

				min.X = math.Min(min.X, corner.X)
				min.Y = math.Min(min.Y, corner.Y)
				min.Z = math.Min(min.Z, corner.Z)
				max.X = math.Max(max.X, corner.X)
				max.Y = math.Max(max.Y, corner.Y)
				max.Z = math.Max(max.Z, corner.Z)
			}
		}
	}

	ry.Box = core.NewAabb(min, max)
	return ry
}

// rotate rotates p about the Y axis by the angle whose sine and cosine are
// given; Hit passes -SinTheta to rotate by −theta and SinTheta for +theta.
func (ry *RotateY) rotate(p vec3.Vec3, sin, cos float64) vec3.Vec3 {
	x := cos*p.X + sin*p.Z
	z := -sin*p.X + cos*p.Z
	return vec3.New(x, p.Y, z)
}

// Hit implements core.Hittable.
func (ry *RotateY) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	origin := ry.rotate(r.Origin, -ry.SinTheta, ry.CosTheta)
	direction := ry.rotate(r.Direction, -ry.SinTheta, ry.CosTheta)
	rotated := vec3.NewRay(origin, direction, r.Time)

	rec, hit := ry.Hittable.Hit(rotated, tMin, tMax, rng)
	if !hit {
		return core.HitRecord{}, false
	}

	rec.P = ry.rotate(rec.P, ry.SinTheta, ry.CosTheta)
	rec.Normal = ry.rotate(rec.Normal, ry.SinTheta, ry.CosTheta)
	return rec, true
}

// BoundingBox implements core.Hittable as the AABB of the 8 rotated corners
// of the wrapped Hittable's box.
func (ry *RotateY) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return ry.Box, ry.HasBoundingBox
}

// FlipNormals forwards hits to the wrapped Hittable but inverts FrontFace,
// used to orient a shared rectangle implementation on the opposite face of a
// box.
type FlipNormals struct {
	Hittable core.Hittable
}

// NewFlipNormals returns h with FrontFace inverted.
func NewFlipNormals(h core.Hittable) *FlipNormals {
	return &FlipNormals{Hittable: h}
}

// Hit implements core.Hittable.
func (f *FlipNormals) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	rec, hit := f.Hittable.Hit(r, tMin, tMax, rng)
	if !hit {
		return core.HitRecord{}, false
	}
	rec.FrontFace = !rec.FrontFace
	return rec, true
}

// BoundingBox implements core.Hittable.
func (f *FlipNormals) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return f.Hittable.BoundingBox(time0, time1)
}
