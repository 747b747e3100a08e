package core

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Aabb is an axis-aligned bounding box, with the invariant Min[i] <= Max[i]
// on every axis.
type Aabb struct {
	Min, Max vec3.Vec3
}

// NewAabb returns the Aabb spanning a and b, recomputing min/max per axis so
// the invariant holds regardless of argument order.
func NewAabb(a, b vec3.Vec3) Aabb {
	return Aabb{
		Min: vec3.New(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: vec3.New(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// SurroundingBox returns the smallest Aabb containing both a and b.
func SurroundingBox(a, b Aabb) Aabb {
	return Aabb{
		Min: vec3.New(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: vec3.New(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Hit runs the slab test against [tMin, tMax], tightening the interval one
// axis at a time and rejecting as soon as it collapses.
func (box Aabb) Hit(r vec3.Ray, tMin, tMax float64) bool {
	minArr := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	maxArr := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}
	orig := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}

	for a := 0; a < 3; a++ {
		invD := 1.0 / dir[a]
		t0 := (minArr[a] - orig[a]) * invD
		t1 := (maxArr[a] - orig[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Translate shifts the box by v.
func (box Aabb) Translate(v vec3.Vec3) Aabb {
	return Aabb{Min: box.Min.Add(v), Max: box.Max.Add(v)}
}

// Pad expands the box by amount on every axis whose extent is (near) zero,
// keeping the BVH slab test meaningful for zero-thickness primitives such as
// axis-aligned rectangles.
func (box Aabb) Pad(amount float64) Aabb {
	min, max := box.Min, box.Max
	if max.X-min.X < amount {
		min.X -= amount
		max.X += amount
	}
	if max.Y-min.Y < amount {
		min.Y -= amount
		max.Y += amount
	}
	if max.Z-min.Z < amount {
		min.Z -= amount
		max.Z += amount
	}
	return Aabb{Min: min, Max: max}
}

// Center returns the box's midpoint.
func (box Aabb) Center() vec3.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}
