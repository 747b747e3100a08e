package hittable

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Box is an axis-aligned cuboid built from six rectangles; opposite faces
// share the same material.
type Box struct {
	Min, Max vec3.Vec3
	sides    *List
}

// NewBox returns a Box spanning [min,max] with every face using mat.
func NewBox(min, max vec3.Vec3, mat core.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewFlipNormals(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewFlipNormals(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewFlipNormals(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat)),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit implements core.Hittable.
func (b *Box) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax, rng)
}

// BoundingBox implements core.Hittable.
func (b *Box) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return core.NewAabb(b.Min, b.Max), true
}
