package hittable

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// MovingSphere has its center linearly interpolated over [Time0, Time1]
// using the intersecting ray's time, producing motion blur.
type MovingSphere struct {
	Center0, Center1 vec3.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere returns a MovingSphere moving from center0 at time0 to
// center1 at time1.
func NewMovingSphere(center0, center1 vec3.Vec3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// CenterAt returns the sphere's center at the given ray time.
func (m *MovingSphere) CenterAt(time float64) vec3.Vec3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	t := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Sub(m.Center0).Mul(t))
}

// Hit implements core.Hittable.
func (m *MovingSphere) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	return hitSphereAt(m.CenterAt(r.Time), m.Radius, m.Material, r, tMin, tMax)
}

// BoundingBox implements core.Hittable as the union of the box at time0 and
// the box at time1.
func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	rv := vec3.New(m.Radius, m.Radius, m.Radius)
	c0 := m.CenterAt(time0)
	c1 := m.CenterAt(time1)
	box0 := core.NewAabb(c0.Sub(rv), c0.Add(rv))
	box1 := core.NewAabb(c1.Sub(rv), c1.Add(rv))
	return core.SurroundingBox(box0, box1), true
}
