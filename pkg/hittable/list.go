package hittable

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// List is an unordered aggregate of Hittables, intersected by a linear scan
// that keeps the closest hit. Its bounding box is the union of its
// children's boxes.
type List struct {
	Items []core.Hittable
}

// NewList returns a List containing items.
func NewList(items ...core.Hittable) *List {
	return &List{Items: items}
}

// Add appends h to the list.
func (l *List) Add(h core.Hittable) {
	l.Items = append(l.Items, h)
}

// Hit implements core.Hittable: scans every item, narrowing tMax to the
// closest accepted hit so far.
func (l *List) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, item := range l.Items {
		rec, hit := item.Hit(r, tMin, closestSoFar, rng)
		if !hit {
			continue
		}
		hitAnything = true
		closestSoFar = rec.T
		closest = rec
	}

	return closest, hitAnything
}

// BoundingBox implements core.Hittable as the union of every item's box. An
// empty list, or a list containing an unbounded item, has no bounding box.
func (l *List) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	if len(l.Items) == 0 {
		return core.Aabb{}, false
	}

	var result core.Aabb
	first := true
	for _, item := range l.Items {
		box, ok := item.BoundingBox(time0, time1)
		if !ok {
			return core.Aabb{}, false
		}
		if first {
			result = box
			first = false
			continue
		}
		result = core.SurroundingBox(result, box)
	}
	return result, true
}

// PdfValue implements core.SamplableHittable by averaging the density of
// every SamplableHittable member, used when a List is itself sampled as a
// compound light.
func (l *List) PdfValue(origin, direction vec3.Vec3) float64 {
	count := 0
	sum := 0.0
	for _, item := range l.Items {
		if sampleable, ok := item.(core.SamplableHittable); ok {
			sum += sampleable.PdfValue(origin, direction)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Random implements core.SamplableHittable by picking a uniformly random
// member and sampling a direction toward it.
func (l *List) Random(origin vec3.Vec3, rng *core.Rng) vec3.Vec3 {
	samplable := make([]core.SamplableHittable, 0, len(l.Items))
	for _, item := range l.Items {
		if s, ok := item.(core.SamplableHittable); ok {
			samplable = append(samplable, s)
		}
	}
	if len(samplable) == 0 {
		return vec3.New(1, 0, 0)
	}
	idx := rng.RangeInt(0, len(samplable)-1)
	return samplable[idx].Random(origin, rng)
}
