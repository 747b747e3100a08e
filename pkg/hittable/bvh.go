package hittable

import (
	"fmt"
	"sort"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Bvh is a binary bounding volume hierarchy over a set of Hittables, built
// once at scene-construction time and traversed read-only thereafter.
type Bvh struct {
	Left, Right core.Hittable
	Box         core.Aabb
}

// NewBvh builds a Bvh over items by recursively splitting on a randomly
// chosen axis: items are sorted by that axis's bounding-box minimum and
// partitioned in half. Every item must report a bounding box; an item that
// does not is a construction-time error, since an unbounded primitive can't
// be placed in the hierarchy.
func NewBvh(rng *core.Rng, items []core.Hittable, time0, time1 float64) (*Bvh, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("hittable: cannot build a bvh over zero items")
	}

	working := make([]core.Hittable, len(items))
	copy(working, items)

	return buildBvh(rng, working, time0, time1)
}

func buildBvh(rng *core.Rng, items []core.Hittable, time0, time1 float64) (*Bvh, error) {
	axis := rng.RangeInt(0, 2)

	var left, right core.Hittable
	switch len(items) {
	case 1:
		left = items[0]
		right = items[0]
	case 2:
		if boxMin(items[0], time0, time1, axis) <= boxMin(items[1], time0, time1, axis) {
			left, right = items[0], items[1]
		} else {
			left, right = items[1], items[0]
		}
	default:
		sort.Slice(items, func(i, j int) bool {
			return boxMin(items[i], time0, time1, axis) < boxMin(items[j], time0, time1, axis)
		})
		mid := len(items) / 2

		leftItems := make([]core.Hittable, mid)
		copy(leftItems, items[:mid])
		rightItems := make([]core.Hittable, len(items)-mid)
		copy(rightItems, items[mid:])

		leftNode, err := buildBvh(rng, leftItems, time0, time1)
		if err != nil {
			return nil, err
		}
		rightNode, err := buildBvh(rng, rightItems, time0, time1)
		if err != nil {
			return nil, err
		}
		left, right = leftNode, rightNode
	}

	leftBox, leftOK := left.BoundingBox(time0, time1)
	rightBox, rightOK := right.BoundingBox(time0, time1)
	if !leftOK || !rightOK {
		return nil, fmt.Errorf("hittable: bvh child reported no bounding box")
	}

	return &Bvh{Left: left, Right: right, Box: core.SurroundingBox(leftBox, rightBox)}, nil
}

func boxMin(h core.Hittable, time0, time1 float64, axis int) float64 {
	box, _ := h.BoundingBox(time0, time1)
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// Hit implements core.Hittable: rejects on a bounding-box miss, otherwise
// intersects the left subtree then the right, narrowing tMax so the right
// subtree can never return a farther hit than the left already found.
func (b *Bvh) Hit(r vec3.Ray, tMin, tMax float64, rng *core.Rng) (core.HitRecord, bool) {
	if !b.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := b.Left.Hit(r, tMin, tMax, rng)
	rightMax := tMax
	if hitLeft {
		rightMax = leftRec.T
	}
	rightRec, hitRight := b.Right.Hit(r, tMin, rightMax, rng)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return core.HitRecord{}, false
}

// BoundingBox implements core.Hittable, returning the precomputed box
// spanning both subtrees.
func (b *Bvh) BoundingBox(time0, time1 float64) (core.Aabb, bool) {
	return b.Box, true
}
