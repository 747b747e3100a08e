// Package core provides the axis-aligned bounding box, orthonormal basis and
// random-sampling primitives shared by the texture, material, pdf and
// hittable layers.
package core

import (
	"math/rand"
)

// Rng is a thread-local uniform random source. Each render worker owns one;
// no Rng is ever shared across goroutines, so no locking is needed.
type Rng struct {
	r *rand.Rand
}

// NewRng returns an Rng seeded from seed. Two Rngs built from the same seed
// produce the same sequence, which is what makes per-pixel seeding (x, y,
// base seed) reproducible.
func NewRng(seed int64) *Rng {
	return &Rng{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform double in [0, 1).
func (g *Rng) Float64() float64 {
	return g.r.Float64()
}

// Range returns a uniform double in [min, max).
func (g *Rng) Range(min, max float64) float64 {
	return min + (max-min)*g.Float64()
}

// RangeInt returns a uniform integer in [min, max].
func (g *Rng) RangeInt(min, max int) int {
	return min + g.r.Intn(max-min+1)
}
