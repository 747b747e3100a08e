// Package pdf implements the directional-density abstraction used by the
// integrator's multiple-importance-sampled diffuse scatter step: a cosine
// density about the surface normal, a uniform density on the sphere, a
// density driven by an explicit light Hittable, and an equal-weight mixture
// of two densities.
package pdf

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Cosine is a cosine-weighted density about a surface normal.
type Cosine struct {
	uvw core.Onb
}

// NewCosine returns a Cosine pdf oriented about w.
func NewCosine(w vec3.Vec3) *Cosine {
	return &Cosine{uvw: core.NewOnb(w)}
}

// Value implements core.Pdf.
func (c *Cosine) Value(direction vec3.Vec3) float64 {
	cosine := direction.Unit().Dot(c.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate implements core.Pdf.
func (c *Cosine) Generate(rng *core.Rng) vec3.Vec3 {
	return c.uvw.Local(core.RandomCosineDirection(rng))
}

// Sphere is the uniform density over all directions on the unit sphere.
type Sphere struct{}

// Value implements core.Pdf.
func (Sphere) Value(direction vec3.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate implements core.Pdf.
func (Sphere) Generate(rng *core.Rng) vec3.Vec3 {
	return core.RandomUnitVector(rng)
}

// Hittable samples directions toward a SamplableHittable (a light), using
// the Hittable's own PdfValue/Random to importance-sample it from origin.
type Hittable struct {
	origin vec3.Vec3
	target core.SamplableHittable
}

// NewHittable returns a Hittable pdf sampling target from origin.
func NewHittable(target core.SamplableHittable, origin vec3.Vec3) *Hittable {
	return &Hittable{origin: origin, target: target}
}

// Value implements core.Pdf.
func (h *Hittable) Value(direction vec3.Vec3) float64 {
	return h.target.PdfValue(h.origin, direction)
}

// Generate implements core.Pdf.
func (h *Hittable) Generate(rng *core.Rng) vec3.Vec3 {
	return h.target.Random(h.origin, rng)
}

// Mixture is the equal-weight (½, ½) combination of two densities: the
// canonical one-sample balance-style MIS combinator between a light-oriented
// and a material-oriented pdf.
type Mixture struct {
	P0, P1 core.Pdf
}

// NewMixture returns the mixture of p0 and p1.
func NewMixture(p0, p1 core.Pdf) *Mixture {
	return &Mixture{P0: p0, P1: p1}
}

// Value implements core.Pdf.
func (m *Mixture) Value(direction vec3.Vec3) float64 {
	return 0.5*m.P0.Value(direction) + 0.5*m.P1.Value(direction)
}

// Generate implements core.Pdf.
func (m *Mixture) Generate(rng *core.Rng) vec3.Vec3 {
	if rng.Float64() < 0.5 {
		return m.P0.Generate(rng)
	}
	return m.P1.Generate(rng)
}
