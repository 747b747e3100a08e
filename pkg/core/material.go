package core

import "github.com/dfraymond/goprogressivetracer/pkg/vec3"

// Pdf is a directional probability density over the unit sphere, used to
// importance-sample a diffuse scatter direction and to weight it against the
// material's true scattering density in the integrator's MIS estimator.
type Pdf interface {
	// Value returns the density at the (not necessarily unit) direction.
	Value(direction vec3.Vec3) float64
	// Generate draws a direction from the density.
	Generate(rng *Rng) vec3.Vec3
}

// ScatterKind distinguishes the two ScatterRecord shapes a Material can
// return.
type ScatterKind int

const (
	// Specular scatter records carry a deterministic outgoing ray (mirror
	// reflection, refraction) and no PDF.
	Specular ScatterKind = iota
	// Diffuse scatter records carry a PDF the integrator samples and
	// weights by the material's true scattering density.
	Diffuse
)

// ScatterRecord is the outcome of Material.Scatter: either a Specular ray or
// a Diffuse direction distribution, always with an attenuation.
type ScatterRecord struct {
	Kind        ScatterKind
	Attenuation vec3.Vec3
	Specular    vec3.Ray // valid when Kind == Specular
	Pdf         Pdf      // valid when Kind == Diffuse
}

// Material is the surface/medium shading abstraction: it decides how a ray
// scatters, what it emits, and (for Diffuse outcomes) the true scattering
// density along a chosen outgoing ray.
type Material interface {
	// Scatter returns the scatter outcome for a ray arriving at hit, or
	// false if the ray is absorbed.
	Scatter(rIn vec3.Ray, hit HitRecord, rng *Rng) (ScatterRecord, bool)
	// Emitted returns the material's self-emission at the hit point; zero
	// for every material except light sources.
	Emitted(rIn vec3.Ray, hit HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3
	// ScatteringPdf returns the material's true outgoing-direction density
	// along scattered, distinct from the Pdf used to sample it when the two
	// differ.
	ScatteringPdf(rIn vec3.Ray, hit HitRecord, scattered vec3.Ray) float64
}

// Texture maps a surface parameterisation and a world point to a colour.
type Texture interface {
	Value(u, v float64, p vec3.Vec3) vec3.Vec3
}
