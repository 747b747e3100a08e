// Package material implements the concrete surface/medium shading models:
// Lambertian diffuse, Metal (with fuzz), Dielectric (glass), DiffuseLight
// and Isotropic (volume phase function).
package material

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/pdf"
	"github.com/dfraymond/goprogressivetracer/pkg/texture"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Lambertian is a perfectly diffuse material: it scatters toward a
// cosine-weighted direction about the surface normal with albedo drawn from
// a texture.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian returns a Lambertian material with a solid albedo.
func NewLambertian(albedo vec3.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture returns a Lambertian material with a textured albedo.
func NewLambertianTexture(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material.
func (l *Lambertian) Scatter(rIn vec3.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Kind:        core.Diffuse,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		Pdf:         pdf.NewCosine(hit.Normal),
	}, true
}

// Emitted implements core.Material: Lambertian never emits.
func (l *Lambertian) Emitted(rIn vec3.Ray, hit core.HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}

// ScatteringPdf implements core.Material: max(0, n·ω̂)/π.
func (l *Lambertian) ScatteringPdf(rIn vec3.Ray, hit core.HitRecord, scattered vec3.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Unit())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
