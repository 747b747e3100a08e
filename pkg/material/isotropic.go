package material

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/pdf"
	"github.com/dfraymond/goprogressivetracer/pkg/texture"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Isotropic is the phase function of a homogeneous participating medium: it
// scatters equally in every direction.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic returns an Isotropic phase material with a solid albedo.
func NewIsotropic(albedo vec3.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// Scatter implements core.Material.
func (iso *Isotropic) Scatter(rIn vec3.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Kind:        core.Diffuse,
		Attenuation: iso.Albedo.Value(hit.U, hit.V, hit.P),
		Pdf:         pdf.Sphere{},
	}, true
}

// Emitted implements core.Material: Isotropic never emits.
func (iso *Isotropic) Emitted(rIn vec3.Ray, hit core.HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}

// ScatteringPdf implements core.Material: uniform 1/(4π), equal to the
// sampling Pdf for Isotropic.
func (iso *Isotropic) ScatteringPdf(rIn vec3.Ray, hit core.HitRecord, scattered vec3.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
