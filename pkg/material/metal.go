package material

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Metal is a specular material: it reflects perfectly, then perturbs the
// reflection by a random point in a sphere of radius Fuzz.
type Metal struct {
	Albedo vec3.Vec3
	Fuzz   float64
}

// NewMetal returns a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo vec3.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material.
func (m *Metal) Scatter(rIn vec3.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterRecord, bool) {
	reflected := vec3.Reflect(rIn.Direction.Unit(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Mul(m.Fuzz))
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}
	return core.ScatterRecord{
		Kind:        core.Specular,
		Attenuation: m.Albedo,
		Specular:    vec3.NewRay(hit.P, reflected, rIn.Time),
	}, true
}

// Emitted implements core.Material: Metal never emits.
func (m *Metal) Emitted(rIn vec3.Ray, hit core.HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}

// ScatteringPdf implements core.Material; unused for specular materials, the
// integrator never reaches this for a Specular scatter record.
func (m *Metal) ScatteringPdf(rIn vec3.Ray, hit core.HitRecord, scattered vec3.Ray) float64 {
	return 0
}
