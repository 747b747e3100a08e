package material

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Dielectric is a transparent specular material (glass, water) that reflects
// or refracts according to Schlick's Fresnel approximation and a
// total-internal-reflection check.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric returns a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements core.Material.
func (d *Dielectric) Scatter(rIn vec3.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterRecord, bool) {
	etaRatio := d.RefractionIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractionIndex
	}

	unitDir := rIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	var direction vec3.Vec3
	if etaRatio*sinTheta > 1.0 || reflectance(cosTheta, etaRatio) > rng.Float64() {
		direction = vec3.Reflect(unitDir, hit.Normal)
	} else {
		direction = vec3.Refract(unitDir, hit.Normal, etaRatio)
	}

	return core.ScatterRecord{
		Kind:        core.Specular,
		Attenuation: vec3.New(1, 1, 1),
		Specular:    vec3.NewRay(hit.P, direction, rIn.Time),
	}, true
}

// Emitted implements core.Material: Dielectric never emits.
func (d *Dielectric) Emitted(rIn vec3.Ray, hit core.HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}

// ScatteringPdf implements core.Material; unused, Dielectric is always
// Specular.
func (d *Dielectric) ScatteringPdf(rIn vec3.Ray, hit core.HitRecord, scattered vec3.Ray) float64 {
	return 0
}

// reflectance computes Schlick's approximation to the Fresnel reflectance.
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
