package material

import (
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/texture"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// DiffuseLight never scatters; it emits its texture's value from its front
// face only (one-sided) and zero from the back.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight returns a DiffuseLight material emitting a solid colour.
func NewDiffuseLight(color vec3.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(color)}
}

// NewDiffuseLightTexture returns a DiffuseLight material emitting a textured
// colour.
func NewDiffuseLightTexture(t core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: t}
}

// Scatter implements core.Material: DiffuseLight always absorbs.
func (dl *DiffuseLight) Scatter(rIn vec3.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// Emitted implements core.Material.
func (dl *DiffuseLight) Emitted(rIn vec3.Ray, hit core.HitRecord, u, v float64, p vec3.Vec3) vec3.Vec3 {
	if !hit.FrontFace {
		return vec3.Vec3{}
	}
	return dl.Emit.Value(u, v, p)
}

// ScatteringPdf implements core.Material; unreachable since DiffuseLight
// never scatters.
func (dl *DiffuseLight) ScatteringPdf(rIn vec3.Ray, hit core.HitRecord, scattered vec3.Ray) float64 {
	return 0
}
