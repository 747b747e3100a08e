package core

import "github.com/dfraymond/goprogressivetracer/pkg/vec3"

// Onb is an orthonormal basis built around a surface normal, used to
// transform a locally-sampled direction (e.g. a cosine-weighted sample) into
// world space.
type Onb struct {
	U, V, W vec3.Vec3
}

// NewOnb builds an orthonormal basis with w as the (unit-normalised) input
// direction.
func NewOnb(normal vec3.Vec3) Onb {
	w := normal.Unit()
	a := vec3.New(1, 0, 0)
	if abs(w.X) > 0.9 {
		a = vec3.New(0, 1, 0)
	}
	v := w.Cross(a).Unit()
	u := w.Cross(v)
	return Onb{U: u, V: v, W: w}
}

// Local transforms a, expressed in the basis's local coordinates, into world
// space.
func (o Onb) Local(a vec3.Vec3) vec3.Vec3 {
	return o.U.Mul(a.X).Add(o.V.Mul(a.Y)).Add(o.W.Mul(a.Z))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
