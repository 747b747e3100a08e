package vec3

// Ray is a parametric ray origin + t·direction, carrying the shutter time at
// which it was cast. Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay returns a ray with the given origin, direction and time.
func NewRay(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
