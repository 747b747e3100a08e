// Package vec3 provides the 3-vector algebra shared by positions, directions
// and linear-space colours throughout the tracer.
package vec3

import (
	"fmt"
	"math"
)

// Vec3 is a triple of 64-bit floats. The same type represents points,
// directions and colours; the calling context determines interpretation.
type Vec3 struct {
	X, Y, Z float64
}

// Color is Vec3 under another name, used where a value is unambiguously a
// linear-space colour rather than a point or direction.
type Color = Vec3

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by t.
func (v Vec3) Mul(t float64) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Div returns v scaled by 1/t.
func (v Vec3) Div(t float64) Vec3 {
	return v.Mul(1 / t)
}

// MulVec returns the componentwise product of v and o.
func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivVec returns the componentwise quotient of v and o.
func (v Vec3) DivVec(o Vec3) Vec3 {
	return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns ‖v‖².
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns ‖v‖.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns v normalised to unit length. The zero vector maps to itself.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NearZero reports whether every component of v is within 1e-8 of zero.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Clamp clamps each component of v to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// Reflect returns v reflected about the unit normal n: v - 2(v·n)n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract returns the refraction of the unit vector uv through a surface
// with unit normal n, using Snell's law with ratio etaiOverEtat = ηi/ηt.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
