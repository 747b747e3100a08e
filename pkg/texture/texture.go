// Package texture implements the Texture abstraction: a function of surface
// parameters (u, v) and world point p to a colour, used by materials to look
// up albedo/emission.
package texture

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Solid is a constant-colour texture.
type Solid struct {
	Color vec3.Vec3
}

// NewSolid returns a Solid texture of the given colour.
func NewSolid(c vec3.Vec3) *Solid { return &Solid{Color: c} }

// Value implements core.Texture.
func (s *Solid) Value(u, v float64, p vec3.Vec3) vec3.Vec3 { return s.Color }

// Checker is a 3-D checkerboard: the sign of sin(10x)·sin(10y)·sin(10z)
// selects between an odd and an even child texture.
type Checker struct {
	Odd, Even core.Texture
}

// NewChecker returns a Checker texture alternating between odd and even.
func NewChecker(odd, even core.Texture) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewCheckerColors is a convenience constructor wrapping two solid colours.
func NewCheckerColors(odd, even vec3.Vec3) *Checker {
	return NewChecker(NewSolid(odd), NewSolid(even))
}

// Value implements core.Texture.
func (c *Checker) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
