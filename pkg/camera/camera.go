// Package camera implements the perspective, thin-lens camera that turns a
// pair of film-plane coordinates into a world-space Ray.
package camera

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Camera is a positionable, depth-of-field-capable perspective camera. Rays
// cast through GetRay carry a shutter time uniform in [Time0, Time1], giving
// MovingSphere scenes their motion blur.
type Camera struct {
	Origin          vec3.Vec3
	LowerLeftCorner vec3.Vec3
	Horizontal      vec3.Vec3
	Vertical        vec3.Vec3
	U, V, W         vec3.Vec3
	LensRadius      float64
	Time0, Time1    float64
}

// New builds a Camera looking from lookFrom toward lookAt, with vup fixing
// the roll. vfov is the vertical field of view in degrees; aspectRatio is
// width/height. aperture and focusDist control depth of field: aperture 0
// degenerates to a pinhole camera. time0/time1 bound the shutter interval
// sampled by GetRay.
func New(lookFrom, lookAt, vup vec3.Vec3, vfov, aspectRatio, aperture, focusDist, time0, time1 float64) *Camera {
	theta := vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Unit()
	u := vup.Cross(w).Unit()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Mul(viewportWidth * focusDist)
	vertical := v.Mul(viewportHeight * focusDist)
	lowerLeftCorner := origin.Sub(horizontal.Div(2)).Sub(vertical.Div(2)).Sub(w.Mul(focusDist))

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeftCorner,
		Horizontal:      horizontal,
		Vertical:        vertical,
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      aperture / 2,
		Time0:           time0,
		Time1:           time1,
	}
}

// GetRay returns the ray through film-plane coordinates (s, t), each
// normally in [0, 1], perturbed by a sample on the lens disk when the
// camera has nonzero aperture, at a uniformly sampled shutter time.
func (c *Camera) GetRay(rng *core.Rng, s, t float64) vec3.Ray {
	rd := core.RandomInUnitDisk(rng).Mul(c.LensRadius)
	offset := c.U.Mul(rd.X).Add(c.V.Mul(rd.Y))

	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Mul(s)).
		Add(c.Vertical.Mul(t)).
		Sub(c.Origin).
		Sub(offset)

	return vec3.NewRay(c.Origin.Add(offset), direction, rng.Range(c.Time0, c.Time1))
}
