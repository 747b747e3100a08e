package texture

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

const perlinSize = 256

// Perlin holds the lattice of random unit gradients and the three
// independent permutation tables used to hash a lattice point to one of
// them.
type Perlin struct {
	randVec []vec3.Vec3
	permX   []int
	permY   []int
	permZ   []int
}

// NewPerlin builds a lattice seeded from rng.
func NewPerlin(rng *core.Rng) *Perlin {
	randVec := make([]vec3.Vec3, perlinSize)
	for i := range randVec {
		randVec[i] = core.RandomVec3(rng, -1, 1).Unit()
	}
	return &Perlin{
		randVec: randVec,
		permX:   generatePerm(rng),
		permY:   generatePerm(rng),
		permZ:   generatePerm(rng),
	}
}

func generatePerm(rng *core.Rng) []int {
	p := make([]int, perlinSize)
	for i := range p {
		p[i] = i
	}
	for i := perlinSize - 1; i > 0; i-- {
		target := rng.RangeInt(0, i)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise evaluates the Hermite-smoothed trilinear interpolation of gradient
// dot products at the 8 lattice points surrounding p.
func (pn *Perlin) Noise(p vec3.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]vec3.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}
	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]vec3.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := vec3.New(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb sums |Noise| over depth octaves, doubling frequency and halving
// weight each step.
func (pn *Perlin) Turb(p vec3.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(pn.Noise(temp))
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return accum
}

// Noise is a marbled turbulence texture: Perlin turbulence modulating a sine
// wave along an arbitrary axis, the classic "look like marble" texture.
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoise returns a Noise texture at the given lattice scale.
func NewNoise(rng *core.Rng, scale float64) *Noise {
	return &Noise{Perlin: NewPerlin(rng), Scale: scale}
}

// Value implements core.Texture.
func (n *Noise) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	scaled := p.Mul(n.Scale)
	intensity := 0.5 * (1 + math.Sin(scaled.Z+10*n.Perlin.Turb(scaled, 7)))
	return vec3.New(1, 1, 1).Mul(intensity)
}
