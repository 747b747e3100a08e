// Package renderer drives the parallel pixel-sampling loop: it turns a
// built scene into an 8-bit RGB byte buffer, offering three interchangeable
// scheduling policies behind one interface, and an extension-dispatched
// image encoder for the result.
package renderer

import (
	"math"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/integrator"
	"github.com/dfraymond/goprogressivetracer/pkg/scene"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// BytesPerPixel is the fixed RGB8, no-alpha pixel stride of the output
// buffer.
const BytesPerPixel = 3

// Progress is called after every completed pixel with the running count of
// pixels finished so far, so callers can drive a progress bar without the
// renderer importing one itself.
type Progress func(completed int)

// Buffer is the renderer's output: an immutable-once-returned W·H·3 byte
// buffer in row-major, top-left-first order.
type Buffer struct {
	Pix           []byte
	Width, Height int
}

// renderPixel evaluates one pixel's full sample budget and returns its
// gamma-corrected, clamped RGB8 triple. x, y are in top-left-origin pixel
// coordinates.
func renderPixel(sc *scene.Scene, rng *core.Rng, x, y int) [3]byte {
	width, height := sc.Config.Width, sc.Config.Height
	samples := sc.Config.SamplesPerPixel
	maxDepth := sc.Config.MaxDepth

	background := func(r vec3.Ray) vec3.Vec3 { return sc.Background }

	c := vec3.New(0, 0, 0)
	for s := 0; s < samples; s++ {
		u := (float64(x) + rng.Float64()) / float64(width-1)
		v := (float64(height-y) + rng.Float64()) / float64(height-1)
		r := sc.Camera.GetRay(rng, u, v)
		c = c.Add(integrator.Radiance(r, sc.World, sc.Lights, background, rng, maxDepth))
	}
	c = c.Div(float64(samples))

	return [3]byte{
		toByte(c.X),
		toByte(c.Y),
		toByte(c.Z),
	}
}

// toByte applies the canonical gamma-2 tonemap (sqrt) and clamps to
// [0, 0.999] before scaling to an 8-bit channel; the byte conversion
// truncates toward zero.
func toByte(channel float64) byte {
	gammaCorrected := math.Sqrt(math.Max(0, channel))
	clamped := math.Min(math.Max(gammaCorrected, 0), 0.999)
	return byte(clamped * 256)
}

// NewBuffer allocates a zeroed buffer sized for the scene's configured
// dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Pix: make([]byte, width*height*BytesPerPixel), Width: width, Height: height}
}

func (b *Buffer) set(x, y int, rgb [3]byte) {
	i := (y*b.Width + x) * BytesPerPixel
	b.Pix[i] = rgb[0]
	b.Pix[i+1] = rgb[1]
	b.Pix[i+2] = rgb[2]
}
