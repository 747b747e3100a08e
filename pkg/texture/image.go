package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

// Image is a texture backed by a decoded RGB byte buffer, looked up by
// nearest-neighbour UV (clamped, with V flipped so v=0 is the bottom row as
// in standard image texture conventions).
type Image struct {
	pix           []byte
	width, height int
}

// LoadImage decodes the image at path eagerly: scene construction is the
// only time this tracer touches the filesystem for a texture, never during
// rendering.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(b >> 8)
		}
	}
	return &Image{pix: pix, width: w, height: h}, nil
}

// Value implements core.Texture. p is ignored; only (u, v) address the
// image.
func (img *Image) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	if img.width == 0 || img.height == 0 {
		return vec3.New(0, 1, 1) // cyan: surfaces a missing/zero-size texture
	}
	u = clamp01(u)
	v = 1 - clamp01(v) // flip V: image row 0 is the top, v=0 is the bottom

	i := int(u * float64(img.width))
	j := int(v * float64(img.height))
	if i >= img.width {
		i = img.width - 1
	}
	if j >= img.height {
		j = img.height - 1
	}

	const colorScale = 1.0 / 255.0
	idx := (j*img.width + i) * 3
	return vec3.New(
		colorScale*float64(img.pix[idx]),
		colorScale*float64(img.pix[idx+1]),
		colorScale*float64(img.pix[idx+2]),
	)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
