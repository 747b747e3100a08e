package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// rgbImage adapts a Buffer to the standard image.Image interface so it can
// be handed to any of the stdlib/x/image encoders without an intermediate
// copy into image.RGBA.
type rgbImage struct {
	buf *Buffer
}

func (r *rgbImage) ColorModel() color.Model { return color.RGBAModel }

func (r *rgbImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.buf.Width, r.buf.Height)
}

func (r *rgbImage) At(x, y int) color.Color {
	i := (y*r.buf.Width + x) * BytesPerPixel
	return color.RGBA{R: r.buf.Pix[i], G: r.buf.Pix[i+1], B: r.buf.Pix[i+2], A: 255}
}

// Encode writes buf to w in the format selected by ext (a file extension
// including the leading dot, e.g. ".png"). An unrecognized extension is a
// configuration error, surfaced before any bytes are written.
func Encode(w io.Writer, buf *Buffer, ext string) error {
	img := &rgbImage{buf: buf}
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("renderer: unrecognized output extension %q", ext)
	}
}

// ExtensionOf returns the lowercased extension (including the dot) of path,
// used to select an encoder from the --output flag.
func ExtensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
