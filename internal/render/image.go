package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lifeview/internal/viewport"
)

// ImageCanvas rasterizes frames into an in-memory RGBA image. It doubles as
// the Window for headless renders.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas allocates a w*h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size reports the canvas dimensions in pixels.
func (c *ImageCanvas) Size() viewport.Size {
	b := c.img.Bounds()
	return viewport.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Clear fills the whole canvas.
func (c *ImageCanvas) Clear(col color.Color) {
	fillRGBA(c.img, c.img.Rect, col)
}

// FillUnitRect fills every pixel whose centre lies inside the transformed
// unit square.
func (c *ImageCanvas) FillUnitRect(x, y float64, t viewport.Affine, col color.Color) {
	fillRGBA(c.img, coverage(x, y, t), col)
}

// Reset is a no-op; the canvas keeps no transform state between draws.
func (c *ImageCanvas) Reset() {}

// Image exposes the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Caption draws s in the top-left corner using the 7x13 bitmap face.
func (c *ImageCanvas) Caption(s string, col color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(4, 4+face.Ascent),
	}
	d.DrawString(s)
}

// Upscaled returns a copy of the canvas enlarged by factor with nearest
// neighbour sampling so cells keep hard edges.
func (c *ImageCanvas) Upscaled(factor int) *image.RGBA {
	if factor <= 1 {
		return c.img
	}
	b := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the canvas, enlarged by factor, as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer, factor int) error {
	if err := png.Encode(w, c.Upscaled(factor)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
