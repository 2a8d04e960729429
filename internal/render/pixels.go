package render

import (
	"image"
	"image/color"
	"math"

	"lifeview/internal/viewport"
)

// fillRGBA paints r in img with col, writing Pix directly.
func fillRGBA(img *image.RGBA, r image.Rectangle, col color.Color) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := col.RGBA()
	px := [4]uint8{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			copy(img.Pix[base:base+4], px[:])
			base += 4
		}
	}
}

// coverage returns the integer cells whose centres fall inside the unit
// square at (x, y) after mapping it through t. When the square is smaller
// than a cell and covers no centre, the cell under its midpoint is returned
// so zoomed-out worlds stay visible.
func coverage(x, y float64, t viewport.Affine) image.Rectangle {
	x0, y0, x1, y1 := transformedBox(x, y, t)
	r := image.Rect(
		int(math.Ceil(x0-0.5)), int(math.Ceil(y0-0.5)),
		int(math.Ceil(x1-0.5)), int(math.Ceil(y1-0.5)),
	)
	if r.Empty() {
		mx := int(math.Floor((x0 + x1) / 2))
		my := int(math.Floor((y0 + y1) / 2))
		r = image.Rect(mx, my, mx+1, my+1)
	}
	return r
}

// transformedBox maps the corners of the unit square through t and returns
// their bounding box.
func transformedBox(x, y float64, t viewport.Affine) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
		px, py := t.Apply(p[0], p[1])
		x0, x1 = math.Min(x0, px), math.Max(x1, px)
		y0, y1 = math.Min(y0, py), math.Max(y1, py)
	}
	return x0, y0, x1, y1
}
