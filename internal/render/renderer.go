//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeview/internal/viewport"
)

// ScreenCanvas draws cells onto an ebiten image by stretching a single white
// pixel over each transformed unit square.
type ScreenCanvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	op    ebiten.DrawImageOptions
}

// NewScreenCanvas allocates the shared pixel image.
func NewScreenCanvas() *ScreenCanvas {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &ScreenCanvas{pixel: px}
}

// Begin targets dst for the next frame.
func (s *ScreenCanvas) Begin(dst *ebiten.Image) { s.dst = dst }

// Size reports the size of the current target.
func (s *ScreenCanvas) Size() viewport.Size {
	if s.dst == nil {
		return viewport.Size{}
	}
	b := s.dst.Bounds()
	return viewport.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Clear fills the target.
func (s *ScreenCanvas) Clear(c color.Color) {
	if s.dst != nil {
		s.dst.Fill(c)
	}
}

// FillUnitRect draws the unit square at (x, y) under t.
func (s *ScreenCanvas) FillUnitRect(x, y float64, t viewport.Affine, c color.Color) {
	if s.dst == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(x, y)
	s.op.GeoM.Concat(GeoM(t))
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, &s.op)
}

// Reset drops the per-draw transform and colour so the next frame starts
// clean.
func (s *ScreenCanvas) Reset() {
	s.op.GeoM.Reset()
	s.op.ColorScale.Reset()
}

// GeoM converts an Affine into the equivalent ebiten matrix.
func GeoM(t viewport.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.B)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.C)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}
