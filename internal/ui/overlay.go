//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeview/internal/viewport"
)

// Overlay draws optional guides on top of the cells: the world axes through
// the origin and an outline around the cell under the pointer.
type Overlay struct {
	showAxes   bool
	showCursor bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance with the cursor outline on.
func NewOverlay() *Overlay {
	o := &Overlay{showCursor: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles guides: G for axes, C for the cursor outline.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showAxes = !o.showAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the enabled guides for the controller's current view.
func (o *Overlay) Draw(screen *ebiten.Image, ctrl *viewport.Controller, win viewport.Size) {
	t := ctrl.Transform(win)
	hw, hh := win.W/2, win.H/2

	if o.showAxes {
		ox, oy := t.Apply(hw, hh)
		col := color.RGBA{R: 90, G: 130, B: 170, A: 160}
		o.drawLine(screen, 0, oy, win.W, oy, 1, col)
		o.drawLine(screen, ox, 0, ox, win.H, 1, col)
	}

	if o.showCursor && !ctrl.Dragging() {
		cell := ctrl.ScreenToWorld(ctrl.Pointer(), win)
		x0, y0 := t.Apply(float64(cell.X)+hw, float64(cell.Y)+hh)
		x1, y1 := t.Apply(float64(cell.X)+hw+1, float64(cell.Y)+hh+1)
		col := color.RGBA{R: 40, G: 40, B: 40, A: 200}
		o.drawLine(screen, x0, y0, x1, y0, 1, col)
		o.drawLine(screen, x1, y0, x1, y1, 1, col)
		o.drawLine(screen, x1, y1, x0, y1, 1, col)
		o.drawLine(screen, x0, y1, x0, y0, 1, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
