//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel in the top-left corner of the view.
type HUD struct {
	lines   []string
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update caches the lines for the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.lines = s.Lines()
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(h.lines)*lineHeight + panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	for i, line := range h.lines {
		y := panelPadding + headerBaseline + i*lineHeight
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

const (
	panelPadding   = 6
	lineHeight     = 16
	headerBaseline = 6
)
