package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"lifeview/internal/viewport"
)

// CellRune is drawn for every terminal cell covered by a live world cell.
const CellRune = '█'

// CellCanvas draws onto a tcell screen, one terminal cell per screen unit.
// The bottom Reserved rows are left for a status line.
type CellCanvas struct {
	screen   tcell.Screen
	Reserved int
	bg       tcell.Color
	clip     image.Rectangle
}

// NewCellCanvas wraps screen.
func NewCellCanvas(screen tcell.Screen, reserved int) *CellCanvas {
	return &CellCanvas{screen: screen, Reserved: reserved, bg: tcell.ColorDefault}
}

// Size reports the drawable area in terminal cells.
func (c *CellCanvas) Size() viewport.Size {
	w, h := c.screen.Size()
	h -= c.Reserved
	if h < 0 {
		h = 0
	}
	return viewport.Size{W: float64(w), H: float64(h)}
}

// Clear fills the drawable area with col and clips later draws to it.
func (c *CellCanvas) Clear(col color.Color) {
	s := c.Size()
	c.clip = image.Rect(0, 0, int(s.W), int(s.H))
	c.bg = TermColor(col)
	style := tcell.StyleDefault.Background(c.bg)
	for y := c.clip.Min.Y; y < c.clip.Max.Y; y++ {
		for x := c.clip.Min.X; x < c.clip.Max.X; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillUnitRect fills the terminal cells covered by the transformed square.
func (c *CellCanvas) FillUnitRect(x, y float64, t viewport.Affine, col color.Color) {
	r := coverage(x, y, t).Intersect(c.clip)
	if r.Empty() {
		return
	}
	style := tcell.StyleDefault.Foreground(TermColor(col)).Background(c.bg)
	for ty := r.Min.Y; ty < r.Max.Y; ty++ {
		for tx := r.Min.X; tx < r.Max.X; tx++ {
			c.screen.SetContent(tx, ty, CellRune, nil, style)
		}
	}
}

// Reset drops the clip set by Clear.
func (c *CellCanvas) Reset() { c.clip = image.Rectangle{} }

// TermColor converts an image colour to a true-colour terminal colour.
func TermColor(col color.Color) tcell.Color {
	r, g, b, _ := col.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
