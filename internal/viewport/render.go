package viewport

import (
	"image/color"
	"io"
	"strings"

	"lifeview/internal/core"
)

// Window reports the current drawable size. It is queried on every call
// that needs it, so resizes need no separate event.
type Window interface {
	Size() Size
}

// Canvas is the drawing surface a frontend provides for one frame.
type Canvas interface {
	Clear(c color.Color)
	// FillUnitRect fills the 1x1 square with top-left corner (x, y) after
	// mapping it through t.
	FillUnitRect(x, y float64, t Affine, c color.Color)
	// Reset drops any transform or clip state pushed during the frame.
	Reset()
}

// Render clears the frame and draws every live cell of e as a unit square.
func (c *Controller) Render(e core.Engine, w Window, cv Canvas) {
	defer cv.Reset()

	win := w.Size()
	cv.Clear(c.opts.Background)

	t := c.Transform(win)
	hw, hh := win.W/2, win.H/2
	for cell := range e.LiveCells() {
		cv.FillUnitRect(float64(cell.X)+hw, float64(cell.Y)+hh, t, c.opts.Alive)
	}
}

// TextRows lays the live cells of e out as rows of '*' and ' ' covering the
// engine's bounds. Row r, column k holds cell (XMin+k, YMin+r).
func TextRows(e core.Engine) []string {
	b := e.Bounds()
	if b.Empty() {
		return nil
	}
	grid := make([][]byte, b.Height())
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", b.Width()))
	}
	for cell := range e.LiveCells() {
		if cell.X < b.XMin || cell.X > b.XMax || cell.Y < b.YMin || cell.Y > b.YMax {
			continue
		}
		grid[cell.Y-b.YMin][cell.X-b.XMin] = '*'
	}
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}

// RenderText writes the text layout of e followed by a blank line.
func (c *Controller) RenderText(e core.Engine, w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(TextRows(e), "\n")+"\n\n")
	return err
}
