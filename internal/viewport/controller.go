// Package viewport turns pointer and key input into camera state for a
// cellular-automaton view and maps between screen and world coordinates.
//
// A Controller is not safe for concurrent use. Frontends feed it one event at
// a time from their event loop and pass the engine in only for the duration
// of a click or a frame.
package viewport

import (
	"image/color"
	"math"

	"lifeview/internal/core"
)

// ZoomStep is the zoom change per wheel notch.
const ZoomStep = 0.1

// Options configures a Controller. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Bindings Bindings

	// MinZoom clamps zoom-out when positive. Zero leaves zoom unbounded, so
	// it can reach zero or go negative.
	MinZoom float64
	// ProportionalScroll scales ZoomStep by non-notch wheel deltas instead
	// of ignoring them.
	ProportionalScroll bool

	Alive      color.Color
	Background color.Color
}

// DefaultOptions returns unclamped, notch-only zoom with red cells on white.
func DefaultOptions() Options {
	return Options{
		Bindings:   DefaultBindings(),
		Alive:      color.RGBA{R: 0xff, A: 0xff},
		Background: color.White,
	}
}

// dragState is either idle or dragging. Both carry the pointer position and
// pan offset the current or next drag is measured from; only dragging lets
// the offset follow the pointer.
type dragState interface {
	isDragState()
}

type idle struct {
	start  Point
	anchor Point
}

type dragging struct {
	start  Point
	anchor Point
}

func (idle) isDragState()     {}
func (dragging) isDragState() {}

// Controller owns the camera: pause flag, zoom, pan offset and the drag
// state machine.
type Controller struct {
	opts Options

	paused  bool
	zoom    float64
	offset  Point
	pointer Point
	drag    dragState
}

// New returns a controller at zoom 1 with no pan, not paused and idle.
func New(opts Options) *Controller {
	if opts.Alive == nil {
		opts.Alive = DefaultOptions().Alive
	}
	if opts.Background == nil {
		opts.Background = DefaultOptions().Background
	}
	return &Controller{opts: opts, zoom: 1, drag: idle{}}
}

// IsPaused reports whether automaton stepping is suspended.
func (c *Controller) IsPaused() bool { return c.paused }

// Zoom returns the current scale factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// Offset returns the current pan translation in screen units.
func (c *Controller) Offset() Point { return c.offset }

// Pointer returns the last known pointer position.
func (c *Controller) Pointer() Point { return c.pointer }

// Dragging reports whether a pan drag is in progress.
func (c *Controller) Dragging() bool {
	_, ok := c.drag.(dragging)
	return ok
}

// Options returns the options the controller was built with.
func (c *Controller) Options() Options { return c.opts }

// KeyPress flips the pause flag when k is the pause key.
func (c *Controller) KeyPress(k Key) {
	if k == c.opts.Bindings.Pause {
		c.paused = !c.paused
	}
}

// BeginDrag enters the dragging state when b is the pan button. The drag is
// measured from the origin captured by the last idle pointer move.
func (c *Controller) BeginDrag(b Button) {
	if b != c.opts.Bindings.Pan {
		return
	}
	if s, ok := c.drag.(idle); ok {
		c.drag = dragging(s)
	}
}

// EndDrag returns to idle when b is the pan button.
func (c *Controller) EndDrag(b Button) {
	if b != c.opts.Bindings.Pan {
		return
	}
	if _, ok := c.drag.(dragging); ok {
		c.drag = idle{start: c.pointer, anchor: c.offset}
	}
}

// MouseRelease handles a button release.
func (c *Controller) MouseRelease(b Button) { c.EndDrag(b) }

// MousePress handles a button press at the last known pointer position.
func (c *Controller) MousePress(b Button, e core.Engine, w Window) {
	if b == c.opts.Bindings.Pan {
		c.BeginDrag(b)
		return
	}
	c.OnClick(b, c.ScreenToWorld(c.pointer, w.Size()), e)
}

// OnClick paints or erases the cell at pos. Every button except pan ends
// with exactly one CleanUp; pan starts a drag and leaves e untouched.
func (c *Controller) OnClick(b Button, pos core.Coord, e core.Engine) {
	switch b {
	case c.opts.Bindings.Pan:
		c.BeginDrag(b)
		return
	case c.opts.Bindings.Paint:
		e.Set(pos, true)
	case c.opts.Bindings.Erase:
		e.Set(pos, false)
	}
	e.CleanUp()
}

// MouseMove records a new pointer position. While idle the drag origin
// follows the pointer; while dragging the offset is recomputed from the
// frozen origin so long drags never accumulate rounding error.
func (c *Controller) MouseMove(p Point) {
	c.pointer = p
	switch s := c.drag.(type) {
	case dragging:
		c.offset = Point{
			X: p.X - s.start.X + s.anchor.X,
			Y: p.Y - s.start.Y + s.anchor.Y,
		}
	default:
		c.drag = idle{start: p, anchor: c.offset}
	}
}

// MouseScroll zooms by one step per wheel notch. Only the vertical axis is
// read and only exact notch values count unless ProportionalScroll is set.
func (c *Controller) MouseScroll(delta Point) {
	switch {
	case delta.Y == ScrollUp:
		c.zoom += ZoomStep
	case delta.Y == ScrollDown:
		c.zoom -= ZoomStep
	case c.opts.ProportionalScroll:
		c.zoom += delta.Y * ZoomStep
	default:
		return
	}
	if c.opts.MinZoom > 0 && c.zoom < c.opts.MinZoom {
		c.zoom = c.opts.MinZoom
	}
}

// ResetView restores zoom 1 and zero pan. A drag in progress continues from
// the current pointer.
func (c *Controller) ResetView() {
	c.zoom = 1
	c.offset = Point{}
	if _, ok := c.drag.(dragging); ok {
		c.drag = dragging{start: c.pointer}
		return
	}
	c.drag = idle{start: c.pointer}
}

// ScreenToWorld maps a screen position to the world cell under it, flooring
// toward negative infinity so cells either side of zero stay distinct.
func (c *Controller) ScreenToWorld(p Point, win Size) core.Coord {
	x := ((p.X - c.offset.X) - win.W/2) / c.zoom
	y := ((p.Y - c.offset.Y) - win.H/2) / c.zoom
	return core.Coord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Transform returns the world-to-screen transform for a window of size win.
// Cells are drawn at (x+W/2, y+H/2) before it is applied.
func (c *Controller) Transform(win Size) Affine {
	hw, hh := win.W/2, win.H/2
	return Identity.
		Translate(-hw, -hh).
		Scale(c.zoom, c.zoom).
		Translate(hw, hh).
		Translate(c.offset.X, c.offset.Y)
}
