// Package term runs the viewer inside a terminal using tcell. One terminal
// cell is one screen unit; pointer positions are reported at cell centres.
package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/ui"
	"lifeview/internal/viewport"
)

// ErrQuit is returned by HandleEvent when the user asks to leave.
var ErrQuit = errors.New("quit")

// statusRows is the number of bottom rows kept for the status line.
const statusRows = 1

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button viewport.Button
}{
	{tcell.ButtonPrimary, viewport.ButtonLeft},
	{tcell.ButtonSecondary, viewport.ButtonRight},
	{tcell.ButtonMiddle, viewport.ButtonMiddle},
}

// Frontend drives a session from tcell events.
type Frontend struct {
	screen tcell.Screen
	canvas *render.CellCanvas
	s      *session.Session
	tick   time.Duration

	buttons tcell.ButtonMask
	pointer viewport.Point
	moved   bool
	reseed  func() int64
}

// New wires a frontend to an initialised screen. The automaton advances
// once per tick while not paused.
func New(screen tcell.Screen, s *session.Session, tick time.Duration) *Frontend {
	if tick <= 0 {
		tick = time.Second / 15
	}
	return &Frontend{
		screen: screen,
		canvas: render.NewCellCanvas(screen, statusRows),
		s:      s,
		tick:   tick,
		reseed: func() int64 { return time.Now().UnixNano() },
	}
}

// Size reports the drawable area; Frontend is the controller's Window.
func (f *Frontend) Size() viewport.Size { return f.canvas.Size() }

// Run draws and handles events until ctx is done or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				f.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
				return
			case t := <-ticker.C:
				f.screen.PostEvent(tcell.NewEventInterrupt(t))
			}
		}
	}()

	for {
		f.Draw()
		f.screen.Show()

		ev := f.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := f.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// HandleEvent applies a single tcell event.
func (f *Frontend) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(error); ok {
			return ErrQuit
		}
		f.s.Advance(false)
	}
	return nil
}

func (f *Frontend) handleKey(ev *tcell.EventKey) error {
	ctrl := f.s.Ctrl
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyRune:
	default:
		return nil
	}
	switch ev.Rune() {
	case 'q':
		return ErrQuit
	case ' ':
		ctrl.KeyPress(viewport.KeySpace)
	case 'p':
		ctrl.KeyPress(viewport.KeyP)
	case 'n':
		f.s.Advance(true)
	case 'r':
		ctrl.ResetView()
	case 's':
		f.s.Reseed(f.reseed())
	}
	return nil
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	ctrl := f.s.Ctrl
	x, y := ev.Position()
	p := viewport.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	if !f.moved || p != f.pointer {
		f.pointer = p
		f.moved = true
		ctrl.MouseMove(p)
	}

	btn := ev.Buttons()
	if btn&wheelMask != 0 {
		// Wheel events carry no held buttons; they must not end a drag.
		if btn&tcell.WheelUp != 0 {
			ctrl.MouseScroll(viewport.Point{Y: viewport.ScrollUp})
		}
		if btn&tcell.WheelDown != 0 {
			ctrl.MouseScroll(viewport.Point{Y: viewport.ScrollDown})
		}
		return
	}
	for _, m := range buttonMap {
		was := f.buttons&m.mask != 0
		is := btn&m.mask != 0
		switch {
		case is && !was:
			ctrl.MousePress(m.button, f.s.Sim, f)
		case was && !is:
			ctrl.MouseRelease(m.button)
		}
	}
	f.buttons = btn & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
}

// Draw renders the cells and the status line without showing them.
func (f *Frontend) Draw() {
	f.s.Ctrl.Render(f.s.Sim, f, f.canvas)
	f.drawStatus()
}

func (f *Frontend) drawStatus() {
	w, h := f.screen.Size()
	if h < statusRows || w <= 0 {
		return
	}
	y := h - statusRows
	line := runewidth.Truncate(ui.StatusOf(f.s.Ctrl, f.s.Sim, f.Size()).String(), w, "…")
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		f.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		f.screen.SetContent(x, y, ' ', nil, style)
	}
}
