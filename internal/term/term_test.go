package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/viewport"
)

func newFrontend(t *testing.T, w, h int) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	cfg := config.NewConfig()
	cfg.EngineOptions["density"] = "0"
	s, err := session.New(cfg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return New(screen, s, time.Millisecond), screen
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClickPaintsAndErases(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	// Drawable area is 40x20, so terminal cell (20,10) is world (0,0).
	f.HandleEvent(mouse(22, 7, tcell.ButtonNone))
	f.HandleEvent(mouse(22, 7, tcell.ButtonPrimary))
	f.HandleEvent(mouse(22, 7, tcell.ButtonNone))

	want := core.Coord{X: 2, Y: -3}
	if b := f.s.Sim.Bounds(); b != (core.Bounds{XMin: 2, XMax: 2, YMin: -3, YMax: -3}) {
		t.Fatalf("expected only %+v alive, bounds %+v", want, b)
	}

	f.HandleEvent(mouse(22, 7, tcell.ButtonSecondary))
	f.HandleEvent(mouse(22, 7, tcell.ButtonNone))
	if !f.s.Sim.Bounds().Empty() {
		t.Fatalf("right click should erase, bounds %+v", f.s.Sim.Bounds())
	}
}

func TestHeldButtonPaintsOnce(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(mouse(20, 10, tcell.ButtonPrimary))
	// Dragging with the paint button held reports motion, not new presses.
	f.HandleEvent(mouse(21, 10, tcell.ButtonPrimary))
	f.HandleEvent(mouse(22, 10, tcell.ButtonPrimary))
	n := 0
	for range f.s.Sim.LiveCells() {
		n++
	}
	if n != 1 {
		t.Fatalf("expected a single painted cell, got %d", n)
	}
}

func TestMiddleDragPans(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(mouse(10, 10, tcell.ButtonNone))
	f.HandleEvent(mouse(10, 10, tcell.ButtonMiddle))
	if !f.s.Ctrl.Dragging() {
		t.Fatal("middle press should start a drag")
	}
	f.HandleEvent(mouse(14, 7, tcell.ButtonMiddle))
	f.HandleEvent(mouse(14, 7, tcell.ButtonNone))
	if f.s.Ctrl.Dragging() {
		t.Fatal("release should end the drag")
	}
	if got := f.s.Ctrl.Offset(); got != (viewport.Point{X: 4, Y: -3}) {
		t.Fatalf("offset = %+v, want {4 -3}", got)
	}
}

func TestWheelZooms(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(mouse(5, 5, tcell.WheelUp))
	f.HandleEvent(mouse(5, 5, tcell.WheelUp))
	f.HandleEvent(mouse(5, 5, tcell.WheelDown))
	if z := f.s.Ctrl.Zoom(); z < 1.0999 || z > 1.1001 {
		t.Fatalf("zoom = %f, want 1.1", z)
	}
}

func TestWheelDuringDragKeepsPanning(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(mouse(10, 10, tcell.ButtonNone))
	f.HandleEvent(mouse(10, 10, tcell.ButtonMiddle))
	f.HandleEvent(mouse(14, 10, tcell.ButtonMiddle))
	// Wheel events report no held buttons.
	f.HandleEvent(mouse(14, 10, tcell.WheelUp))
	if !f.s.Ctrl.Dragging() {
		t.Fatal("wheel notch ended the drag")
	}
	f.HandleEvent(mouse(18, 10, tcell.ButtonMiddle))
	if !f.s.Ctrl.Dragging() {
		t.Fatal("drag should still be active")
	}
	if got := f.s.Ctrl.Offset(); got != (viewport.Point{X: 8, Y: 0}) {
		t.Fatalf("offset = %+v, want {8 0}", got)
	}
	if z := f.s.Ctrl.Zoom(); z < 1.0999 || z > 1.1001 {
		t.Fatalf("zoom = %f, want 1.1", z)
	}
}

func TestWheelWhilePaintingDoesNotRepaint(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(mouse(20, 10, tcell.ButtonPrimary))
	f.HandleEvent(mouse(20, 10, tcell.WheelDown))
	f.HandleEvent(mouse(25, 10, tcell.ButtonPrimary))
	n := 0
	for range f.s.Sim.LiveCells() {
		n++
	}
	if n != 1 {
		t.Fatalf("expected a single painted cell, got %d", n)
	}
}

func TestKeys(t *testing.T) {
	f, _ := newFrontend(t, 40, 21)
	f.HandleEvent(key(' '))
	if !f.s.Ctrl.IsPaused() {
		t.Fatal("space should pause")
	}
	f.HandleEvent(tcell.NewEventInterrupt(nil))
	if f.s.Sim.Generation() != 0 {
		t.Fatal("ticks must not step while paused")
	}
	f.HandleEvent(key('n'))
	if f.s.Sim.Generation() != 1 {
		t.Fatal("n should single-step while paused")
	}
	f.HandleEvent(key(' '))
	f.HandleEvent(tcell.NewEventInterrupt(nil))
	if f.s.Sim.Generation() != 2 {
		t.Fatal("ticks should step while running")
	}

	f.reseed = func() int64 { return 5 }
	f.HandleEvent(key('s'))
	if f.s.Seed != 5 || f.s.Sim.Generation() != 0 {
		t.Fatal("s should reseed the engine")
	}

	if err := f.HandleEvent(key('q')); !errors.Is(err, ErrQuit) {
		t.Fatalf("q should quit, got %v", err)
	}
	if err := f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !errors.Is(err, ErrQuit) {
		t.Fatalf("escape should quit, got %v", err)
	}
}

func TestDrawShowsCellsAndStatus(t *testing.T) {
	f, screen := newFrontend(t, 60, 11)
	f.s.Sim.Set(core.Coord{X: 0, Y: 0}, true)
	f.Draw()

	if r, _, _, _ := screen.GetContent(30, 5); r != render.CellRune {
		t.Fatalf("origin cell should be drawn at (30,5), got %q", r)
	}
	var b strings.Builder
	for x := 0; x < 60; x++ {
		r, _, _, _ := screen.GetContent(x, 10)
		b.WriteRune(r)
	}
	if !strings.HasPrefix(b.String(), "life  gen 0") {
		t.Fatalf("status row = %q", b.String())
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	f, _ := newFrontend(t, 20, 6)
	f.tick = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
