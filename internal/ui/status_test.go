package ui

import (
	"strings"
	"testing"

	"lifeview/internal/sims/life"
	"lifeview/internal/viewport"
)

func TestStatusOf(t *testing.T) {
	world := life.New(life.DefaultConfig())
	world.Step()
	ctrl := viewport.New(viewport.DefaultOptions())
	ctrl.MouseMove(viewport.Point{X: 10, Y: 10})
	ctrl.BeginDrag(viewport.ButtonMiddle)
	ctrl.MouseMove(viewport.Point{X: 25, Y: 4})
	ctrl.KeyPress(viewport.KeySpace)

	s := StatusOf(ctrl, world, viewport.Size{W: 100, H: 50})
	if s.Engine != "life" || s.Generation != 1 || !s.Paused || !s.Dragging {
		t.Fatalf("unexpected status %+v", s)
	}
	// pointer 25,4 minus pan 15,-6 minus half window 50,25.
	if s.Cursor.X != -40 || s.Cursor.Y != -15 {
		t.Fatalf("cursor = %+v", s.Cursor)
	}

	line := s.String()
	for _, want := range []string{"life  gen 1  paused", "zoom 1.00", "pan +15,-6", "(drag)", "cell -40,-15"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
}
