package ui

import (
	"fmt"
	"strings"

	"lifeview/internal/core"
	"lifeview/internal/viewport"
)

// Status is what the HUD and the terminal status line report.
type Status struct {
	Engine     string
	Generation int
	Paused     bool
	Dragging   bool
	Zoom       float64
	Offset     viewport.Point
	Cursor     core.Coord
}

// StatusOf samples the controller and automaton for one frame.
func StatusOf(ctrl *viewport.Controller, sim core.Automaton, win viewport.Size) Status {
	return Status{
		Engine:     sim.Name(),
		Generation: sim.Generation(),
		Paused:     ctrl.IsPaused(),
		Dragging:   ctrl.Dragging(),
		Zoom:       ctrl.Zoom(),
		Offset:     ctrl.Offset(),
		Cursor:     ctrl.ScreenToWorld(ctrl.Pointer(), win),
	}
}

// Lines formats the status for a multi-line panel.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	view := fmt.Sprintf("zoom %.2f  pan %+.0f,%+.0f", s.Zoom, s.Offset.X, s.Offset.Y)
	if s.Dragging {
		view += "  (drag)"
	}
	return []string{
		fmt.Sprintf("%s  gen %d  %s", s.Engine, s.Generation, state),
		view,
		fmt.Sprintf("cell %d,%d", s.Cursor.X, s.Cursor.Y),
	}
}

// String joins Lines for a single status row.
func (s Status) String() string { return strings.Join(s.Lines(), " | ") }
