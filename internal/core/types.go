package core

import "iter"

// Coord identifies a cell on the unbounded world grid.
type Coord struct {
	X, Y int
}

// Bounds is an inclusive bounding box over world coordinates.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Empty reports whether the box covers no cells.
func (b Bounds) Empty() bool { return b.XMax < b.XMin || b.YMax < b.YMin }

// Width returns the number of columns covered by the box.
func (b Bounds) Width() int {
	if b.Empty() {
		return 0
	}
	return b.XMax - b.XMin + 1
}

// Height returns the number of rows covered by the box.
func (b Bounds) Height() int {
	if b.Empty() {
		return 0
	}
	return b.YMax - b.YMin + 1
}

// Include grows the box so it contains c. The zero Bounds is not empty, so
// callers start from EmptyBounds.
func (b Bounds) Include(c Coord) Bounds {
	if b.Empty() {
		return Bounds{XMin: c.X, XMax: c.X, YMin: c.Y, YMax: c.Y}
	}
	b.XMin = min(b.XMin, c.X)
	b.XMax = max(b.XMax, c.X)
	b.YMin = min(b.YMin, c.Y)
	b.YMax = max(b.YMax, c.Y)
	return b
}

// EmptyBounds is a box that contains nothing.
var EmptyBounds = Bounds{XMin: 0, XMax: -1, YMin: 0, YMax: -1}

// Engine is the capability set the viewport needs from an automaton.
type Engine interface {
	// Set marks a single cell alive or dead. Repeated calls are harmless.
	Set(c Coord, alive bool)
	// CleanUp lets the engine compact its representation.
	CleanUp()
	// LiveCells enumerates alive coordinates. The sequence may be ranged over
	// more than once.
	LiveCells() iter.Seq[Coord]
	// Bounds returns the inclusive box around all live cells.
	Bounds() Bounds
}

// Automaton is an Engine that can also be stepped by a frontend.
type Automaton interface {
	Engine
	Name() string
	Reset(seed int64)
	Step()
	Generation() int
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) Automaton

var engines = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available automaton factories.
func Engines() map[string]Factory {
	return engines
}
