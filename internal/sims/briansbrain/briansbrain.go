package briansbrain

import (
	"iter"
	"strconv"

	"lifeview/internal/core"
)

type state uint8

const (
	stateDead state = iota
	stateOn
	stateDying
)

// Config controls the seeded region of a Brain world.
type Config struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 48, Density: 0.125, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain on an unbounded sparse grid. Painting a
// cell makes it fire; both firing and dying cells count as live for drawing.
type Brain struct {
	cfg   Config
	cells map[core.Coord]state
	gen   int
}

// New creates an empty Brain world.
func New(cfg Config) *Brain {
	return &Brain{cfg: cfg, cells: map[core.Coord]state{}}
}

// Name identifies the engine.
func (b *Brain) Name() string { return "briansbrain" }

// Generation returns the number of steps since the last Reset.
func (b *Brain) Generation() int { return b.gen }

// Set makes c fire when alive is true and clears it otherwise.
func (b *Brain) Set(c core.Coord, alive bool) {
	if alive {
		b.cells[c] = stateOn
		return
	}
	if _, ok := b.cells[c]; ok {
		b.cells[c] = stateDead
	}
}

// CleanUp removes cleared entries.
func (b *Brain) CleanUp() {
	for c, s := range b.cells {
		if s == stateDead {
			delete(b.cells, c)
		}
	}
}

// LiveCells enumerates firing and dying cells.
func (b *Brain) LiveCells() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for c, s := range b.cells {
			if s != stateDead && !yield(c) {
				return
			}
		}
	}
}

// Bounds returns the inclusive box around all live cells.
func (b *Brain) Bounds() core.Bounds {
	out := core.EmptyBounds
	for c := range b.LiveCells() {
		out = out.Include(c)
	}
	return out
}

// Reset clears the world and seeds firing cells. A zero seed uses the
// configured seed.
func (b *Brain) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	clear(b.cells)
	b.gen = 0
	core.NewRNG(seed).FillRegion(b.cfg.Width, b.cfg.Height, b.cfg.Density, func(c core.Coord) {
		b.cells[c] = stateOn
	})
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	firing := map[core.Coord]int{}
	next := make(map[core.Coord]state, len(b.cells))
	for c, s := range b.cells {
		switch s {
		case stateOn:
			next[c] = stateDying
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					firing[core.Coord{X: c.X + dx, Y: c.Y + dy}]++
				}
			}
		case stateDying:
			// becomes dead: dropped from next
		}
	}
	for c, n := range firing {
		if n != 2 {
			continue
		}
		if s := b.cells[c]; s == stateOn || s == stateDying {
			continue
		}
		next[c] = stateOn
	}
	b.cells = next
	b.gen++
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Automaton {
		return New(FromMap(cfg))
	})
}
