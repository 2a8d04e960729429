package life

import (
	"iter"

	"lifeview/internal/core"
)

// Life implements a Life-like automaton on an unbounded sparse grid.
//
// Erased cells stay in the map marked false until CleanUp, so a burst of
// edits does not churn the map.
type Life struct {
	cfg    Config
	cells  map[core.Coord]bool
	bounds core.Bounds
	dirty  bool
	gen    int
}

// New returns an empty world using cfg.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, cells: map[core.Coord]bool{}, bounds: core.EmptyBounds}
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "life" }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Set marks c alive or dead.
func (l *Life) Set(c core.Coord, alive bool) {
	if alive {
		if !l.cells[c] {
			l.cells[c] = true
			l.dirty = true
		}
		return
	}
	if l.cells[c] {
		l.cells[c] = false
		l.dirty = true
	}
}

// Alive reports whether c is currently alive.
func (l *Life) Alive(c core.Coord) bool { return l.cells[c] }

// Len returns the number of live cells.
func (l *Life) Len() int {
	n := 0
	for _, alive := range l.cells {
		if alive {
			n++
		}
	}
	return n
}

// CleanUp drops erased entries and refreshes the cached bounds.
func (l *Life) CleanUp() {
	for c, alive := range l.cells {
		if !alive {
			delete(l.cells, c)
		}
	}
	l.recomputeBounds()
}

// LiveCells enumerates the alive coordinates in unspecified order.
func (l *Life) LiveCells() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for c, alive := range l.cells {
			if alive && !yield(c) {
				return
			}
		}
	}
}

// Bounds returns the inclusive box around all live cells.
func (l *Life) Bounds() core.Bounds {
	if l.dirty {
		l.recomputeBounds()
	}
	return l.bounds
}

func (l *Life) recomputeBounds() {
	b := core.EmptyBounds
	for c, alive := range l.cells {
		if alive {
			b = b.Include(c)
		}
	}
	l.bounds = b
	l.dirty = false
}

// Reset clears the world and seeds the configured region. A zero seed uses
// the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	clear(l.cells)
	l.gen = 0
	core.NewRNG(seed).FillRegion(l.cfg.Width, l.cfg.Height, l.cfg.Density, func(c core.Coord) {
		l.cells[c] = true
	})
	l.recomputeBounds()
}

// Step advances the world by one generation. B0 rules are not supported on
// an unbounded grid; the birth-on-zero flag is ignored.
func (l *Life) Step() {
	counts := make(map[core.Coord]int, len(l.cells)*4)
	for c, alive := range l.cells {
		if !alive {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[core.Coord{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
	}

	next := make(map[core.Coord]bool, len(counts))
	for c, n := range counts {
		if l.cells[c] {
			if l.cfg.Rule.Survive[n] {
				next[c] = true
			}
			continue
		}
		if l.cfg.Rule.Birth[n] {
			next[c] = true
		}
	}
	if l.cfg.Rule.Survive[0] {
		// Isolated cells never appear in counts.
		for c, alive := range l.cells {
			if _, seen := counts[c]; alive && !seen {
				next[c] = true
			}
		}
	}
	l.cells = next
	l.gen++
	l.recomputeBounds()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Automaton {
		return New(FromMap(cfg))
	})
}
