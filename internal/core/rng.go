package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// FillRegion calls set for every cell of the w*h box centred on the origin
// that passes a density roll.
func (r *RNG) FillRegion(w, h int, density float64, set func(Coord)) {
	x0 := -w / 2
	y0 := -h / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(density) {
				set(Coord{X: x0 + x, Y: y0 + y})
			}
		}
	}
}
