package core

import (
	"image"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Scatter calls fn for every cell of area selected with probability density.
// Cells are visited row by row so the result only depends on the seed.
func (r *RNG) Scatter(area image.Rectangle, density float64, fn func(Cell)) {
	if density <= 0 || area.Empty() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if density >= 1 || r.r.Float64() < density {
				fn(Cell{X: x, Y: y})
			}
		}
	}
}
