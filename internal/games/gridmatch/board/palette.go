package board

import "math/rand"

// RandomPalette picks colors uniformly from [0, size).
type RandomPalette struct {
	size int
	rng  *rand.Rand
}

// NewRandomPalette creates a palette of size colors driven by rng.
func NewRandomPalette(size int, rng *rand.Rand) *RandomPalette {
	if size < 1 {
		size = 1
	}
	return &RandomPalette{size: size, rng: rng}
}

// Size returns the number of colors.
func (p *RandomPalette) Size() int {
	return p.size
}

// Next returns a random color index.
func (p *RandomPalette) Next() int {
	return p.rng.Intn(p.size)
}
