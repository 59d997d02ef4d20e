package life

import "math/rand/v2"

// NewRNG returns a deterministic random source for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize fills the grid from rng, making each cell alive with
// probability fill.
func (g *Grid) Randomize(rng *rand.Rand, fill float64) {
	for i := range g.cur {
		if rng.Float64() < fill {
			g.cur[i] = Alive
		} else {
			g.cur[i] = Dead
		}
	}
}
