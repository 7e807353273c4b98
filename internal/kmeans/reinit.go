package kmeans

import "github.com/jmylchreest/kpalette/internal/colour"

const explorationProbability = 0.1

// reinitialise gives every unused palette entry a new candidate colour: a
// random used entry nudged up by one on each channel with even odds, or, one
// time in ten, the colour of a random pixel. The unused set itself is left
// for the next update to rebuild.
func (e *Engine) reinitialise() {
	e.state = StateReinitializing

	if len(e.unused) == len(e.palette) {
		for _, j := range e.unused {
			e.palette[j] = e.randomPixel()
		}
		return
	}

	for _, j := range e.unused {
		src := e.rng.Intn(e.k)
		for !e.used[src] {
			src = e.rng.Intn(e.k)
		}

		c := e.palette[src]
		for _, step := range []colour.Packed{colour.BlueStep, colour.GreenStep, colour.RedStep} {
			if e.rng.Intn(2) == 1 {
				c = c.Increment(step)
			}
		}
		if e.rng.Float64() < explorationProbability {
			c = e.randomPixel()
		}
		e.palette[j] = c
	}
}
