package kmeans

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// initialisePalette fills the palette with k colours sampled from random
// pixels, resampling the whole set while it contains duplicates. After
// maxInitAttempts the last sample is kept as is and a degenerate warning is
// recorded.
func (e *Engine) initialisePalette() {
	e.state = StateInitializing

	// Packed colours fit in 24 bits, so both sets are bitmaps.
	sample := roaring.New()
	seen := roaring.New()
	for attempt := 0; attempt < e.cfg.maxInitAttempts; attempt++ {
		sample.Clear()
		for i := range e.palette {
			c := e.randomPixel()
			e.palette[i] = c
			sample.Add(uint32(c))
			seen.Add(uint32(c))
		}
		if sample.GetCardinality() == uint64(e.k) {
			return
		}
	}

	e.warn(&DegenerateInputError{
		Reason:    ReasonInitExhausted,
		Iteration: 0,
		Detail: fmt.Sprintf("no %d distinct seed colours after %d attempts, %d distinct colours sampled",
			e.k, e.cfg.maxInitAttempts, seen.GetCardinality()),
	})
}

// randomPixel returns the colour of a uniformly random pixel.
func (e *Engine) randomPixel() colour.Packed {
	return e.img.Pixel(e.rng.Intn(e.width), e.rng.Intn(e.height))
}
