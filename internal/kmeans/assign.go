package kmeans

import "github.com/jmylchreest/kpalette/internal/colour"

// nearest returns the index of the palette entry closest to p. Ties go to
// the lowest index.
func nearest(p colour.Packed, palette []colour.Packed) int {
	best := 0
	bestDist := colour.Distance(p, palette[0])
	for i := 1; i < len(palette); i++ {
		if d := colour.Distance(p, palette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// assign overwrites the whole assignment grid with each pixel's nearest
// palette index. Ranges write disjoint rows.
func (e *Engine) assign() error {
	e.state = StateAssigning
	return forEachRange(e.ranges, e.cfg.workers, func(_ int, r rowRange) error {
		for y := r.start; y < r.end; y++ {
			row := e.assignment.row(y)
			for x := range row {
				row[x] = nearest(e.img.Pixel(x, y), e.palette)
			}
		}
		return nil
	})
}
