package kmeans

import (
	"math"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// score computes the within-cluster sum of squared distances for the current
// assignment and appends it to the quality history. Partial sums are reduced
// in range order so the result does not depend on scheduling.
func (e *Engine) score() (float64, error) {
	e.state = StateScoring

	clear(e.partialScores)
	err := forEachRange(e.ranges, e.cfg.workers, func(i int, r rowRange) error {
		var sum int64
		for y := r.start; y < r.end; y++ {
			for x, idx := range e.assignment.row(y) {
				sum += int64(colour.Distance(e.img.Pixel(x, y), e.palette[idx]))
			}
		}
		e.partialScores[i] = sum
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total int64
	for _, s := range e.partialScores {
		total += s
	}
	wcss := float64(total)
	e.history = append(e.history, wcss)
	return wcss, nil
}

// lastDelta returns the absolute change between the two most recent scores,
// or 0 when fewer than two exist.
func (e *Engine) lastDelta() float64 {
	n := len(e.history)
	if n < 2 {
		return 0
	}
	return math.Abs(e.history[n-1] - e.history[n-2])
}

// converged reports whether the last two scores differ by less than the
// threshold. A perfect fit (score 0) cannot improve and converges at once.
func (e *Engine) converged() bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	if e.history[n-1] == 0 {
		return true
	}
	return n >= 2 && e.lastDelta() < e.cfg.threshold
}
