package kmeans

import "github.com/jmylchreest/kpalette/internal/colour"

// clusterSum accumulates channel totals and the pixel count of one cluster.
type clusterSum struct {
	r, g, b int64
	n       int64
}

func (s *clusterSum) add(o clusterSum) {
	s.r += o.r
	s.g += o.g
	s.b += o.b
	s.n += o.n
}

// update moves every used palette entry to the truncated mean of its pixels
// and rebuilds the unused set from the entries that received none. Unused
// entries keep their colour.
func (e *Engine) update() error {
	e.state = StateUpdating

	err := forEachRange(e.ranges, e.cfg.workers, func(i int, r rowRange) error {
		acc := e.partials[i]
		clear(acc)
		for y := r.start; y < r.end; y++ {
			for x, idx := range e.assignment.row(y) {
				red, green, blue := colour.Decode(e.img.Pixel(x, y))
				s := &acc[idx]
				s.r += int64(red)
				s.g += int64(green)
				s.b += int64(blue)
				s.n++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.unused = e.unused[:0]
	for j := range e.palette {
		var total clusterSum
		for _, acc := range e.partials {
			total.add(acc[j])
		}
		e.counts[j] = total.n
		if total.n == 0 {
			e.used[j] = false
			e.unused = append(e.unused, j)
			continue
		}
		e.used[j] = true
		e.palette[j] = colour.Encode(
			uint8(total.r/total.n),
			uint8(total.g/total.n),
			uint8(total.b/total.n),
		)
	}
	return nil
}
