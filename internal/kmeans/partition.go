package kmeans

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// rowRange is a half-open range of image rows [start, end).
type rowRange struct {
	start int
	end   int
}

// splitRows divides height rows into at most parts contiguous ranges whose
// sizes differ by at most one.
func splitRows(height, parts int) []rowRange {
	if parts > height {
		parts = height
	}
	if parts < 1 {
		parts = 1
	}

	chunk, rem := height/parts, height%parts
	ranges := make([]rowRange, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + chunk
		if i < rem {
			end++
		}
		ranges = append(ranges, rowRange{start: start, end: end})
		start = end
	}
	return ranges
}

// forEachRange runs fn once per range with at most limit running at a time.
// Any error or panic in one range fails the whole pass.
func forEachRange(ranges []rowRange, limit int, fn func(i int, r rowRange) error) error {
	if len(ranges) == 1 || limit <= 1 {
		for i, r := range ranges {
			if err := runRange(i, r, fn); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, r := range ranges {
		g.Go(func() error {
			return runRange(i, r, fn)
		})
	}
	return g.Wait()
}

func runRange(i int, r rowRange, fn func(int, rowRange) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("worker for rows [%d, %d) failed: %v", r.start, r.end, p)
		}
	}()
	return fn(i, r)
}
