package colour

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Raster is a width x height grid of packed colours in row-major order.
type Raster struct {
	width  int
	height int
	pix    []Packed
}

// NewRaster allocates a black raster of the given size.
func NewRaster(width, height int) *Raster {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]Packed, width*height),
	}
}

// RasterFromPixels wraps row-major pixels. It returns an error when the slice
// length does not match the dimensions.
func RasterFromPixels(width, height int, pix []Packed) (*Raster, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d", len(pix), width, height)
	}
	return &Raster{width: width, height: height, pix: pix}, nil
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// Pixel returns the colour at (x, y).
func (r *Raster) Pixel(x, y int) Packed {
	return r.pix[y*r.width+x]
}

// SetPixel sets the colour at (x, y).
func (r *Raster) SetPixel(x, y int, p Packed) {
	r.pix[y*r.width+x] = p
}

// Pixels returns the backing row-major slice.
func (r *Raster) Pixels() []Packed {
	return r.pix
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	pix := make([]Packed, len(r.pix))
	copy(pix, r.pix)
	return &Raster{width: r.width, height: r.height, pix: pix}
}

// DistinctCount returns the number of distinct colours, stopping early once
// limit is reached when limit > 0.
func (r *Raster) DistinctCount(limit int) int {
	seen := roaring.New()
	for _, p := range r.pix {
		seen.Add(uint32(p))
		if limit > 0 && seen.GetCardinality() >= uint64(limit) {
			break
		}
	}
	return int(seen.GetCardinality())
}
