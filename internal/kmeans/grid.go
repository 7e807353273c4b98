package kmeans

import "github.com/jmylchreest/kpalette/internal/colour"

// Grid is the read-only image the engine clusters. *colour.Raster satisfies it.
type Grid interface {
	Width() int
	Height() int
	Pixel(x, y int) colour.Packed
}

// Assignment is a width x height grid of palette indices.
type Assignment struct {
	width  int
	height int
	index  []int
}

func newAssignment(width, height int) *Assignment {
	return &Assignment{
		width:  width,
		height: height,
		index:  make([]int, width*height),
	}
}

// Width returns the number of columns.
func (a *Assignment) Width() int { return a.width }

// Height returns the number of rows.
func (a *Assignment) Height() int { return a.height }

// At returns the palette index assigned to pixel (x, y).
func (a *Assignment) At(x, y int) int {
	return a.index[y*a.width+x]
}

// Indices returns the row-major index slice.
func (a *Assignment) Indices() []int {
	return a.index
}

func (a *Assignment) row(y int) []int {
	return a.index[y*a.width : (y+1)*a.width]
}

func (a *Assignment) clone() *Assignment {
	c := newAssignment(a.width, a.height)
	copy(c.index, a.index)
	return c
}
