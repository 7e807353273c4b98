package image

import (
	"image"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// ToRaster converts any image to a packed raster, dropping alpha. The result
// is indexed from (0, 0) regardless of the source bounds.
func ToRaster(img image.Image) *colour.Raster {
	b := img.Bounds()
	r := colour.NewRaster(b.Dx(), b.Dy())
	pix := r.Pixels()

	if rgba, ok := img.(*image.RGBA); ok {
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := rgba.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				o := off + 4*x
				pix[i] = colour.Encode(rgba.Pix[o], rgba.Pix[o+1], rgba.Pix[o+2])
				i++
			}
		}
		return r
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pix[i] = colour.FromColor(img.At(x, y))
			i++
		}
	}
	return r
}

// FromRaster converts a packed raster to an opaque RGBA image.
func FromRaster(r *colour.Raster) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	for i, p := range r.Pixels() {
		red, green, blue := colour.Decode(p)
		img.Pix[4*i] = red
		img.Pix[4*i+1] = green
		img.Pix[4*i+2] = blue
		img.Pix[4*i+3] = 255
	}
	return img
}

// Desaturate returns a grey copy of r, each pixel set to the mean of its
// three channels.
func Desaturate(r *colour.Raster) *colour.Raster {
	out := r.Clone()
	pix := out.Pixels()
	for i, p := range pix {
		pix[i] = p.Grey()
	}
	return out
}
