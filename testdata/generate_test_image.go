//go:build ignore

// Generates sample images for trying out quantisation by hand:
//
//	go run testdata/generate_test_image.go
package main

import (
	"fmt"
	"os"

	"github.com/jmylchreest/kpalette/internal/colour"
	"github.com/jmylchreest/kpalette/internal/image"
)

func main() {
	samples := map[string]*colour.Raster{
		"testdata/blocks.png":   blocks(400, 400),
		"testdata/gradient.png": gradient(256, 256),
	}

	for path, raster := range samples {
		if err := image.Save(path, image.FromRaster(raster)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

// blocks is a 2x4 grid of eight distinct colours; k=8 reproduces it exactly.
func blocks(width, height int) *colour.Raster {
	colours := []colour.Packed{
		0xff0000, 0x00ff00, 0x0000ff, 0xffff00,
		0xff00ff, 0x00ffff, 0x808080, 0xff8000,
	}
	raster := colour.NewRaster(width, height)
	for y := range height {
		for x := range width {
			raster.SetPixel(x, y, colours[(y*4/height)*2+x*2/width])
		}
	}
	return raster
}

// gradient runs red along x and blue along y, with green fixed.
func gradient(width, height int) *colour.Raster {
	raster := colour.NewRaster(width, height)
	for y := range height {
		for x := range width {
			r := uint8(x * 255 / (width - 1))
			b := uint8(y * 255 / (height - 1))
			raster.SetPixel(x, y, colour.Encode(r, 96, b))
		}
	}
	return raster
}
