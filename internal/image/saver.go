package image

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (supported: png, jpg, gif, bmp, tiff)", filepath.Ext(path))
	}
}

// Encode writes img to w in the given format. JPEG output uses quality 95.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{
			NumColors: 256,
			Quantizer: exactQuantizer{},
			Drawer:    draw.Src,
		})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Save writes img to path, choosing the encoding from the extension. Nothing
// is left at path when encoding fails.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode image (format: %s): %w", format, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// exactQuantizer returns the distinct colours of the image, up to the
// palette capacity. Quantised output has at most k colours, so GIF encoding
// keeps every colour exactly when k <= 256.
type exactQuantizer struct{}

func (exactQuantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	seen := make(map[color.RGBA]struct{}, cap(p))
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 255}
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == cap(p) {
				return p
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}
