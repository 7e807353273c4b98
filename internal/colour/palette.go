package colour

import (
	"encoding/json"
	"fmt"
)

// Palette is the ordered set of representative colours produced by a
// quantisation run, with the share of pixels assigned to each entry.
type Palette struct {
	Colors  []Packed
	Weights []float64
}

// NewPalette creates a Palette. Weights may be nil; otherwise it must have one
// entry per colour.
func NewPalette(colors []Packed, weights []float64) *Palette {
	if weights != nil && len(weights) != len(colors) {
		weights = nil
	}
	return &Palette{
		Colors:  colors,
		Weights: weights,
	}
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Weight returns the pixel share of entry i, or 0 when weights are unknown.
func (p *Palette) Weight(i int) float64 {
	if p.Weights == nil || i < 0 || i >= len(p.Weights) {
		return 0
	}
	return p.Weights[i]
}

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToHex converts the palette colors to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ToRGBSlice converts the palette colors to RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColors := make([]RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbColors[i] = c.RGB()
	}
	return rgbColors
}

// ColorJSON represents a color in JSON output format.
type ColorJSON struct {
	Index  int     `json:"index"`
	Hex    string  `json:"hex"`
	RGB    RGB     `json:"rgb"`
	Weight float64 `json:"weight,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Index:  i,
			Hex:    c.Hex(),
			RGB:    c.RGB(),
			Weight: p.Weight(i),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:  p.Len(),
		Colors: colors,
	}, "", "  ")
}
