// Package colour provides the packed 24-bit colour codec, colour distance and
// palette formatting used by the quantiser.
package colour

import (
	"fmt"
	"image/color"
)

// Packed is a 24-bit colour stored as 0xRRGGBB.
type Packed uint32

// Unit steps of each channel in packed form.
const (
	BlueStep  Packed = 1
	GreenStep Packed = 1 << 8
	RedStep   Packed = 1 << 16

	packedMask Packed = 0xFFFFFF
)

// Decode splits a packed colour into its red, green and blue channels.
func Decode(p Packed) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Encode packs three channels into a single colour.
func Encode(r, g, b uint8) Packed {
	return Packed(r)<<16 | Packed(g)<<8 | Packed(b)
}

// FromColor converts any color.Color to a packed colour, dropping alpha.
func FromColor(c color.Color) Packed {
	r, g, b, _ := c.RGBA()
	return Encode(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB returns the decoded channels.
func (p Packed) RGB() RGB {
	r, g, b := Decode(p)
	return RGB{R: r, G: g, B: b}
}

// Color returns the colour as an opaque color.RGBA.
func (p Packed) Color() color.RGBA {
	r, g, b := Decode(p)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (p Packed) Hex() string {
	return p.RGB().Hex()
}

// String implements fmt.Stringer.
func (p Packed) String() string {
	return fmt.Sprintf("%06x", uint32(p&packedMask))
}

// Distance returns the squared Euclidean distance between two colours.
// No square root is taken: it is only used for ordering and for summing
// cluster quality scores.
func Distance(a, b Packed) int {
	ar, ag, ab := Decode(a)
	br, bg, bb := Decode(b)
	dr := int(ar) - int(br)
	dg := int(ag) - int(bg)
	db := int(ab) - int(bb)
	return dr*dr + dg*dg + db*db
}

// Increment raises the channels selected by step (BlueStep, GreenStep or
// RedStep, or a sum of them) by one, saturating each channel at 255 so the
// carry never spills into a neighbouring channel.
func (p Packed) Increment(step Packed) Packed {
	r, g, b := Decode(p)
	if step&RedStep != 0 && r < 255 {
		r++
	}
	if step&GreenStep != 0 && g < 255 {
		g++
	}
	if step&BlueStep != 0 && b < 255 {
		b++
	}
	return Encode(r, g, b)
}

// Grey returns the desaturated colour, each channel set to the truncated
// mean of the three.
func (p Packed) Grey() Packed {
	r, g, b := Decode(p)
	avg := uint8((int(r) + int(g) + int(b)) / 3)
	return Encode(avg, avg, avg)
}
