package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPalette(t *testing.T) {
	palette := NewPalette([]Packed{0xFF0000, 0x00FF00, 0x0000FF}, nil)

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}

	if palette.Weight(0) != 0 {
		t.Errorf("Expected zero weight without weights, got %f", palette.Weight(0))
	}
}

func TestNewPaletteDropsMismatchedWeights(t *testing.T) {
	palette := NewPalette([]Packed{0xFF0000, 0x00FF00}, []float64{1})
	if palette.Weights != nil {
		t.Errorf("Expected mismatched weights to be dropped, got %v", palette.Weights)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255}, want: "#ff0000"},
		{name: "green", rgb: RGB{G: 255}, want: "#00ff00"},
		{name: "blue", rgb: RGB{B: 255}, want: "#0000ff"},
		{name: "mixed", rgb: RGB{R: 0x1a, G: 0x2b, B: 0x3c}, want: "#1a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	got := RGB{R: 1, G: 2, B: 3}.String()
	if got != "rgb(1, 2, 3)" {
		t.Errorf("String() = %q, want %q", got, "rgb(1, 2, 3)")
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]Packed{0xFF0000, 0x00FF00}, nil)
	got := palette.ToHex()
	want := []string{"#ff0000", "#00ff00"}

	if len(got) != len(want) {
		t.Fatalf("ToHex() returned %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToHex()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaletteToRGBSlice(t *testing.T) {
	palette := NewPalette([]Packed{0x102030}, nil)
	got := palette.ToRGBSlice()
	if len(got) != 1 || got[0] != (RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("ToRGBSlice() = %+v", got)
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]Packed{0xFF0000, 0x0000FF}, []float64{0.75, 0.25})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if decoded.Count != 2 {
		t.Errorf("Expected count 2, got %d", decoded.Count)
	}
	if decoded.Colors[0].Hex != "#ff0000" {
		t.Errorf("Expected first color #ff0000, got %s", decoded.Colors[0].Hex)
	}
	if decoded.Colors[1].Weight != 0.25 {
		t.Errorf("Expected second weight 0.25, got %f", decoded.Colors[1].Weight)
	}
	if decoded.Colors[1].Index != 1 {
		t.Errorf("Expected second index 1, got %d", decoded.Colors[1].Index)
	}
}

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 1, G: 2, B: 3}, 0)
	if !strings.HasPrefix(got, "\033[48;2;1;2;3m") || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("ColourPreview() = %q", got)
	}
	if strings.Count(got, " ") != defaultWidth {
		t.Errorf("Expected %d spaces, got %d", defaultWidth, strings.Count(got, " "))
	}
}

func TestSupportsANSIColoursNonTerminal(t *testing.T) {
	if SupportsANSIColours(nil) {
		t.Error("nil file must not support colours")
	}
	t.Setenv("NO_COLOR", "1")
	if SupportsANSIColours(nil) {
		t.Error("NO_COLOR must disable colours")
	}
}
