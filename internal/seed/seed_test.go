package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/kpalette/internal/colour"
)

func raster(pix ...colour.Packed) *colour.Raster {
	r, _ := colour.RasterFromPixels(len(pix), 1, pix)
	return r
}

func TestCalculate(t *testing.T) {
	img := raster(0x112233, 0x445566)
	manual := int64(42)

	tests := []struct {
		name    string
		img     *colour.Raster
		path    string
		config  Config
		wantErr bool
	}{
		{name: "content", img: img, config: Config{Mode: ModeContent}},
		{name: "content without image", config: Config{Mode: ModeContent}, wantErr: true},
		{name: "filepath", path: "a.png", config: Config{Mode: ModeFilepath}},
		{name: "filepath without path", config: Config{Mode: ModeFilepath}, wantErr: true},
		{name: "manual", config: Config{Mode: ModeManual, Value: &manual}},
		{name: "manual without value", config: Config{Mode: ModeManual}, wantErr: true},
		{name: "random", config: Config{Mode: ModeRandom}},
		{name: "unknown", config: Config{Mode: "lunar"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.img, tt.path, tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	got, err := Calculate(nil, "", Config{Mode: ModeManual, Value: &manual})
	require.NoError(t, err)
	assert.Equal(t, manual, got)
}

func TestContentSeedIsDeterministic(t *testing.T) {
	a := ContentSeed(raster(0x112233, 0x445566))
	b := ContentSeed(raster(0x112233, 0x445566))
	c := ContentSeed(raster(0x112233, 0x445567))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFilepathSeed(t *testing.T) {
	assert.Equal(t, FilepathSeed("a.png"), FilepathSeed("./a.png"))
	assert.NotEqual(t, FilepathSeed("a.png"), FilepathSeed("b.png"))
	assert.Equal(t, FilepathSeed("https://x/a.png"), FilepathSeed("https://x/a.png"))
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("nope")
	assert.Error(t, err)
}
