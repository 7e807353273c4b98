// Package seed derives the random seed that drives palette initialisation and
// empty-cluster recovery, so the same input can be quantised reproducibly.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// Mode determines how the seed is generated.
type Mode string

const (
	// ModeContent hashes the pixel data (default, deterministic by content).
	ModeContent Mode = "content"
	// ModeFilepath hashes the absolute file path (deterministic by path).
	ModeFilepath Mode = "filepath"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// img is required for ModeContent, imagePath for ModeFilepath.
func Calculate(img *colour.Raster, imagePath string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		if img == nil {
			return 0, fmt.Errorf("image is required for content-based seed mode")
		}
		return ContentSeed(img), nil
	case ModeFilepath:
		if imagePath == "" {
			return 0, fmt.Errorf("image path is required for filepath-based seed mode")
		}
		return FilepathSeed(imagePath), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the raster dimensions and a grid sample of its pixels,
// so the seed depends on content only, not on file name or location.
func ContentSeed(img *colour.Raster) int64 {
	hasher := sha256.New()

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(img.Width()))  // #nosec G115 -- image dimensions are safe to convert
	binary.LittleEndian.PutUint32(dims[4:8], uint32(img.Height())) // #nosec G115 -- image dimensions are safe to convert
	hasher.Write(dims[:])

	// A 100x100 grid sample is enough to tell images apart.
	step := max(img.Width()/100, img.Height()/100, 1)
	var px [4]byte
	for y := 0; y < img.Height(); y += step {
		for x := 0; x < img.Width(); x += step {
			binary.LittleEndian.PutUint32(px[:], uint32(img.Pixel(x, y)))
			hasher.Write(px[:])
		}
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// FilepathSeed hashes the absolute path (URLs are hashed as-is), so
// different images at the same location produce different results.
func FilepathSeed(imagePath string) int64 {
	absPath := imagePath
	if !isURL(imagePath) {
		if abs, err := filepath.Abs(imagePath); err == nil {
			absPath = abs
		}
	}

	hash := sha256.Sum256([]byte(absPath))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// RandomSeed generates a non-deterministic seed.
func RandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeFilepath, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, filepath, manual, random)", s)
}
