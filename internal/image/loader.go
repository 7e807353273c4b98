// Package image loads and saves images and converts them to and from the
// packed rasters the quantiser works on.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/kpalette/internal/colour"
	httputil "github.com/jmylchreest/kpalette/internal/util/http"
	"github.com/jmylchreest/kpalette/internal/util/imagecache"
)

// Extensions lists the file extensions picked up when a directory is given
// as input.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}

// IsURL reports whether path is an http(s) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Source reads input images. A path may name a file, a directory (one
// image inside is picked at random) or an http(s) URL.
type Source struct {
	// Cache, when set, keeps URL inputs on disk and reads them from there.
	Cache *imagecache.Cache

	// Fetch configures URL downloads that bypass the cache.
	Fetch httputil.FetchOptions
}

// LoadRaster reads the image at path and converts it to a raster. The
// returned path is where the pixels came from: the picked file for a
// directory, the cache file for a cached URL, the URL otherwise.
func (s Source) LoadRaster(ctx context.Context, path string) (*colour.Raster, string, error) {
	img, from, err := s.Load(ctx, path)
	if err != nil {
		return nil, "", err
	}
	return ToRaster(img), from, nil
}

// Load is LoadRaster without the conversion.
func (s Source) Load(ctx context.Context, path string) (image.Image, string, error) {
	from, err := Resolve(path)
	if err != nil {
		return nil, "", err
	}

	if !IsURL(from) {
		img, err := LoadFile(from)
		return img, from, err
	}

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, from)
		if err != nil {
			return nil, "", err
		}
		img, err := LoadFile(cached)
		return img, cached, err
	}

	data, err := httputil.Fetch(ctx, from, s.Fetch)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	img, err := Decode(bytes.NewReader(data))
	return img, from, err
}

// LoadFile decodes a local image file.
func LoadFile(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	file, err := os.Open(path) // #nosec G304 - user-specified image path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return Decode(file)
}

// Decode decodes any registered image format.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %q): %w", format, err)
	}
	return img, nil
}

// Resolve maps a directory to one of its images, chosen at random. Files
// must exist; URLs are returned unchanged.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image path cannot be empty")
	}
	if IsURL(path) {
		return path, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("image file or directory not found: %s", path)
		}
		return "", fmt.Errorf("failed to access image path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	files, err := imageFiles(path)
	if err != nil {
		return "", err
	}
	return files[rand.IntN(len(files))], nil // #nosec G404 - picking a wallpaper needs no crypto randomness
}

// imageFiles lists the images directly inside dir, following symlinks and
// skipping subdirectories.
func imageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !slices.Contains(Extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(full); err != nil || info.IsDir() {
			continue
		}
		files = append(files, full)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dir)
	}
	return files, nil
}
