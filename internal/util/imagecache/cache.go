// Package imagecache keeps local copies of remote images so repeated runs
// against the same URL read from disk.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/kpalette/internal/util/http"
)

// Cache stores downloaded images under Dir.
type Cache struct {
	// Dir is the cache directory. Empty means DefaultDir.
	Dir string

	// Refresh re-downloads images that are already cached.
	Refresh bool

	// Fetch overrides the download options.
	Fetch httputil.FetchOptions
}

// DefaultDir returns ~/.cache/kpalette/images or the platform equivalent.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "kpalette", "images"), nil
	}
	return filepath.Join(cacheDir, "kpalette", "images"), nil
}

// Filename maps a URL to its cache file name: the first 16 bytes of the
// SHA-256 of the URL in hex, plus the URL's extension (default .jpg).
func Filename(url string) string {
	hash := sha256.Sum256([]byte(url))

	ext := filepath.Ext(url)
	if idx := strings.IndexAny(ext, "?#"); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 || strings.Contains(ext, "/") {
		ext = ".jpg"
	}
	return fmt.Sprintf("%x", hash[:16]) + strings.ToLower(ext)
}

// Get returns the local path of url, downloading it first when it is not
// cached or Refresh is set.
func (c Cache) Get(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid URL %q: must start with http:// or https://", url)
	}

	dir := c.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := filepath.Join(dir, Filename(url))
	if !c.Refresh {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	data, err := httputil.Fetch(ctx, url, c.Fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	// Write then rename so concurrent readers never see a partial file.
	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	return path, nil
}
