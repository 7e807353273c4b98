package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/kpalette/internal/colour"
	"github.com/jmylchreest/kpalette/internal/image"
	"github.com/jmylchreest/kpalette/internal/util/imagecache"
)

// sourceOptions controls how the input image is read.
type sourceOptions struct {
	desaturate   bool
	cache        bool
	refreshCache bool
	cacheDir     string
}

func (o *sourceOptions) registerFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.desaturate, "desaturate", false, "convert the image to grey before clustering")
	fs.BoolVar(&o.cache, "cache", false, "keep a local copy of remote images and reuse it on later runs")
	fs.BoolVar(&o.refreshCache, "refresh-cache", false, "download remote images again even when cached (implies --cache)")
	fs.StringVar(&o.cacheDir, "cache-dir", "", "directory for cached remote images (default: user cache dir)")
}

func (o sourceOptions) source() image.Source {
	if !o.cache && !o.refreshCache {
		return image.Source{}
	}
	return image.Source{Cache: &imagecache.Cache{Dir: o.cacheDir, Refresh: o.refreshCache}}
}

// loadRaster loads the input image and applies the requested
// preprocessing. It returns the path the pixels were read from.
func loadRaster(ctx context.Context, imagePath string, opts sourceOptions, logger hclog.Logger) (*colour.Raster, string, error) {
	raster, from, err := opts.source().LoadRaster(ctx, imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load image: %w", err)
	}
	logger.Debug("image loaded", "path", from, "width", raster.Width(), "height", raster.Height())

	if opts.desaturate {
		raster = image.Desaturate(raster)
		logger.Debug("image desaturated")
	}
	return raster, from, nil
}
