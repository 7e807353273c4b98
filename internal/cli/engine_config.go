package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/kpalette/internal/colour"
	"github.com/jmylchreest/kpalette/internal/kmeans"
	"github.com/jmylchreest/kpalette/internal/seed"
)

// EngineConfig collects the clustering flags shared by the quantise and
// palette commands.
type EngineConfig struct {
	Threshold     float64
	MaxCycles     int
	MaxAttempts   int
	MaxIterations int
	Workers       int
	SeedMode      string
	Seed          int64
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Threshold:     kmeans.DefaultThreshold,
		MaxCycles:     kmeans.DefaultInnerCycleCap,
		MaxAttempts:   kmeans.DefaultMaxInitAttempts,
		MaxIterations: kmeans.DefaultMaxIterations,
		Workers:       runtime.GOMAXPROCS(0),
		SeedMode:      string(seed.ModeContent),
	}
}

// RegisterFlags adds the engine flags to fs.
func (c *EngineConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "stop when the WCSS changes by less than this between iterations (absolute squared-distance units)")
	fs.IntVar(&c.MaxCycles, "max-cycles", c.MaxCycles, "maximum reinitialise/assign/update cycles per iteration while clusters are empty")
	fs.IntVar(&c.MaxAttempts, "max-attempts", c.MaxAttempts, "maximum attempts to sample k distinct seed colours")
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "maximum outer iterations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row ranges processed concurrently per pass")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "random seed source (content, filepath, manual, random)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed value for --seed-mode manual")
}

// Validate checks the configuration before any image is loaded.
func (c EngineConfig) Validate() error {
	if _, err := seed.ParseMode(c.SeedMode); err != nil {
		return err
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.Threshold)
	}
	if c.MaxCycles < 1 {
		return fmt.Errorf("max-cycles must be at least 1, got %d", c.MaxCycles)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max-attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max-iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ResolveSeed derives the engine seed for an image.
func (c EngineConfig) ResolveSeed(img *colour.Raster, imagePath string) (int64, error) {
	mode, err := seed.ParseMode(c.SeedMode)
	if err != nil {
		return 0, err
	}
	value := c.Seed
	return seed.Calculate(img, imagePath, seed.Config{Mode: mode, Value: &value})
}

// Options converts the configuration into engine options.
func (c EngineConfig) Options(seedValue int64, logger hclog.Logger) []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithSeed(seedValue),
		kmeans.WithThreshold(c.Threshold),
		kmeans.WithInnerCycleCap(c.MaxCycles),
		kmeans.WithMaxInitAttempts(c.MaxAttempts),
		kmeans.WithMaxIterations(c.MaxIterations),
		kmeans.WithWorkers(c.Workers),
		kmeans.WithObserver(kmeans.NewLogObserver(logger)),
	}
}

// applyEnvOverrides sets every flag not given on the command line from its
// environment variable, if present.
func applyEnvOverrides(fs *pflag.FlagSet, prefix string) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		name := prefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		value, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", name, err))
		}
	})
	return errors.Join(errs...)
}
