package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/kpalette/internal/colour"
	"github.com/jmylchreest/kpalette/internal/image"
	"github.com/jmylchreest/kpalette/internal/kmeans"
)

// quantiseOptions holds the quantise command flags.
type quantiseOptions struct {
	colours []int
	output  string
	jobs    int
	source  sourceOptions
	engine  EngineConfig
}

// quantiseResult is one row of the batch summary.
type quantiseResult struct {
	k          int
	iterations int
	wcss       float64
	warnings   int
	output     string
}

func newQuantiseCmd(global *globalOptions) *cobra.Command {
	opts := &quantiseOptions{engine: DefaultEngineConfig()}

	cmd := &cobra.Command{
		Use:     "quantise <image>",
		Aliases: []string{"quantize"},
		Short:   "Write a k-colour version of an image",
		Long: `Quantise an image to k colours and save the result.

The image may be a local file, a directory (a random image inside it is used)
or an http(s) URL. Supported input formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
The output format follows the output file extension: png, jpg, gif, bmp, tiff.

Several values of k can be given at once; each produces its own output file
with a -k<N> suffix.

Examples:
  # Quantise to 16 colours, writing photo-k16.png next to the input
  kpalette quantise photo.jpg

  # Quantise to 4, 8 and 16 colours, two runs at a time
  kpalette quantise -c 4,8,16 --jobs 2 -o out/photo.png photo.jpg

  # Desaturate first, as a grey-level posteriser
  kpalette quantise --desaturate -c 6 -o moon.png moon.jpg

  # Reproducible run with an explicit seed
  kpalette quantise --seed-mode manual --seed 42 photo.jpg

  # Download once, then reuse the cached copy
  kpalette quantise --cache -c 8 https://example.com/photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuantise(cmd, global, opts, args[0])
		},
	}

	cmd.Flags().IntSliceVarP(&opts.colours, "colours", "c", []int{16}, "palette sizes to quantise to (comma separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>-k<N>.png next to the input)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 1, "number of palette sizes quantised concurrently")
	opts.source.registerFlags(cmd.Flags())
	opts.engine.RegisterFlags(cmd.Flags())

	return cmd
}

func runQuantise(cmd *cobra.Command, global *globalOptions, opts *quantiseOptions, imagePath string) error {
	if len(opts.colours) == 0 {
		return fmt.Errorf("at least one palette size is required")
	}
	for _, k := range opts.colours {
		if k < 1 {
			return fmt.Errorf("palette size must be at least 1, got %d", k)
		}
	}
	if opts.jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", opts.jobs)
	}
	if err := opts.engine.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if opts.output != "" {
		if _, err := image.FormatFromPath(opts.output); err != nil {
			return err
		}
	}

	logger := newLogger(global, cmd.ErrOrStderr())

	raster, resolved, err := loadRaster(cmd.Context(), imagePath, opts.source, logger)
	if err != nil {
		return err
	}

	// Cached URLs are named after the URL, not the cache file.
	naming := resolved
	if image.IsURL(imagePath) {
		naming = imagePath
	}

	seedValue, err := opts.engine.ResolveSeed(raster, resolved)
	if err != nil {
		return fmt.Errorf("failed to derive seed: %w", err)
	}
	logger.Debug("seed resolved", "mode", opts.engine.SeedMode, "seed", seedValue)

	results := make([]quantiseResult, len(opts.colours))
	multiple := len(opts.colours) > 1

	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for i, k := range opts.colours {
		g.Go(func() error {
			runLogger := logger.With("k", k)
			engine, err := runEngine(raster, k, opts.engine, seedValue, runLogger)
			if err != nil {
				return err
			}

			out := outputPath(opts.output, naming, k, multiple)
			if err := image.Save(out, image.FromRaster(engine.QuantizedImage())); err != nil {
				return fmt.Errorf("k=%d: failed to save image: %w", k, err)
			}
			runLogger.Info("saved quantised image", "path", out)

			history := engine.QualityHistory()
			results[i] = quantiseResult{
				k:          k,
				iterations: engine.Iterations(),
				wcss:       history[len(history)-1],
				warnings:   len(engine.Warnings()),
				output:     out,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !global.quiet {
		fmt.Fprint(cmd.OutOrStdout(), renderSummary(results))
	}
	return nil
}

// runEngine quantises raster to k colours. Degenerate input is reported up
// front when the image cannot fill k entries, and during the run through the
// observer.
func runEngine(raster *colour.Raster, k int, cfg EngineConfig, seedValue int64, logger hclog.Logger) (*kmeans.Engine, error) {
	if distinct := raster.DistinctCount(k); distinct < k {
		logger.Warn("image has fewer distinct colours than palette entries, some entries will repeat or stay empty",
			"distinct", distinct)
	}

	engine, err := kmeans.New(raster, k, cfg.Options(seedValue, logger)...)
	if err != nil {
		return nil, fmt.Errorf("k=%d: %w", k, err)
	}
	if err := engine.Run(); err != nil {
		return nil, fmt.Errorf("k=%d: quantisation failed: %w", k, err)
	}
	return engine, nil
}

// outputPath picks the file a quantised image is written to. Without an
// explicit output the file goes next to the input as <stem>-k<N>.png; with
// several palette sizes the -k<N> suffix is added to the explicit name too.
func outputPath(output, input string, k int, multiple bool) string {
	suffix := "-k" + strconv.Itoa(k)

	if output == "" {
		base := filepath.Base(input)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		dir := filepath.Dir(input)
		if image.IsURL(input) {
			dir = "."
		}
		return filepath.Join(dir, stem+suffix+".png")
	}

	if !multiple {
		return output
	}
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + suffix + ext
}

func renderSummary(results []quantiseResult) string {
	table := NewTable([]string{"K", "ITERATIONS", "WCSS", "WARNINGS", "OUTPUT"})
	table.SetAlignRight(0, 1, 2, 3)
	for _, r := range results {
		table.AddRow([]string{
			strconv.Itoa(r.k),
			strconv.Itoa(r.iterations),
			strconv.FormatFloat(r.wcss, 'f', 0, 64),
			strconv.Itoa(r.warnings),
			r.output,
		})
	}
	return table.Render()
}
