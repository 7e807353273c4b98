package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// paletteOptions holds the palette command flags.
type paletteOptions struct {
	colours int
	format  string
	output  string
	preview bool
	source  sourceOptions
	engine  EngineConfig
}

func newPaletteCmd(global *globalOptions) *cobra.Command {
	opts := &paletteOptions{engine: DefaultEngineConfig()}

	cmd := &cobra.Command{
		Use:   "palette <image>",
		Short: "Print the k-colour palette of an image",
		Long: `Cluster the colours of an image and print the resulting palette.

Each entry is listed with the share of pixels assigned to it in JSON output.

Examples:
  # Print 8 colours as hex codes
  kpalette palette -c 8 wallpaper.jpg

  # Show colour swatches in the terminal
  kpalette palette --preview wallpaper.png

  # Write the palette as JSON
  kpalette palette -f json -o palette.json wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, global, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 16, "number of colours to extract")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews when writing to a terminal")
	opts.source.registerFlags(cmd.Flags())
	opts.engine.RegisterFlags(cmd.Flags())

	return cmd
}

func runPalette(cmd *cobra.Command, global *globalOptions, opts *paletteOptions, imagePath string) error {
	if opts.colours < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", opts.colours)
	}
	if err := opts.engine.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(global, cmd.ErrOrStderr())

	raster, resolved, err := loadRaster(cmd.Context(), imagePath, opts.source, logger)
	if err != nil {
		return err
	}

	seedValue, err := opts.engine.ResolveSeed(raster, resolved)
	if err != nil {
		return fmt.Errorf("failed to derive seed: %w", err)
	}

	engine, err := runEngine(raster, opts.colours, opts.engine, seedValue, logger.With("k", opts.colours))
	if err != nil {
		return err
	}

	preview := opts.preview && opts.output == "" && colour.SupportsANSIColours(os.Stdout)
	output, err := formatPalette(engine.ColourPalette(), opts.format, preview)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil { // #nosec G306 - palette files are not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote palette", "path", opts.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	if !showPreview {
		return strings.Join(palette.ToHex(), "\n") + "\n"
	}

	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		b.WriteString(colour.FormatColourWithPreview(rgb, 8))
		b.WriteString("\n")
	}
	return b.String()
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			b.WriteString(colour.ColourPreview(rgb, 8) + "  ")
		}
		b.WriteString(rgb.String())
		b.WriteString("\n")
	}
	return b.String()
}
