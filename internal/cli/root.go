// Package cli provides the command-line interface for kpalette.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/kpalette/internal/colour"
	"github.com/jmylchreest/kpalette/internal/version"
)

// envPrefix is prepended to upper-cased flag names to form environment
// overrides, e.g. KPALETTE_WORKERS for --workers.
const envPrefix = "KPALETTE_"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose  int
	quiet    bool
	noColour bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "kpalette",
		Short: "Reduce an image to a k-colour palette",
		Long: `kpalette quantises images to a palette of k representative colours using
k-means clustering (Lloyd's algorithm) over the RGB colour space.

It writes the quantised image for one or more values of k, or prints the
palette itself for use in themes and design tools.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnvOverrides(cmd.Flags(), envPrefix); err != nil {
				return err
			}
			if opts.noColour {
				colour.DisableColourOutput = true
			}
			return nil
		},
	}

	root.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "enable verbose output (repeat for trace)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	root.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable ANSI colour previews")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newQuantiseCmd(opts))
	root.AddCommand(newPaletteCmd(opts))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
