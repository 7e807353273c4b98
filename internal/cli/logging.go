package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the command logger. Warnings are always shown so that
// degenerate-input reports survive --quiet.
func newLogger(opts *globalOptions, out io.Writer) hclog.Logger {
	level := hclog.Info
	switch {
	case opts.quiet:
		level = hclog.Warn
	case opts.verbose >= 2:
		level = hclog.Trace
	case opts.verbose == 1:
		level = hclog.Debug
	}

	colorOpt := hclog.AutoColor
	if opts.noColour {
		colorOpt = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "kpalette",
		Output: out,
		Level:  level,
		Color:  colorOpt,
	})
}
