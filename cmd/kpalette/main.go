// kpalette - k-means colour quantisation for images
//
// kpalette reduces an image to k representative colours and writes either the
// quantised image or the palette itself.
package main

import (
	"os"

	"github.com/jmylchreest/kpalette/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
