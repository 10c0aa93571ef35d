// Command segtool inspects window/hop pairs and exercises the segmentation
// engine from the command line.
//
// Usage:
//
//	segtool [flags] <command> [args]
//
// Commands:
//
//	presets    - list window presets with their suggested hop
//	cola       - COLA reports for presets at a given size and hop
//	roundtrip  - segment and reconstruct noise on every backend
//	params     - write or read window parameter files
//
// Flags may also be set through SEGTOOL_* environment variables or a YAML
// config file passed with --config.
package main

import (
	"fmt"
	"os"

	_ "github.com/cwbudde/algo-segment/dsp/backend/generic"
	_ "github.com/cwbudde/algo-segment/dsp/backend/gonum"
	_ "github.com/cwbudde/algo-segment/dsp/backend/vecmath"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
