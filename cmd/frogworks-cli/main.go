// Frogworks CLI - command-line client for the Frogworks backend.
package main

import (
	"os"

	"github.com/frogworks/frogworks/internal/cli"
	"github.com/frogworks/frogworks/internal/version"
)

// Overridden at build time via -ldflags.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
