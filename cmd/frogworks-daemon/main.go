// Frogworks Daemon - single-instance background companion.
//
// The first invocation becomes the primary instance: it holds the
// instance lock, listens for relayed arguments on loopback, and shows
// the tray presence. Later invocations relay their arguments to the
// primary and exit. Launching a frogworks:// link therefore always
// lands in the one running daemon.
package main

import (
	"os"

	"github.com/frogworks/frogworks/internal/daemon"
	"github.com/frogworks/frogworks/internal/logging"
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

	logger := logging.NewDaemonLogger()
	os.Exit(daemon.New(logger).Run(os.Args[1:]))
}
