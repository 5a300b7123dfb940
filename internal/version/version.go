// Package version provides build and identity information for the
// application. This is a separate package to avoid import cycles between
// the cli, daemon, and installer packages.
package version

// Version is the build version string, set by ldflags during build.
var Version = "v0.1.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"

// AppName is the product name used in user-facing output.
const AppName = "Frogworks"

// URIScheme is the custom URI scheme the installer registers for the
// daemon. Clicking a frogworks:// link starts a secondary invocation that
// relays its arguments to the running daemon.
const URIScheme = "frogworks"
