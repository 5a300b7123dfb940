// Package installer manages the Frogworks installation footprint: the
// registry keys locating the installed binaries and the frogworks:// URI
// scheme that routes link clicks to the daemon.
package installer

import "path/filepath"

// Layout describes where the installed binaries live under the
// installation directory.
type Layout struct {
	InstallDir     string
	ExecutablePath string
	CLIPath        string
	DaemonPath     string
}

// NewLayout derives the binary paths from an installation directory.
func NewLayout(installDir string) Layout {
	return Layout{
		InstallDir:     installDir,
		ExecutablePath: filepath.Join(installDir, "frogworks.exe"),
		CLIPath:        filepath.Join(installDir, "frogworks-cli.exe"),
		DaemonPath:     filepath.Join(installDir, "frogworks-daemon.exe"),
	}
}

// Install writes the registry keys and registers the URI scheme for the
// given installation directory. On failure it rolls the registry back and
// returns the original error.
func Install(installDir string) error {
	return install(NewLayout(installDir))
}

// Uninstall removes the registry keys and the URI scheme registration.
func Uninstall() error {
	return uninstall()
}
