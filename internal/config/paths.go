// Package config provides configuration management for the Frogworks client.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDirectory returns the per-user Frogworks configuration directory.
//
// Locations:
//   - Windows: %USERPROFILE%\.config\frogworks
//   - Unix: ~/.config/frogworks
func ConfigDirectory() (string, error) {
	if runtime.GOOS == "windows" {
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", errors.New("USERPROFILE environment variable not set")
		}
		return filepath.Join(userProfile, ".config", "frogworks"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "frogworks"), nil
}

// EnsureConfigDirectory creates the config directory if it doesn't exist.
func EnsureConfigDirectory() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// LogDirectory returns the directory the daemon writes its logs to.
func LogDirectory() string {
	dir, err := ConfigDirectory()
	if err != nil {
		return filepath.Join(os.TempDir(), "frogworks-logs")
	}
	return filepath.Join(dir, "logs")
}

// LockFilePath returns the path of the daemon's single-instance lock file.
func LockFilePath() string {
	dir, err := ConfigDirectory()
	if err != nil {
		return filepath.Join(os.TempDir(), "frogworks-daemon.lock")
	}
	return filepath.Join(dir, "daemon.lock")
}

// DefaultConfigPath returns the default path for the frogworks.conf file.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "frogworks.conf"), nil
}
