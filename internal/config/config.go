package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Config is the client configuration shared by the CLI and the daemon.
//
// INI format:
//
//	[frogworks]
//	api_url = http://192.168.1.16/
//	session_id = b5eadd7911364cb98e162acc163a73c1
//
//	[installs]
//	directory = /home/me/Games/frogworks
type Config struct {
	// API connection settings
	APIURL    string `ini:"api_url"`
	SessionID string `ini:"session_id"`

	// Installs settings
	Installs InstallsConfig
}

// InstallsConfig holds settings for locally installed applications.
type InstallsConfig struct {
	// Directory is where application builds are downloaded and unpacked.
	Directory string `ini:"directory"`
}

// DefaultAPIURL is used when no api_url is configured.
const DefaultAPIURL = "http://192.168.1.16/"

// Validation errors
var (
	ErrMissingAPIURL = errors.New("api_url is required")
)

// DefaultConfig returns a config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		APIURL: DefaultAPIURL,
	}
}

// Load reads the config from the given path. An empty path means the
// default location. A missing file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := file.Section("frogworks").MapTo(cfg); err != nil {
		return nil, fmt.Errorf("parse [frogworks] section: %w", err)
	}
	if err := file.Section("installs").MapTo(&cfg.Installs); err != nil {
		return nil, fmt.Errorf("parse [installs] section: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return cfg, nil
}

// Save writes the config to the given path. An empty path means the
// default location.
func (c *Config) Save(path string) error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file := ini.Empty()
	if err := file.Section("frogworks").ReflectFrom(c); err != nil {
		return fmt.Errorf("build [frogworks] section: %w", err)
	}
	if err := file.Section("installs").ReflectFrom(&c.Installs); err != nil {
		return fmt.Errorf("build [installs] section: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return os.Chmod(path, 0600)
}
