// Package config holds leveltool settings. Values come from an optional
// leveltool.toml and are then overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is looked up in the working directory when no file is named.
const DefaultFile = "leveltool.toml"

// Config is the resolved tool configuration.
type Config struct {
	// LevelDir replaces %lvl% in path parameters. Empty means the directory
	// of the level file being read.
	LevelDir  string `toml:"level_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// Theme selects the TUI palette: "dark", "light" or "plain".
	Theme string `toml:"theme"`
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Theme:     "dark",
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// New normalizes and validates a configuration.
func New(c Config) (*Config, error) {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.Theme = strings.ToLower(c.Theme)

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.Theme {
	case "dark", "light", "plain":
	default:
		return nil, fmt.Errorf("invalid theme %q: must be 'dark', 'light', or 'plain'", c.Theme)
	}
	return &c, nil
}
