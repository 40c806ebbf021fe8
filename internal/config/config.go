// Package config loads the editor configuration from a TOML file and
// supplies defaults when no file is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Snap contains interactive placement settings.
type Snap struct {
	Enabled         bool    `toml:"enabled"`
	ThresholdPx     float64 `toml:"threshold_px"`
	PixelsPerSecond float64 `toml:"pixels_per_second"`
}

// History contains undo history settings.
type History struct {
	MaxEntries int `toml:"max_entries"`
}

// Logging contains log output settings.
type Logging struct {
	Level string `toml:"level"`
}

// Config is the top-level configuration.
type Config struct {
	Snap    Snap    `toml:"snap"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Snap: Snap{
			Enabled:         true,
			ThresholdPx:     10,
			PixelsPerSecond: 50,
		},
		History: History{
			MaxEntries: 1000,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads a TOML config file, layered over the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Snap.ThresholdPx < 0 {
		return fmt.Errorf("snap.threshold_px must not be negative, got %v", c.Snap.ThresholdPx)
	}
	if c.Snap.PixelsPerSecond <= 0 {
		return fmt.Errorf("snap.pixels_per_second must be positive, got %v", c.Snap.PixelsPerSecond)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
