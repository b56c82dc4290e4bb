package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	StatusPaused  = "paused"
	StatusRunning = "running"

	// MaxDimension bounds board width and height
	MaxDimension = 1000
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	TickInterval        time.Duration `json:"tick_interval"`
	InitialStatus       string        `json:"initial_status"`
	Glyphs              string        `json:"glyphs"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	RefreshInterval     int           `json:"refresh_interval"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               20,
		Height:              20,
		TickInterval:        1500 * time.Millisecond,
		InitialStatus:       StatusPaused,
		Glyphs:              "text",
		Seed:                0,  // seeded from the clock
		Pattern:             "", // random board
		MaxGenerations:      0,  // unlimited
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		RefreshInterval:     200,
	}
}

// LoadConfig loads configuration from JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}

	return config, nil
}

// Validate checks the board dimensions and loop settings
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Width > MaxDimension || c.Height > MaxDimension:
		return errors.Wrapf(ErrInvalidConfig, "board must be at most %dx%d, got %dx%d",
			MaxDimension, MaxDimension, c.Width, c.Height)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be positive, got %v", c.TickInterval)
	case c.InitialStatus != StatusPaused && c.InitialStatus != StatusRunning:
		return errors.Wrapf(ErrInvalidConfig, "initial_status must be %q or %q, got %q",
			StatusPaused, StatusRunning, c.InitialStatus)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.AutoRestart && c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be positive with auto_restart")
	case c.InjectionCount < 0 || c.RefreshInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "injection_count and refresh_interval must not be negative")
	}
	return nil
}
