package zing

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default dimensions fit a 1080x720 window at 10px per cell.
const (
	DefaultWidth   = 108
	DefaultHeight  = 72
	DefaultSeed    = 1337
	DefaultSpeedMS = 20
	CellSize       = 10
)

var (
	// ErrInvalidSize is returned when a dimension leaves no interior.
	ErrInvalidSize = errors.New("zing: width and height must be at least 3")
	// ErrInvalidSpeed is returned for a negative step interval.
	ErrInvalidSpeed = errors.New("zing: speed must not be negative")
)

// Config controls the Zing simulation.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// SpeedMS is the requested interval between automatic steps. The engine
	// never reads it; schedulers do.
	SpeedMS int `yaml:"speed_ms"`

	// Random seeds the initial grid uniformly; otherwise it starts all-Dead.
	Random bool `yaml:"random"`

	// Workers above one selects the banded parallel step.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Seed:    DefaultSeed,
		SpeedMS: DefaultSpeedMS,
		Random:  true,
		Workers: 1,
	}
}

// Speed returns SpeedMS as a duration.
func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// Validate checks the dimensions and speed.
func (c Config) Validate() error {
	if c.Width < MinDim || c.Height < MinDim {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.SpeedMS < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSpeed, c.SpeedMS)
	}
	return nil
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Map renders c in the key/value form FromMap accepts.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"speed":   strconv.Itoa(c.SpeedMS),
		"random":  strconv.FormatBool(c.Random),
		"workers": strconv.Itoa(c.Workers),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinDim {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinDim {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SpeedMS = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
