package app

import (
	"github.com/spf13/pflag"

	"zing/internal/sims/zing"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	Seed       int64
	ConfigPath string
	LogLevel   string
	HUDWidth   int
	Paused     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "zing",
		Scale:    zing.CellSize,
		Seed:     zing.DefaultSeed,
		LogLevel: "info",
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid and reseeds")
	fs.StringVarP(&c.ConfigPath, "config", "c", c.ConfigPath, "YAML file with grid settings")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug or trace")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the side panel in pixels, 0 hides it")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with automatic stepping paused")
}

// SimConfig resolves the grid settings: the YAML file when given, otherwise
// defaults, with the seed flag applied on top when set.
func (c *Config) SimConfig(seedChanged bool) (zing.Config, error) {
	cfg := zing.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := zing.LoadConfig(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if seedChanged || c.ConfigPath == "" {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}
