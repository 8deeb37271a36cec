// Package zing implements a six-state cellular automaton whose cells live,
// sicken, flood, harden into metal, burn and die according to how many of
// each state surround them.
package zing

import (
	"context"
	"log/slog"
	"time"

	"zing/internal/core"
	"zing/internal/logging"
)

// Sim owns one Grid, the RNG used for seeding and point edits, and the
// requested interval between automatic steps.
type Sim struct {
	cfg  Config
	seed int64

	grid    *Grid
	display *core.ByteGrid
	rng     *core.RNG

	generation int

	log *slog.Logger
}

// New returns a Zing simulation with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Sim {
	if cfg.Width < MinDim {
		cfg.Width = MinDim
	}
	if cfg.Height < MinDim {
		cfg.Height = MinDim
	}
	if cfg.SpeedMS < 0 {
		cfg.SpeedMS = DefaultSpeedMS
	}
	s := &Sim{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
		log:     logging.Discard(),
	}
	s.Reset(0)
	return s
}

// WithLogger sets the logger used for step and reset events.
func (s *Sim) WithLogger(l *slog.Logger) *Sim {
	if l != nil {
		s.log = l
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "zing" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Cells exposes the display buffer: one state index per cell, row-major.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Grid exposes the underlying grid.
func (s *Sim) Grid() *Grid { return s.grid }

// Deaths returns the accumulated death counters.
func (s *Sim) Deaths() Deaths { return s.grid.Deaths() }

// Generation reports how many steps ran since the last Reset.
func (s *Sim) Generation() int { return s.generation }

// Seed reports the seed used by the last Reset.
func (s *Sim) Seed() int64 { return s.seed }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Speed is the requested interval between automatic steps.
func (s *Sim) Speed() time.Duration { return s.cfg.Speed() }

// SetSpeed changes the requested interval between automatic steps.
func (s *Sim) SetSpeed(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.cfg.SpeedMS = int(d / time.Millisecond)
}

// Reset rebuilds the grid. A zero seed falls back to the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.seed = effective
	s.rng.Reseed(effective)
	if s.cfg.Random {
		s.grid.Randomize(s.rng)
	} else {
		s.grid.Fill(Dead)
	}
	s.grid.ResetDeaths()
	s.generation = 0
	s.rebuildDisplay()
	s.log.Info("reset", "seed", effective, "random", s.cfg.Random, "w", s.cfg.Width, "h", s.cfg.Height)
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	_ = s.StepContext(context.Background())
}

// StepContext advances one generation, using the parallel engine when more
// than one worker is configured. On error the grid is unchanged.
func (s *Sim) StepContext(ctx context.Context) error {
	if err := StepParallel(ctx, s.grid, s.cfg.Workers); err != nil {
		return err
	}
	s.generation++
	s.rebuildDisplay()
	d := s.grid.Deaths()
	s.log.Debug("step",
		"generation", s.generation,
		"deaths_fire", d.Fire,
		"deaths_sickness", d.Sickness,
		"deaths_drowning", d.Drowning,
	)
	return nil
}

// Cycle advances the cell at (x, y) to the next state of the edit cycle.
func (s *Sim) Cycle(x, y int) bool {
	if !s.grid.Cycle(x, y) {
		return false
	}
	s.refreshCell(x, y)
	return true
}

// Reseed redraws the 3x3 block centred on (x, y).
func (s *Sim) Reseed(x, y int) bool {
	if !s.grid.Reseed(x, y, s.rng) {
		return false
	}
	s.rebuildDisplay()
	return true
}

// Set overwrites the cell at (x, y).
func (s *Sim) Set(x, y int, st CellState) bool {
	if !s.grid.Set(x, y, st) {
		return false
	}
	s.refreshCell(x, y)
	return true
}

func (s *Sim) refreshCell(x, y int) {
	s.display.Cells()[s.display.Index(x, y)] = uint8(s.grid.At(x, y))
}

func init() {
	core.Register("zing", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
