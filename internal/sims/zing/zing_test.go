package zing

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"zing/internal/core"
)

func deadSim(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Random = false
	return NewWithConfig(cfg)
}

func TestScenarioDeadRevivedByTwoLiving(t *testing.T) {
	s := deadSim(5, 5)
	s.Set(0, 0, Living)
	s.Set(2, 2, Living)

	c := CensusAt(s.Grid(), 1, 1)
	if c != (Census{Living: 2, Dead: 6}) {
		t.Fatalf("setup census = %+v", c)
	}

	s.Step()
	if got := s.Grid().At(1, 1); got != Living {
		t.Fatalf("(1,1) = %v, want living", got)
	}
}

func TestScenarioSickDiesWithoutFluid(t *testing.T) {
	s := deadSim(3, 3)
	s.Set(1, 1, Sick)

	s.Step()
	if got := s.Grid().At(1, 1); got != Dead {
		t.Fatalf("sick cell = %v, want dead", got)
	}
	if got := s.Deaths(); got != (Deaths{Sickness: 1}) {
		t.Fatalf("deaths = %+v, want one by sickness", got)
	}
}

func TestScenarioLivingShieldedByFluid(t *testing.T) {
	s := deadSim(3, 3)
	s.Set(1, 1, Living)
	neighbours := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	fill := []CellState{Fluid, Fluid, Fluid, Burning, Burning, Sick, Sick, Sick}
	for i, p := range neighbours {
		s.Set(p[0], p[1], fill[i])
	}

	s.Step()
	if got := s.Grid().At(1, 1); got != Living {
		t.Fatalf("shielded cell = %v, want living", got)
	}
	if s.Deaths() != (Deaths{}) {
		t.Fatalf("deaths = %+v, want none", s.Deaths())
	}
}

func TestScenarioBurningWithoutFluidDies(t *testing.T) {
	s := deadSim(3, 3)
	s.Set(1, 1, Burning)
	s.Set(0, 0, Living)
	s.Set(2, 2, Metal)

	s.Step()
	if got := s.Grid().At(1, 1); got != Dead {
		t.Fatalf("burning cell = %v, want dead", got)
	}
	if s.Deaths() != (Deaths{}) {
		t.Fatalf("burning out is not a counted death, got %+v", s.Deaths())
	}
}

func TestScenarioCycleSixTimes(t *testing.T) {
	s := NewWithConfig(DefaultConfig())
	before := s.Grid().At(4, 7)
	for i := 0; i < NumStates; i++ {
		s.Cycle(4, 7)
	}
	if got := s.Grid().At(4, 7); got != before {
		t.Fatalf("after six cycles got %v, want %v", got, before)
	}
}

func TestBorderNeverStepped(t *testing.T) {
	s := NewWithConfig(Config{Width: 20, Height: 15, Seed: 3, SpeedMS: 20, Random: true, Workers: 1})
	g := s.Grid()
	border := func() []CellState {
		var out []CellState
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if !g.Interior(x, y) {
					out = append(out, g.At(x, y))
				}
			}
		}
		return out
	}
	want := border()
	for i := 0; i < 50; i++ {
		s.Step()
		if got := border(); !slices.Equal(got, want) {
			t.Fatalf("border changed at generation %d", s.Generation())
		}
	}
}

func TestUnmatchedCellsRetainState(t *testing.T) {
	s := deadSim(5, 5)
	// A lone metal cell surrounded by dead matches no metal rule.
	s.Set(2, 2, Metal)
	s.Step()
	if got := s.Grid().At(2, 2); got != Metal {
		t.Fatalf("metal = %v, want unchanged", got)
	}
	// The surrounding dead cells see one metal neighbour and stay dead.
	for _, p := range [][2]int{{1, 1}, {3, 3}, {2, 1}} {
		if got := s.Grid().At(p[0], p[1]); got != Dead {
			t.Fatalf("(%d,%d) = %v, want dead", p[0], p[1], got)
		}
	}
}

func TestDeathsMonotonic(t *testing.T) {
	s := NewWithConfig(Config{Width: 40, Height: 30, Seed: 17, Random: true, Workers: 1})
	prev := s.Deaths()
	for i := 0; i < 100; i++ {
		s.Step()
		cur := s.Deaths()
		if cur.Fire < prev.Fire || cur.Sickness < prev.Sickness || cur.Drowning < prev.Drowning {
			t.Fatalf("deaths decreased at generation %d: %+v -> %+v", s.Generation(), prev, cur)
		}
		prev = cur
	}
	if prev.Fire != 0 {
		t.Fatalf("fire deaths = %d, want 0", prev.Fire)
	}
	if prev.Sickness == 0 {
		t.Fatal("expected some deaths by sickness on a random board")
	}
}

func TestStepDeterministic(t *testing.T) {
	cfg := Config{Width: 32, Height: 24, Seed: 99, Random: true, Workers: 1}
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Grid().Cells(), b.Grid().Cells()) {
		t.Fatal("identical sims diverged")
	}
	if a.Deaths() != b.Deaths() {
		t.Fatalf("deaths diverged: %+v vs %+v", a.Deaths(), b.Deaths())
	}
}

func TestResetDeterministic(t *testing.T) {
	s := NewWithConfig(Config{Width: 20, Height: 20, Seed: 41, Random: true})
	initial := append([]uint8(nil), s.Cells()...)
	if s.Seed() != 41 {
		t.Fatalf("seed = %d, want 41", s.Seed())
	}

	s.Step()
	s.Cycle(5, 5)
	s.Reset(0)
	if !slices.Equal(initial, s.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if s.Generation() != 0 || s.Deaths() != (Deaths{}) {
		t.Fatalf("Reset left generation=%d deaths=%+v", s.Generation(), s.Deaths())
	}

	s.Reset(777)
	seeded := append([]uint8(nil), s.Cells()...)
	s.Reset(777)
	if !slices.Equal(seeded, s.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestDisplayTracksGrid(t *testing.T) {
	s := NewWithConfig(Config{Width: 10, Height: 8, Seed: 2, Random: true})
	check := func(stage string) {
		t.Helper()
		for i, c := range s.Grid().Cells() {
			if s.Cells()[i] != uint8(c) {
				t.Fatalf("%s: display[%d] = %d, want %d", stage, i, s.Cells()[i], c)
			}
		}
	}
	check("reset")
	s.Step()
	check("step")
	s.Cycle(0, 0)
	check("cycle")
	s.Reseed(9, 7)
	check("reseed")
	if len(s.Palette()) != NumStates {
		t.Fatalf("palette has %d entries, want %d", len(s.Palette()), NumStates)
	}
}

func TestEditsOutOfRange(t *testing.T) {
	s := deadSim(4, 4)
	if s.Cycle(4, 4) || s.Reseed(10, 10) || s.Set(-1, 0, Living) {
		t.Fatal("out of range edits should report false")
	}
	if s.Generation() != 0 {
		t.Fatal("edits must not advance the generation")
	}
}

func TestSpeedIsMetadata(t *testing.T) {
	s := deadSim(5, 5)
	if s.Speed() != DefaultSpeedMS*time.Millisecond {
		t.Fatalf("default speed = %v", s.Speed())
	}
	s.SetSpeed(150 * time.Millisecond)
	if s.Speed() != 150*time.Millisecond {
		t.Fatalf("speed = %v, want 150ms", s.Speed())
	}
	if !s.SetIntParameter("speed_ms", -4) || s.Speed() != 0 {
		t.Fatalf("negative speed should clamp to zero, got %v", s.Speed())
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown parameter accepted")
	}
}

func TestParametersReportDeaths(t *testing.T) {
	s := deadSim(3, 3)
	s.Set(1, 1, Sick)
	s.Step()
	snap := s.Parameters()
	p, ok := snap.Lookup("deaths_sickness")
	if !ok || p.Value != "1" {
		t.Fatalf("deaths_sickness = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("generation"); !ok || p.Value != "1" {
		t.Fatalf("generation = %+v, %v", p, ok)
	}
}

func TestStepLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := deadSim(3, 3).WithLogger(logger)
	s.Set(1, 1, Sick)
	s.Step()
	out := buf.String()
	if !strings.Contains(out, "msg=step") || !strings.Contains(out, "deaths_sickness=1") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("zing")
	if !ok {
		t.Fatal("zing not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "9"})
	if sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if len(sim.Cells()) != 12*9 {
		t.Fatalf("cells = %d", len(sim.Cells()))
	}
}
