package core

import "testing"

func TestByteGridIndexing(t *testing.T) {
	g := NewByteGrid(4, 3)
	if len(g.Cells()) != 12 {
		t.Fatalf("len = %d, want 12", len(g.Cells()))
	}
	g.Cells()[g.Index(3, 2)] = 7
	if g.Cells()[11] != 7 {
		t.Fatal("Index(3,2) should address the last cell")
	}
	if !g.InBounds(3, 2) || g.InBounds(4, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds mismatch")
	}
	g.Clear()
	if g.Cells()[11] != 0 {
		t.Fatal("Clear left data behind")
	}
	if small := NewByteGrid(0, -2); small.W != 1 || small.H != 1 {
		t.Fatalf("degenerate size = %dx%d", small.W, small.H)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Uint8n(6) != b.Uint8n(6) {
			t.Fatal("same seed diverged")
		}
	}
	a.Reseed(7)
	b.Reseed(7)
	if a.Bool() != b.Bool() {
		t.Fatal("Reseed diverged")
	}
	if NewRNG(1).Uint8n(0) != 0 {
		t.Fatal("Uint8n(0) should return 0")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup found missing key")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, HasMin: true, Max: 100, HasMax: true}
	if c.Clamp(-5) != 0 || c.Clamp(150) != 100 || c.Clamp(40) != 40 {
		t.Fatal("Clamp mismatch")
	}
	if (ParameterControl{}).Clamp(-5) != -5 {
		t.Fatal("unbounded control should not clamp")
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	if _, ok := Lookup(""); ok {
		t.Fatal("empty name registered")
	}
	Register("noop", nil)
	if _, ok := Lookup("noop"); ok {
		t.Fatal("nil factory registered")
	}
}
