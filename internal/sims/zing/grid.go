package zing

import "zing/internal/core"

// MinDim is the smallest width or height that still leaves an interior cell.
const MinDim = 3

// Deaths accumulates cause-of-death counters.
type Deaths struct {
	Fire     int `json:"fire"`
	Sickness int `json:"sickness"`
	Drowning int `json:"drowning"`
}

// Total returns the number of recorded deaths across all causes.
func (d Deaths) Total() int { return d.Fire + d.Sickness + d.Drowning }

// Add returns the component-wise sum of d and o.
func (d Deaths) Add(o Deaths) Deaths {
	return Deaths{Fire: d.Fire + o.Fire, Sickness: d.Sickness + o.Sickness, Drowning: d.Drowning + o.Drowning}
}

// Sub returns the component-wise difference d - o.
func (d Deaths) Sub(o Deaths) Deaths {
	return Deaths{Fire: d.Fire - o.Fire, Sickness: d.Sickness - o.Sickness, Drowning: d.Drowning - o.Drowning}
}

func (d *Deaths) record(c Cause) {
	switch c {
	case CauseFire:
		d.Fire++
	case CauseSickness:
		d.Sickness++
	case CauseDrowning:
		d.Drowning++
	}
}

// Grid is a fixed-size field of cell states plus the death counters the
// transition engine accumulates. Cells are stored row-major.
type Grid struct {
	w, h   int
	cur    []CellState
	nxt    []CellState
	deaths Deaths
}

// NewGrid allocates an all-Dead grid. Dimensions below MinDim are raised to
// MinDim.
func NewGrid(w, h int) *Grid {
	if w < MinDim {
		w = MinDim
	}
	if h < MinDim {
		h = MinDim
	}
	total := w * h
	g := &Grid{w: w, h: h, cur: make([]CellState, total), nxt: make([]CellState, total)}
	g.Fill(Dead)
	return g
}

// NewRandomGrid allocates a grid whose cells are drawn independently and
// uniformly from the six states.
func NewRandomGrid(w, h int, rng *core.RNG) *Grid {
	g := NewGrid(w, h)
	g.Randomize(rng)
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the current generation. Callers must treat it as read-only.
func (g *Grid) Cells() []CellState { return g.cur }

// Snapshot returns a copy of the current generation.
func (g *Grid) Snapshot() []CellState {
	return append([]CellState(nil), g.cur...)
}

// Deaths returns the accumulated death counters.
func (g *Grid) Deaths() Deaths { return g.deaths }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Interior reports whether (x, y) is off the border ring.
func (g *Grid) Interior(x, y int) bool {
	return x >= 1 && x <= g.w-2 && y >= 1 && y <= g.h-2
}

// At returns the state at (x, y). Out-of-range coordinates read as Dead.
func (g *Grid) At(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cur[y*g.w+x]
}

// Set overwrites one cell. It reports false and does nothing when the
// coordinates fall outside the grid or s is not a valid state.
func (g *Grid) Set(x, y int, s CellState) bool {
	if !g.InBounds(x, y) || !s.Valid() {
		return false
	}
	g.cur[y*g.w+x] = s
	return true
}

// Fill sets every cell, border included, to s.
func (g *Grid) Fill(s CellState) {
	for i := range g.cur {
		g.cur[i] = s
	}
}

// Randomize redraws every cell uniformly from the six states.
func (g *Grid) Randomize(rng *core.RNG) {
	for i := range g.cur {
		g.cur[i] = RandomState(rng)
	}
}

// ResetDeaths zeroes the death counters.
func (g *Grid) ResetDeaths() { g.deaths = Deaths{} }

// Cycle advances the cell at (x, y) to the next state of the edit cycle.
func (g *Grid) Cycle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	idx := y*g.w + x
	g.cur[idx] = g.cur[idx].Next()
	return true
}

// Reseed redraws the 3x3 block centred on (x, y), skipping block cells
// outside the grid. It reports whether any cell was touched.
func (g *Grid) Reseed(x, y int, rng *core.RNG) bool {
	touched := false
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			g.cur[ny*g.w+nx] = RandomState(rng)
			touched = true
		}
	}
	return touched
}
