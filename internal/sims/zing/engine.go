package zing

// Cause classifies a transition that counts as a death.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseFire
	CauseSickness
	CauseDrowning
)

// String returns the lower-case cause name.
func (c Cause) String() string {
	switch c {
	case CauseFire:
		return "fire"
	case CauseSickness:
		return "sickness"
	case CauseDrowning:
		return "drowning"
	default:
		return "none"
	}
}

func between(v, lo, hi int) bool { return v >= lo && v <= hi }

// Transition evaluates the rule cascade for a cell in state cur with the
// given neighbour census. The first matching rule wins; a cell no rule
// matches keeps cur. The returned Cause is CauseNone unless the transition
// is a counted death.
func Transition(cur CellState, c Census) (CellState, Cause) {
	switch cur {
	case Living:
		return transitionLiving(c)
	case Sick:
		if c.Fluid >= 1 {
			return Living, CauseNone
		}
		return Dead, CauseSickness
	case Fluid:
		switch {
		case between(c.Living, 3, 4):
			return Living, CauseNone
		case c.Burning >= 4:
			return Dead, CauseNone
		}
	case Metal:
		switch {
		case !between(c.Fluid, 3, 4) && between(c.Burning, 2, 3):
			return Fluid, CauseNone
		case c.Fluid >= 1:
			return Living, CauseNone
		case between(c.Sick, 1, 2):
			return Living, CauseNone
		}
	case Burning:
		switch {
		case between(c.Fluid, 1, 3):
			return Living, CauseNone
		case c.Fluid >= 2:
			return Fluid, CauseNone
		default:
			return Dead, CauseNone
		}
	case Dead:
		switch {
		case c.Fluid == 4 && c.Burning == 4:
			return Living, CauseNone
		case c.Living == 2 && c.Sick == 0 && c.Fluid == 0 && c.Metal == 0 && c.Burning == 0:
			return Living, CauseNone
		}
	}
	return cur, CauseNone
}

func transitionLiving(c Census) (CellState, Cause) {
	// Three or four fluid neighbours shield a living cell from every rule.
	if between(c.Fluid, 3, 4) {
		return Living, CauseNone
	}
	switch {
	case c.Burning >= 1:
		return Burning, CauseNone
	case c.Burning >= 3:
		// Never reached: the branch above takes every burning count >= 1.
		// Kept so the cascade order stays exactly as defined.
		return Dead, CauseFire
	case between(c.Sick, 1, 2):
		if c.Metal < 2 {
			return Sick, CauseNone
		}
		return Living, CauseNone
	case between(c.Sick, 3, 4):
		return Metal, CauseNone
	case c.Sick >= 5:
		return Dead, CauseSickness
	case c.Fluid >= 5:
		return Dead, CauseDrowning
	case c.Dead >= 5:
		if c.Metal < 2 {
			return Sick, CauseNone
		}
		return Living, CauseNone
	case c.Living >= 4:
		return Dead, CauseNone
	}
	return Living, CauseNone
}

// Step advances g by one generation. Every interior cell is computed from
// the current generation into the spare buffer, which starts as a copy of
// the current one, and the buffers are swapped once all cells are done.
// Border cells are carried over unchanged.
func Step(g *Grid) {
	copy(g.nxt, g.cur)
	d := stepRows(g.cur, g.nxt, g.w, 1, g.h-1)
	g.commit(d)
}

// stepRows computes rows [y0, y1) of the next generation into nxt and
// returns the deaths recorded on those rows.
func stepRows(cur, nxt []CellState, w, y0, y1 int) Deaths {
	var d Deaths
	for y := y0; y < y1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			idx := row + x
			next, cause := Transition(cur[idx], censusOf(cur, w, x, y))
			nxt[idx] = next
			d.record(cause)
		}
	}
	return d
}

func (g *Grid) commit(d Deaths) {
	g.cur, g.nxt = g.nxt, g.cur
	g.deaths = g.deaths.Add(d)
}
