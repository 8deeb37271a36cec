package zing

// Census tallies the states of a cell's eight Moore neighbours.
type Census struct {
	Living  int
	Sick    int
	Fluid   int
	Metal   int
	Burning int
	Dead    int
}

// Total returns the number of neighbours counted.
func (c Census) Total() int {
	return c.Living + c.Sick + c.Fluid + c.Metal + c.Burning + c.Dead
}

// Count returns the tally for s.
func (c Census) Count(s CellState) int {
	switch s {
	case Living:
		return c.Living
	case Sick:
		return c.Sick
	case Fluid:
		return c.Fluid
	case Metal:
		return c.Metal
	case Burning:
		return c.Burning
	default:
		return c.Dead
	}
}

func (c *Census) add(s CellState) {
	switch s {
	case Living:
		c.Living++
	case Sick:
		c.Sick++
	case Fluid:
		c.Fluid++
	case Metal:
		c.Metal++
	case Burning:
		c.Burning++
	default:
		c.Dead++
	}
}

// CensusAt counts the neighbours of the interior cell (x, y) in g's current
// generation. Callers must pass interior coordinates.
func CensusAt(g *Grid, x, y int) Census {
	return censusOf(g.cur, g.w, x, y)
}

func censusOf(cells []CellState, w, x, y int) Census {
	var c Census
	for dy := -1; dy <= 1; dy++ {
		row := (y + dy) * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c.add(cells[row+x+dx])
		}
	}
	return c
}
