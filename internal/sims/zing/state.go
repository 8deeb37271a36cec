package zing

import (
	"image/color"

	"zing/internal/core"
)

// CellState is the tag held by every cell of the grid.
type CellState uint8

const (
	Living CellState = iota
	Sick
	Fluid
	Metal
	Burning
	Dead
)

// NumStates is the number of distinct cell states.
const NumStates = 6

var stateNames = [NumStates]string{"living", "sick", "fluid", "metal", "burning", "dead"}

// String returns the lower-case state name.
func (s CellState) String() string {
	if int(s) < NumStates {
		return stateNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the six states.
func (s CellState) Valid() bool { return s < NumStates }

// Next returns the successor of s in the edit cycle
// Living → Sick → Fluid → Metal → Burning → Dead → Living.
func (s CellState) Next() CellState {
	return (s + 1) % NumStates
}

// Color returns the display color associated with s.
func (s CellState) Color() color.RGBA {
	switch s {
	case Living:
		return color.RGBA{R: 0xEF, G: 0xE9, B: 0xF4, A: 0xFF}
	case Sick:
		return color.RGBA{R: 0x57, G: 0xA7, B: 0x73, A: 0xFF}
	case Fluid:
		return color.RGBA{R: 0x08, G: 0xB2, B: 0xE3, A: 0xFF}
	case Metal:
		return color.RGBA{R: 0x48, G: 0x4D, B: 0x6D, A: 0xFF}
	case Burning:
		return color.RGBA{R: 0xEE, G: 0x63, B: 0x52, A: 0xFF}
	default:
		return color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
	}
}

// RandomState draws a state uniformly from the six variants.
func RandomState(rng *core.RNG) CellState {
	return CellState(rng.Uint8n(NumStates))
}

// ParseState maps a state name back to its CellState.
func ParseState(name string) (CellState, bool) {
	for i, n := range stateNames {
		if n == name {
			return CellState(i), true
		}
	}
	return Dead, false
}
