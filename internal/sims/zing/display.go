package zing

import "image/color"

var zingPalette = buildPalette()

// Palette exposes the colors indexed by the values in Cells.
func (s *Sim) Palette() []color.RGBA {
	return zingPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, NumStates)
	for i := range palette {
		palette[i] = CellState(i).Color()
	}
	return palette
}

func (s *Sim) rebuildDisplay() {
	cells := s.grid.Cells()
	display := s.display.Cells()
	for i, c := range cells {
		display[i] = uint8(c)
	}
}
