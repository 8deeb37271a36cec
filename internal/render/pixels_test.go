package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 255, 10, 20, 30, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{3, 4}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}
