package ui

import (
	"image"
	"image/color"
)

// fillBorderMask writes tint into buf for every border-ring cell of a w x h
// grid and clears the interior.
func fillBorderMask(buf []byte, w, h int, tint color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				buf[base+0] = tint.R
				buf[base+1] = tint.G
				buf[base+2] = tint.B
				buf[base+3] = tint.A
				continue
			}
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
	}
}

// reseedRect returns the cells a reseed centred on (cx, cy) would touch,
// clipped to the grid. ok is false when nothing would be touched.
func reseedRect(cx, cy, w, h int) (image.Rectangle, bool) {
	r := image.Rect(cx-1, cy-1, cx+2, cy+2).Intersect(image.Rect(0, 0, w, h))
	return r, !r.Empty()
}

// cellAt maps a screen position to grid coordinates.
func cellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
