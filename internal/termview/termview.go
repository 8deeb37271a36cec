// Package termview prints Zing grids and death tallies to a terminal.
package termview

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"zing/internal/sims/zing"
)

// xterm-256 colors closest to each state's display color.
var stateIndex = [zing.NumStates]uint8{
	zing.Living:  255,
	zing.Sick:    71,
	zing.Fluid:   38,
	zing.Metal:   60,
	zing.Burning: 203,
	zing.Dead:    238,
}

var stateGlyph = [zing.NumStates]byte{
	zing.Living:  'L',
	zing.Sick:    'S',
	zing.Fluid:   'F',
	zing.Metal:   'M',
	zing.Burning: 'B',
	zing.Dead:    '.',
}

// Glyph returns the single character used for s in uncolored output.
func Glyph(s zing.CellState) byte {
	if !s.Valid() {
		return '?'
	}
	return stateGlyph[s]
}

// Render writes g one row per line, two columns per cell. With color
// enabled each cell is a background-colored block; otherwise a glyph.
func Render(w io.Writer, g *zing.Grid, color bool) error {
	au := aurora.NewAurora(color)
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s := g.At(x, y)
			if color {
				bw.WriteString(au.BgIndex(stateIndex[s], "  ").String())
				continue
			}
			bw.WriteByte(Glyph(s))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Summary formats the death counters on one line.
func Summary(d zing.Deaths, color bool) string {
	au := aurora.NewAurora(color)
	return fmt.Sprintf("deaths: fire=%v sickness=%v drowning=%v total=%v",
		au.Red(d.Fire),
		au.Green(d.Sickness),
		au.Cyan(d.Drowning),
		au.Bold(d.Total()),
	)
}
