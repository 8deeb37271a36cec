//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"zing/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the statistics and controls panel to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	intSetter    core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), width)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	refreshControls(h.controls, h.snapshot)
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s Controls", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:])
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	if i, dir, ok := hitControl(h.controls, mx-h.panelOffsetX, my); ok {
		applyAdjustment(&h.controls[i], dir, h.intSetter)
	}
}

var (
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, minusOK := adjustTarget(*state, -1)
		_, plusOK := adjustTarget(*state, 1)
		h.drawButton(state.minusRect, "-", minusOK && h.intSetter != nil)
		h.drawButton(state.plusRect, "+", plusOK && h.intSetter != nil)
	}
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + headerBaseline
	for _, line := range statLines(h.snapshot, "Run", "Deaths") {
		text.Draw(h.panel, line.label, face, panelPadding, y, mutedColor)
		valueWidth := text.BoundString(face, line.value).Dx()
		text.Draw(h.panel, line.value, face, h.width-panelPadding-valueWidth, y, textColor)
		y += statLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
