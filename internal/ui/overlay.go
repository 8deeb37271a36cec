//go:build ebiten

package ui

import (
	"image/color"

	"zing/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional guides on top of the grid: the frozen border ring
// and the block a right click would reseed.
type Overlay struct {
	sim         core.Sim
	scale       int
	showBorder  bool
	showReseed  bool
	borderImg   *ebiten.Image
	borderBuf   []byte
	pixel       *ebiten.Image
	borderTint  color.RGBA
	reseedColor color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{
		sim:         sim,
		scale:       scale,
		showReseed:  true,
		borderTint:  color.RGBA{R: 90, G: 90, B: 200, A: 110},
		reseedColor: color.RGBA{R: 255, G: 255, B: 255, A: 160},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBorder = !o.showBorder
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showReseed = !o.showReseed
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showBorder {
		o.drawBorder(screen, size, scale)
	}
	if o.showReseed {
		o.drawReseedPreview(screen, size, scale)
	}
}

func (o *Overlay) drawBorder(screen *ebiten.Image, size core.Size, scale int) {
	if o.borderImg == nil || o.borderImg.Bounds().Dx() != size.W || o.borderImg.Bounds().Dy() != size.H {
		o.borderImg = ebiten.NewImage(size.W, size.H)
		o.borderBuf = make([]byte, 4*size.W*size.H)
		fillBorderMask(o.borderBuf, size.W, size.H, o.borderTint)
		o.borderImg.WritePixels(o.borderBuf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.borderImg, op)
}

func (o *Overlay) drawReseedPreview(screen *ebiten.Image, size core.Size, scale int) {
	mx, my := ebiten.CursorPosition()
	cx, cy := cellAt(mx, my, scale)
	r, ok := reseedRect(cx, cy, size.W, size.H)
	if !ok {
		return
	}
	x0, y0 := float64(r.Min.X*scale), float64(r.Min.Y*scale)
	x1, y1 := float64(r.Max.X*scale), float64(r.Max.Y*scale)
	o.drawLine(screen, x0, y0, x1, y0)
	o.drawLine(screen, x0, y1-1, x1, y1-1)
	o.drawLine(screen, x0, y0, x0+1, y1)
	o.drawLine(screen, x1-1, y0, x1, y1)
}

// drawLine fills an axis-aligned rectangle at least one pixel thick.
func (o *Overlay) drawLine(screen *ebiten.Image, x0, y0, x1, y1 float64) {
	w, h := x1-x0, y1-y0
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x0, y0)
	op.ColorScale.ScaleWithColor(o.reseedColor)
	screen.DrawImage(o.pixel, op)
}
