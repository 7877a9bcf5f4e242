//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"ripple-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim         core.Sim
	scale       int
	showSources bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSources = !o.showSources
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showSources {
		return
	}
	provider, ok := o.sim.(core.SourceProvider)
	if !ok {
		return
	}
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	for _, src := range provider.Sources() {
		cx := (float64(src.X) + 0.5) * scale
		cy := (float64(src.Y) + 0.5) * scale
		// Marker pulses with the ripple's sine phase.
		size := scale * (1.5 + math.Abs(math.Sin(2*math.Pi*src.Progress)))
		o.drawPoint(screen, cx, cy, size, sourceColor(src.Progress))
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func sourceColor(progress float64) color.RGBA {
	t := math.Max(0, math.Min(1, progress))
	return color.RGBA{
		R: uint8(255 - 155*t),
		G: uint8(200 - 80*t),
		B: 60,
		A: 220,
	}
}
