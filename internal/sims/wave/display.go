package wave

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// RestIndex is the palette index of an undisturbed cell.
	RestIndex = 128

	paletteSize = 256
	minGain     = 0.5
)

var (
	troughColor = mustHex("#04122b")
	restColor   = mustHex("#0f4c81")
	crestColor  = mustHex("#d8f3ff")

	wavePalette = buildWavePalette()
)

// mustHex parses a palette constant and panics on a malformed value.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette exposes the color palette used for rendering the surface.
func (s *Sim) Palette() []color.RGBA {
	return wavePalette
}

// Gain returns the magnitude currently mapped to the palette extremes.
func (s *Sim) Gain() float64 { return s.gain.pos }

func buildWavePalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i := range palette {
		var c colorful.Color
		if i < RestIndex {
			c = troughColor.BlendLab(restColor, float64(i)/RestIndex)
		} else {
			c = restColor.BlendLab(crestColor, float64(i-RestIndex)/float64(paletteSize-1-RestIndex))
		}
		r, g, b := c.Clamped().RGB255()
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// Quantize maps a magnitude to a palette index; gain is the magnitude that
// saturates towards the trough or crest colors.
func Quantize(m, gain float64) uint8 {
	if gain <= 0 || math.IsNaN(m) {
		return RestIndex
	}
	idx := RestIndex + int(math.Round(127*math.Tanh(m/gain)))
	if idx < 0 {
		idx = 0
	}
	if idx > paletteSize-1 {
		idx = paletteSize - 1
	}
	return uint8(idx)
}

// autoGain follows the surface peak with a critically damped spring so the
// display contrast adapts without flicker.
type autoGain struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newAutoGain() autoGain {
	return autoGain{
		spring: harmonica.NewSpring(harmonica.FPS(60), 3.0, 1.0),
		pos:    minGain,
	}
}

func (a *autoGain) update(peak float64) float64 {
	target := math.Max(peak, minGain)
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, target)
	if a.pos < minGain || math.IsNaN(a.pos) {
		a.pos, a.vel = minGain, 0
	}
	return a.pos
}

func (s *Sim) rebuildDisplay() {
	mag := s.model.Magnitude()
	peak := 0.0
	for r := 0; r < mag.Rows(); r++ {
		for c := 0; c < mag.Cols(); c++ {
			peak = math.Max(peak, math.Abs(mag.At(r, c)))
		}
	}
	gain := s.gain.update(peak)
	for r := 0; r < mag.Rows(); r++ {
		for c := 0; c < mag.Cols(); c++ {
			s.display[r*mag.Cols()+c] = Quantize(mag.At(r, c), gain)
		}
	}
}
