// Package term drives a simulation inside a terminal using tcell. Each
// terminal cell shows two grid rows with an upper half block.
package term

import (
	"context"
	"image/color"
	"log"
	"time"

	"ripple-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Driver owns the screen and the tick loop for one simulation.
type Driver struct {
	screen  tcell.Screen
	sim     core.Sim
	timer   *core.FixedStep
	seed    int64
	colors  []tcell.Color
	paused  bool
	stepOne bool
}

// New wires sim to an initialised screen.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Driver {
	d := &Driver{
		screen: screen,
		sim:    sim,
		timer:  core.NewFixedStep(tps),
		seed:   seed,
	}
	var palette []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	d.colors = BuildColors(palette)
	return d
}

// BuildColors converts a palette into per-index terminal colors. An empty
// palette yields black and white for binary sims.
func BuildColors(palette []color.RGBA) []tcell.Color {
	if len(palette) == 0 {
		return []tcell.Color{tcell.ColorBlack, tcell.ColorWhite}
	}
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return colors
}

// CellStyle combines two stacked grid cells into one terminal cell: top as
// foreground, bottom as background.
func CellStyle(colors []tcell.Color, top, bottom uint8, hasBottom bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(pick(colors, top)).Background(tcell.ColorBlack)
	if hasBottom {
		style = style.Background(pick(colors, bottom))
	}
	return style
}

// pick clamps idx into colors. Binary sims emit 0 or 1 only.
func pick(colors []tcell.Color, idx uint8) tcell.Color {
	i := int(idx)
	if i >= len(colors) {
		i = len(colors) - 1
	}
	return colors[i]
}

// Run polls input and steps the sim until the user quits or ctx ends.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.timer.Interval())
	defer ticker.Stop()
	d.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if d.Tick() {
				d.Draw()
			}
		}
	}
}

// Tick advances the sim when the fixed-step timer allows it. It reports
// whether the surface changed.
func (d *Driver) Tick() bool {
	if d.stepOne {
		d.stepOne = false
		d.sim.Step()
		return true
	}
	if d.paused || !d.timer.ShouldStep() {
		return false
	}
	d.sim.Step()
	return true
}

// HandleEvent applies one input event and returns false when the driver
// should stop.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			d.stepOne = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				d.paused = !d.paused
			case 'n':
				d.stepOne = true
			case 'r':
				d.sim.Reset(d.seed)
				d.Draw()
			case 's':
				d.seed++
				d.sim.Reset(d.seed)
				d.Draw()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		d.disturb(x, y*2)
	case *tcell.EventResize:
		d.screen.Sync()
		d.Draw()
	}
	return true
}

// Paused reports whether automatic stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Seed returns the seed used by the next reset.
func (d *Driver) Seed() int64 { return d.seed }

func (d *Driver) disturb(x, y int) {
	dist, ok := d.sim.(core.Disturber)
	if !ok {
		return
	}
	size := d.sim.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return
	}
	if err := dist.Disturb(x, y); err != nil {
		log.Printf("term: disturb at %d,%d: %v", x, y, err)
	}
}

// Draw paints the visible part of the grid and flushes the screen.
func (d *Driver) Draw() {
	size := d.sim.Size()
	cells := d.sim.Cells()
	sw, sh := d.screen.Size()
	d.screen.Clear()
	for ty := 0; ty < sh; ty++ {
		top := ty * 2
		if top >= size.H {
			break
		}
		for x := 0; x < sw && x < size.W; x++ {
			bottom := top + 1
			hasBottom := bottom < size.H
			var b uint8
			if hasBottom {
				b = cells[bottom*size.W+x]
			}
			style := CellStyle(d.colors, cells[top*size.W+x], b, hasBottom)
			d.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	d.screen.Show()
}
