package term

import (
	"image/color"
	"testing"

	"ripple-ca/internal/core"
	"ripple-ca/internal/sims/wave"

	"github.com/gdamore/tcell/v2"
)

type fakeSim struct {
	w, h     int
	cells    []uint8
	steps    int
	resets   []int64
	disturbs [][2]int
}

func newFakeSim(w, h int) *fakeSim {
	return &fakeSim{w: w, h: h, cells: make([]uint8, w*h)}
}

func (f *fakeSim) Name() string          { return "fake" }
func (f *fakeSim) Size() core.Size       { return core.Size{W: f.w, H: f.h} }
func (f *fakeSim) Reset(seed int64)      { f.resets = append(f.resets, seed) }
func (f *fakeSim) Step()                 { f.steps++ }
func (f *fakeSim) Cells() []uint8        { return f.cells }
func (f *fakeSim) Palette() []color.RGBA { return []color.RGBA{{A: 255}, {R: 255, A: 255}, {G: 255, A: 255}} }
func (f *fakeSim) Disturb(x, y int) error {
	f.disturbs = append(f.disturbs, [2]int{x, y})
	return nil
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBuildColorsFallsBackToBinary(t *testing.T) {
	colors := BuildColors(nil)
	if len(colors) != 2 || colors[0] != tcell.ColorBlack || colors[1] != tcell.ColorWhite {
		t.Fatalf("unexpected fallback colors %v", colors)
	}
	got := BuildColors([]color.RGBA{{R: 10, G: 20, B: 30, A: 255}})
	if got[0] != tcell.NewRGBColor(10, 20, 30) {
		t.Fatalf("palette color not converted: %v", got[0])
	}
}

func TestCellStyleStacksRows(t *testing.T) {
	colors := BuildColors([]color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}})
	fg, bg, _ := CellStyle(colors, 0, 1, true).Decompose()
	if fg != colors[0] || bg != colors[1] {
		t.Fatalf("expected fg %v bg %v, got %v %v", colors[0], colors[1], fg, bg)
	}
	_, bg, _ = CellStyle(colors, 1, 0, false).Decompose()
	if bg != tcell.ColorBlack {
		t.Fatalf("missing bottom row should be black, got %v", bg)
	}
	fg, _, _ = CellStyle(colors, 200, 0, false).Decompose()
	if fg != colors[1] {
		t.Fatalf("out of range index should clamp to last color, got %v", fg)
	}
}

func TestDrawPacksTwoRowsPerCell(t *testing.T) {
	screen := newScreen(t, 10, 10)
	sim := newFakeSim(4, 5)
	sim.cells[0] = 1
	sim.cells[4] = 2
	d := New(screen, sim, 60, 1)
	d.Draw()

	contents, w, _ := screen.GetContents()
	for ty := 0; ty < 3; ty++ {
		for x := 0; x < 4; x++ {
			cell := contents[ty*w+x]
			if len(cell.Runes) == 0 || cell.Runes[0] != halfBlock {
				t.Fatalf("cell %d,%d: expected half block, got %v", x, ty, cell.Runes)
			}
		}
	}
	if r := contents[3*w]; len(r.Runes) > 0 && r.Runes[0] == halfBlock {
		t.Fatal("rows beyond the grid must stay blank")
	}
	fg, bg, _ := contents[0].Style.Decompose()
	if fg != d.colors[1] || bg != d.colors[2] {
		t.Fatalf("top-left cell colors wrong: fg %v bg %v", fg, bg)
	}
}

func TestHandleEventKeys(t *testing.T) {
	screen := newScreen(t, 8, 4)
	sim := newFakeSim(4, 4)
	d := New(screen, sim, 60, 7)

	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !d.Paused() {
		t.Fatal("space should pause")
	}
	if d.Tick() {
		t.Fatal("paused driver must not step")
	}
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !d.Tick() || sim.steps != 1 {
		t.Fatalf("single step while paused failed, steps=%d", sim.steps)
	}

	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if len(sim.resets) != 2 || sim.resets[0] != 7 || sim.resets[1] != 8 {
		t.Fatalf("unexpected resets %v", sim.resets)
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if d.HandleEvent(ev) {
			t.Fatalf("key %v should quit", ev.Name())
		}
	}
}

func TestMouseClickDisturbsGrid(t *testing.T) {
	screen := newScreen(t, 8, 4)
	sim := newFakeSim(4, 6)
	d := New(screen, sim, 60, 1)

	d.HandleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	d.HandleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	d.HandleEvent(tcell.NewEventMouse(7, 1, tcell.Button1, tcell.ModNone))
	if len(sim.disturbs) != 1 || sim.disturbs[0] != [2]int{2, 2} {
		t.Fatalf("expected one disturbance at 2,2, got %v", sim.disturbs)
	}
}

func TestMouseClickStartsRipple(t *testing.T) {
	cfg := wave.DefaultConfig()
	cfg.Width, cfg.Height = 12, 12
	cfg.Params.Ripples = 0
	sim, err := wave.NewSim(cfg)
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	d := New(newScreen(t, 12, 6), sim, 60, cfg.Seed)
	d.HandleEvent(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	if got := sim.Model().ActiveRipples(); got != 1 {
		t.Fatalf("expected one ripple after click, got %d", got)
	}
	if r := sim.Model().Ripples()[0]; r.Row != 4 || r.Col != 3 {
		t.Fatalf("ripple placed at %d,%d", r.Row, r.Col)
	}
}
