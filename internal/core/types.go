package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement for the
// drivers. Cells returns one display byte per cell in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Disturber is implemented by sims that accept pointer-driven disturbances at
// a grid cell (x is the column, y the row).
type Disturber interface {
	Disturb(x, y int) error
}

// Source marks an active disturbance at cell (X, Y). Progress runs from 0 to
// 1 over its lifetime.
type Source struct {
	X, Y     int
	Progress float64
}

// SourceProvider is implemented by sims that can list active disturbances.
type SourceProvider interface {
	Sources() []Source
}

// PaletteProvider is implemented by sims whose Cells are palette indices.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
