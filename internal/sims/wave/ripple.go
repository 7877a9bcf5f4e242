package wave

import (
	"math"

	"ripple-ca/internal/core"
)

// Ripple is a single-cell sinusoidal force generator with a finite lifetime.
// It holds no reference to its model; the force buffer is passed to
// ApplyForce explicitly.
type Ripple struct {
	Row, Col int

	// Wavelength is the lifetime in ticks, always at least 1.
	Wavelength int
	Remaining  int
	Peak       float64
}

// NewRipple builds a ripple with already resolved parameters.
func NewRipple(row, col, wavelength int, peak float64) Ripple {
	if wavelength < 1 {
		wavelength = 1
	}
	return Ripple{Row: row, Col: col, Wavelength: wavelength, Remaining: wavelength, Peak: peak}
}

// SpawnRipple resolves a ripple for a rows x cols grid from p, drawing any
// randomized field from rng.
func SpawnRipple(rows, cols int, p Params, rng *core.RNG) Ripple {
	row := axisCell(p.SpawnRow.Resolve(rng), rows)
	col := axisCell(p.SpawnCol.Resolve(rng), cols)
	return resolveAt(row, col, p, rng)
}

func resolveAt(row, col int, p Params, rng *core.RNG) Ripple {
	var wavelength int
	if p.Wavelength < 0 {
		wavelength = 1 + int(math.Floor(rng.Between(-p.Wavelength)))
	} else {
		wavelength = 1 + int(math.Floor(p.Wavelength))
	}
	peak := p.Magnitude
	if peak < 0 {
		peak = rng.Between(-peak)
	}
	return NewRipple(row, col, wavelength, peak)
}

// axisCell maps a fraction in [0, 1] to a cell index in [0, n).
func axisCell(frac float64, n int) int {
	i := int(math.Floor(frac * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Progress returns how far through its single sine cycle the ripple is.
func (r Ripple) Progress() float64 {
	return float64(r.Wavelength-r.Remaining) / float64(r.Wavelength)
}

// Active reports whether the ripple has ticks left.
func (r Ripple) Active() bool { return r.Remaining > 0 }

// ApplyForce consumes one tick and overwrites the force at the ripple's cell
// with the sine sample for that tick. A second ripple on the same cell in the
// same tick replaces the first one's value. It returns false once the ripple
// has used its last tick. The first sample is taken at progress 1/wavelength
// so a fresh ripple pushes on the surface from its first tick.
func (r *Ripple) ApplyForce(force *core.Grid) bool {
	if r.Remaining <= 0 {
		return false
	}
	r.Remaining--
	force.Set(r.Row, r.Col, r.Peak*math.Sin(2*math.Pi*r.Progress()))
	return r.Remaining != 0
}
