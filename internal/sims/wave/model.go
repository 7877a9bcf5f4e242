package wave

import (
	"fmt"
	"math"

	"ripple-ca/internal/core"
)

const (
	orthoWeight = math.Pi
	diagWeight  = 1.0
	// selfWeight balances the eight neighbor weights so a flat surface feels
	// no force.
	selfWeight = 4*orthoWeight + 4*diagWeight
)

// Model owns the surface buffers and the active ripples. It is not safe for
// concurrent use: callers run GenerateForces then Advance once per tick and
// only read the magnitude view between ticks.
type Model struct {
	rows, cols int
	params     Params
	influence  float64
	rng        *core.RNG

	force *core.Grid
	vel   *core.DoubleGrid
	mag   *core.DoubleGrid

	ripples []Ripple
	spawn   float64
	tick    int
}

// New builds a model for a rows x cols surface. A nil rng is replaced by a
// deterministic generator.
func New(rows, cols int, p Params, rng *core.RNG) (*Model, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(1)
	}
	m := &Model{
		rows:      rows,
		cols:      cols,
		params:    p,
		influence: p.Influence(),
		rng:       rng,
		force:     core.NewGrid(rows, cols, 0),
		vel:       core.NewDoubleGrid(rows, cols, 0),
		mag:       core.NewDoubleGrid(rows, cols, 0),
	}
	m.seedSpawns()
	return m, nil
}

func (m *Model) seedSpawns() {
	m.spawn = 0
	if m.params.Ripples < 0 {
		m.spawn = -m.params.Ripples
	}
}

// Rows returns the surface height in cells.
func (m *Model) Rows() int { return m.rows }

// Cols returns the surface width in cells.
func (m *Model) Cols() int { return m.cols }

// Params returns the configuration the model was built with.
func (m *Model) Params() Params { return m.params }

// Tick returns the number of completed Step calls.
func (m *Model) Tick() int { return m.tick }

// Magnitude returns a read-only view of the current wave heights.
func (m *Model) Magnitude() View { return View{g: m.mag.Current()} }

// Velocity returns a read-only view of the current velocities.
func (m *Model) Velocity() View { return View{g: m.vel.Current()} }

// ActiveRipples returns how many ripples are still generating force.
func (m *Model) ActiveRipples() int { return len(m.ripples) }

// Ripples returns a copy of the active ripple set.
func (m *Model) Ripples() []Ripple {
	out := make([]Ripple, len(m.ripples))
	copy(out, m.ripples)
	return out
}

// InsertRipple adds an externally built ripple to the active set.
func (m *Model) InsertRipple(r Ripple) error {
	if !m.force.Contains(r.Row, r.Col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, r.Row, r.Col, m.rows, m.cols)
	}
	if r.Wavelength < 1 {
		r.Wavelength = 1
	}
	m.ripples = append(m.ripples, r)
	return nil
}

// Disturb inserts a ripple at (row, col) whose wavelength and peak are
// resolved from the model configuration.
func (m *Model) Disturb(row, col int) error {
	return m.InsertRipple(resolveAt(row, col, m.params, m.rng))
}

// GenerateForces spawns ripples owed by the configured rate and lets every
// active ripple write its force for this tick. Finished ripples are dropped.
func (m *Model) GenerateForces() {
	if m.params.Ripples > 0 {
		m.spawn += m.params.Ripples
	}
	for m.spawn >= 1 {
		m.ripples = append(m.ripples, SpawnRipple(m.rows, m.cols, m.params, m.rng))
		m.spawn--
	}

	kept := m.ripples[:0]
	for i := range m.ripples {
		r := m.ripples[i]
		if r.ApplyForce(m.force) {
			kept = append(kept, r)
		}
	}
	clear(m.ripples[len(kept):])
	m.ripples = kept
}

// Advance runs one synchronous update of every cell against the magnitudes
// from the start of the tick, then swaps the current and next buffers.
func (m *Model) Advance() {
	mag := m.mag.Current()
	get := core.NewAccessor(mag, m.params.Torus, 0)

	cur := mag.Values()
	next := m.mag.Next().Values()
	vel := m.vel.Current().Values()
	velNext := m.vel.Next().Values()
	force := m.force.Values()

	keep := 1 - m.params.Damping
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			idx := r*m.cols + c
			v := vel[idx] * keep

			f := force[idx] - cur[idx]*selfWeight
			f += orthoWeight * (get(r-1, c) + get(r+1, c) + get(r, c-1) + get(r, c+1))
			f += diagWeight * (get(r-1, c-1) + get(r-1, c+1) + get(r+1, c-1) + get(r+1, c+1))

			v += f * m.influence
			velNext[idx] = v
			next[idx] = cur[idx] + v
			force[idx] = 0
		}
	}

	m.vel.Swap()
	m.mag.Swap()
}

// Step runs GenerateForces followed by Advance.
func (m *Model) Step() {
	m.GenerateForces()
	m.Advance()
	m.tick++
}

// Reset returns the surface to rest, drops all ripples and re-arms a one-shot
// spawn count.
func (m *Model) Reset() {
	m.force.Fill(0)
	m.vel.Fill(0)
	m.mag.Fill(0)
	clear(m.ripples)
	m.ripples = m.ripples[:0]
	m.tick = 0
	m.seedSpawns()
}

// WithParams builds a new model with p that starts from this model's surface
// state and active ripples. A pending one-shot spawn is only re-armed when the
// sign of the spawn rate changes. The receiver is left untouched.
func (m *Model) WithParams(p Params) (*Model, error) {
	next, err := New(m.rows, m.cols, p, m.rng)
	if err != nil {
		return nil, err
	}
	copy(next.mag.Current().Values(), m.mag.Current().Values())
	copy(next.vel.Current().Values(), m.vel.Current().Values())
	next.ripples = append(next.ripples, m.ripples...)
	next.tick = m.tick
	if (p.Ripples < 0) == (m.params.Ripples < 0) {
		next.spawn = m.spawn
	}
	return next, nil
}

// Reseed replaces the random source used for spawning and resets the model.
func (m *Model) Reseed(rng *core.RNG) {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	m.rng = rng
	m.Reset()
}

// View is a read-only window onto one of the model's grids. It reflects the
// buffer that was current when the view was taken; take a new view after
// every tick.
type View struct {
	g *core.Grid
}

// Rows returns the view height.
func (v View) Rows() int { return v.g.Rows }

// Cols returns the view width.
func (v View) Cols() int { return v.g.Cols }

// At returns the value at (r, c).
func (v View) At(r, c int) float64 { return v.g.At(r, c) }

// Values returns a copy of the cell values in row-major order.
func (v View) Values() []float64 {
	out := make([]float64, len(v.g.Values()))
	copy(out, v.g.Values())
	return out
}

// CopyTo copies the cell values into dst and returns the count copied.
func (v View) CopyTo(dst []float64) int { return copy(dst, v.g.Values()) }
