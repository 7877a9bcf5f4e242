package core

// Grid stores a 2D matrix of float64 cell values in row-major order.
type Grid struct {
	Rows, Cols int
	data       []float64
}

// NewGrid allocates a rows x cols grid with every cell set to fill.
func NewGrid(rows, cols int, fill float64) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
	if fill != 0 {
		g.Fill(fill)
	}
	return g
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (r, c).
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// At returns the value stored at (r, c). Coordinates are not checked.
func (g *Grid) At(r, c int) float64 { return g.data[r*g.Cols+c] }

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v float64) { g.data[r*g.Cols+c] = v }

// Add accumulates v into (r, c).
func (g *Grid) Add(r, c int, v float64) { g.data[r*g.Cols+c] += v }

// Contains reports whether (r, c) addresses a cell of the grid.
func (g *Grid) Contains(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// SwapGrids exchanges the two handles. No cell data is copied.
func SwapGrids(a, b **Grid) {
	*a, *b = *b, *a
}

// DoubleGrid pairs a current and a next grid of identical shape.
type DoubleGrid struct {
	cur *Grid
	nxt *Grid
}

// NewDoubleGrid allocates both buffers filled with fill.
func NewDoubleGrid(rows, cols int, fill float64) *DoubleGrid {
	return &DoubleGrid{cur: NewGrid(rows, cols, fill), nxt: NewGrid(rows, cols, fill)}
}

// Current returns the buffer holding the latest completed tick.
func (d *DoubleGrid) Current() *Grid { return d.cur }

// Next returns the buffer being written during a tick.
func (d *DoubleGrid) Next() *Grid { return d.nxt }

// Swap makes next the current buffer and vice versa.
func (d *DoubleGrid) Swap() { d.cur, d.nxt = d.nxt, d.cur }

// Fill resets both buffers to v.
func (d *DoubleGrid) Fill(v float64) {
	d.cur.Fill(v)
	d.nxt.Fill(v)
}
