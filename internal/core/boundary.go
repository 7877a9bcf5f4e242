package core

// Lookup resolves a possibly out-of-range coordinate to a cell value.
type Lookup func(r, c int) float64

// Mod returns n modulo m in the range [0, m) for any sign of n.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// NewAccessor returns the neighbor lookup for g. With torus set, coordinates
// wrap around both axes; otherwise anything outside the grid reads as def.
// The returned function never writes to g.
func NewAccessor(g *Grid, torus bool, def float64) Lookup {
	rows, cols := g.Rows, g.Cols
	if torus {
		return func(r, c int) float64 {
			if rows == 0 || cols == 0 {
				return def
			}
			return g.data[Mod(r, rows)*cols+Mod(c, cols)]
		}
	}
	return func(r, c int) float64 {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return def
		}
		return g.data[r*cols+c]
	}
}
