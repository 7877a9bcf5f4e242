package wave

import (
	"fmt"
	"strconv"
	"strings"

	"ripple-ca/internal/core"
)

// Fraction is an optional position along one grid axis. The zero value is
// Random, meaning a fresh uniform draw for every spawned ripple.
type Fraction struct {
	value float64
	fixed bool
}

// Fixed pins spawns to v of the axis length, with v in [0, 1].
func Fixed(v float64) Fraction { return Fraction{value: v, fixed: true} }

// Random draws a new position for every spawn.
func Random() Fraction { return Fraction{} }

// Value returns the pinned fraction and whether one is set.
func (f Fraction) Value() (float64, bool) { return f.value, f.fixed }

// Resolve returns the pinned fraction or draws one from rng.
func (f Fraction) Resolve(rng *core.RNG) float64 {
	if f.fixed {
		return f.value
	}
	return rng.Float64()
}

func (f Fraction) String() string {
	if !f.fixed {
		return "random"
	}
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

// ParseFraction accepts a number or one of "random", "unset" and "".
func ParseFraction(s string) (Fraction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random", "unset", "none":
		return Random(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("wave: parse fraction %q: %w", s, err)
	}
	return Fixed(v), nil
}
