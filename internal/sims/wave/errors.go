package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a model is built with non-positive dimensions.
	ErrInvalidSize = errors.New("wave: rows and cols must be positive")
	// ErrOutOfBounds is returned when a ripple targets a cell outside the grid.
	ErrOutOfBounds = errors.New("wave: ripple position outside grid")
)

// ConfigError reports a rejected configuration field.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("wave: invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}
