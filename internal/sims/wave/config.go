package wave

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultForceInfluence scales accumulated force into velocity each tick.
	DefaultForceInfluence = 0.1

	// MaxForceInfluence is the largest influence for which the update stays
	// bounded: the stiffest grid mode has eigenvalue -8π and the
	// velocity-then-magnitude integration needs influence*8π < 4.
	MaxForceInfluence = 4 / (8 * math.Pi)
)

// Params is the immutable per-model configuration record.
type Params struct {
	// Torus wraps addressing at the edges instead of reading zero.
	Torus bool
	// Ripples is the spawn rate per tick. A negative value spawns |Ripples|
	// once when the model starts and never again.
	Ripples float64
	// Wavelength is the ripple period in ticks. Negative draws uniformly
	// from [0, |Wavelength|) per ripple.
	Wavelength float64
	// Magnitude is the peak ripple force. Negative draws uniformly from
	// [0, |Magnitude|) per ripple.
	Magnitude float64
	// Damping is the fraction of velocity removed per tick, in [0, 1].
	Damping float64
	SpawnRow Fraction
	SpawnCol Fraction
	// ForceInfluence scales force into velocity; zero means the default.
	ForceInfluence float64
}

// Influence returns the effective force influence.
func (p Params) Influence() float64 {
	if p.ForceInfluence == 0 {
		return DefaultForceInfluence
	}
	return p.ForceInfluence
}

// Validate rejects values that would make the model diverge or produce NaN.
func (p Params) Validate() error {
	finite := []struct {
		field string
		value float64
	}{
		{"ripples", p.Ripples},
		{"wavelength", p.Wavelength},
		{"magnitude", p.Magnitude},
		{"damping", p.Damping},
		{"force_influence", p.ForceInfluence},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.field, Value: f.value, Reason: "must be finite"}
		}
	}
	if p.Damping < 0 || p.Damping > 1 {
		return &ConfigError{Field: "damping", Value: p.Damping, Reason: "must be within [0, 1]"}
	}
	if p.ForceInfluence < 0 {
		return &ConfigError{Field: "force_influence", Value: p.ForceInfluence, Reason: "must be positive"}
	}
	if p.Influence() > MaxForceInfluence {
		return &ConfigError{Field: "force_influence", Value: p.ForceInfluence, Reason: fmt.Sprintf("exceeds stability limit %.4f", MaxForceInfluence)}
	}
	for _, f := range []struct {
		field string
		frac  Fraction
	}{{"spawn_row", p.SpawnRow}, {"spawn_col", p.SpawnCol}} {
		v, ok := f.frac.Value()
		if !ok {
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &ConfigError{Field: f.field, Value: v, Reason: "must be within [0, 1]"}
		}
	}
	return nil
}

var moods = map[string]Params{
	"still": {
		Wavelength: 10,
		Damping:    0.01,
	},
	"drizzle": {
		Ripples:    0.08,
		Wavelength: -24,
		Magnitude:  -4,
		Damping:    0.004,
	},
	"storm": {
		Ripples:    0.6,
		Wavelength: -10,
		Magnitude:  -10,
		Damping:    0.02,
	},
	"tsunami": {
		Ripples:    -1,
		Wavelength: 80,
		Magnitude:  60,
		Damping:    0.0005,
		SpawnRow:   Fixed(0.5),
		SpawnCol:   Fixed(0),
	},
	"ocean": {
		Torus:      true,
		Ripples:    0.25,
		Wavelength: -48,
		Magnitude:  -3,
		Damping:    0.002,
	},
}

// DefaultMood names the preset used when none is requested.
const DefaultMood = "drizzle"

// Mood returns the preset parameters registered under name.
func Mood(name string) (Params, bool) {
	p, ok := moods[strings.ToLower(name)]
	return p, ok
}

// Moods lists the preset names in sorted order.
func Moods() []string {
	names := make([]string, 0, len(moods))
	for name := range moods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config controls the wave simulation dimensions and parameters.
type Config struct {
	Width  int
	Height int

	Seed int64
	Mood string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	p, _ := Mood(DefaultMood)
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Mood:   DefaultMood,
		Params: p,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// A "mood" entry selects the preset first; individual keys then override it.
// Unparseable values are logged and ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["mood"]; ok {
		if p, found := Mood(v); found {
			c.Mood = strings.ToLower(v)
			c.Params = p
		} else {
			log.Printf("wave: unknown mood %q, keeping %s", v, c.Mood)
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["torus"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Torus = parsed
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"ripples", &c.Params.Ripples},
		{"wavelength", &c.Params.Wavelength},
		{"magnitude", &c.Params.Magnitude},
		{"damping", &c.Params.Damping},
		{"force_influence", &c.Params.ForceInfluence},
	}
	for _, f := range floats {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("wave: ignoring %s=%q: %v", f.key, v, err)
			continue
		}
		*f.dst = parsed
	}
	if v, ok := cfg["spawn_row"]; ok {
		if parsed, err := ParseFraction(v); err == nil {
			c.Params.SpawnRow = parsed
		} else {
			log.Printf("wave: ignoring spawn_row: %v", err)
		}
	}
	if v, ok := cfg["spawn_col"]; ok {
		if parsed, err := ParseFraction(v); err == nil {
			c.Params.SpawnCol = parsed
		} else {
			log.Printf("wave: ignoring spawn_col: %v", err)
		}
	}
	return c
}
