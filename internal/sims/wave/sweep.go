package wave

import (
	"fmt"

	"ripple-ca/internal/core"
)

// Scenario is one point of a parameter sweep.
type Scenario struct {
	Mood    string
	Damping float64
	Steps   int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s damping=%.4f", s.Mood, s.Damping)
}

// SweepResult summarizes a headless run of a Scenario.
type SweepResult struct {
	Scenario Scenario
	Err      error

	// Stable is false when the surface stopped being finite; DivergedAt
	// holds the first tick where that was observed.
	Stable     bool
	DivergedAt int

	PeakAbs     float64
	PeakEnergy  float64
	FinalEnergy float64
	PeakRipples int
	// Period is the dominant oscillation period of the centre cell, in ticks.
	Period float64
}

// RunScenario steps a fresh model built from base with the scenario's mood
// and damping applied. Runs stop early on divergence.
func RunScenario(base Config, sc Scenario) SweepResult {
	res := SweepResult{Scenario: sc, Stable: true}
	p, ok := Mood(sc.Mood)
	if !ok {
		res.Err = fmt.Errorf("unknown mood %q", sc.Mood)
		return res
	}
	p.Damping = sc.Damping
	m, err := New(base.Height, base.Width, p, core.NewRNG(base.Seed))
	if err != nil {
		res.Err = err
		return res
	}

	probeRow, probeCol := base.Height/2, base.Width/2
	series := make([]float64, 0, sc.Steps)
	for step := 0; step < sc.Steps; step++ {
		m.Step()
		s := m.Stats()
		if !s.Finite {
			res.Stable = false
			res.DivergedAt = s.Tick
			break
		}
		if s.PeakAbs > res.PeakAbs {
			res.PeakAbs = s.PeakAbs
		}
		if s.Energy > res.PeakEnergy {
			res.PeakEnergy = s.Energy
		}
		res.FinalEnergy = s.Energy
		if s.Ripples > res.PeakRipples {
			res.PeakRipples = s.Ripples
		}
		series = append(series, m.Magnitude().At(probeRow, probeCol))
	}
	res.Period = DominantPeriod(series)
	return res
}
