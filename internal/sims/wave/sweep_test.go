package wave

import (
	"errors"
	"testing"
)

func sweepBase() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	return cfg
}

func TestRunScenarioStaysStable(t *testing.T) {
	for _, mood := range Moods() {
		res := RunScenario(sweepBase(), Scenario{Mood: mood, Damping: 0.01, Steps: 300})
		if res.Err != nil {
			t.Fatalf("%s: %v", mood, res.Err)
		}
		if !res.Stable {
			t.Fatalf("%s diverged at tick %d", mood, res.DivergedAt)
		}
		if res.PeakEnergy < res.FinalEnergy {
			t.Fatalf("%s: peak energy %v below final %v", mood, res.PeakEnergy, res.FinalEnergy)
		}
	}
}

func TestRunScenarioStillMoodIsFlat(t *testing.T) {
	res := RunScenario(sweepBase(), Scenario{Mood: "still", Damping: 0.5, Steps: 64})
	if res.PeakAbs != 0 || res.PeakEnergy != 0 || res.Period != 0 || res.PeakRipples != 0 {
		t.Fatalf("still surface should stay at rest: %+v", res)
	}
}

func TestRunScenarioRejectsBadInput(t *testing.T) {
	if res := RunScenario(sweepBase(), Scenario{Mood: "lava", Steps: 1}); res.Err == nil {
		t.Fatal("unknown mood must be reported")
	}
	res := RunScenario(sweepBase(), Scenario{Mood: "storm", Damping: 2, Steps: 1})
	var cfgErr *ConfigError
	if !errors.As(res.Err, &cfgErr) || cfgErr.Field != "damping" {
		t.Fatalf("expected damping config error, got %v", res.Err)
	}
}
