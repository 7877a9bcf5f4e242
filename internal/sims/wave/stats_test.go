package wave

import (
	"math"
	"testing"
)

func TestDominantPeriodOfSine(t *testing.T) {
	series := make([]float64, 256)
	for i := range series {
		series[i] = 3 + 2*math.Sin(2*math.Pi*float64(i)/16)
	}
	if got := DominantPeriod(series); math.Abs(got-16) > 1e-9 {
		t.Fatalf("period = %v, expected 16", got)
	}
}

func TestDominantPeriodDegenerate(t *testing.T) {
	if DominantPeriod([]float64{1, 2}) != 0 {
		t.Fatal("short series should report 0")
	}
	if DominantPeriod(make([]float64, 64)) != 0 {
		t.Fatal("flat series should report 0")
	}
}

func TestStatsTracksSurface(t *testing.T) {
	m := mustModel(t, 5, 5, Params{Wavelength: 1}, 1)
	s := m.Stats()
	if !s.Finite || s.PeakAbs != 0 || s.Energy != 0 || s.Min != 0 || s.Max != 0 {
		t.Fatalf("resting stats = %+v", s)
	}
	if err := m.InsertRipple(NewRipple(2, 2, 4, 10)); err != nil {
		t.Fatal(err)
	}
	m.Step()
	s = m.Stats()
	if s.PeakAbs == 0 || s.Energy == 0 || s.Ripples != 1 || s.Tick != 1 {
		t.Fatalf("stats after disturbance = %+v", s)
	}
	m.mag.Current().Set(0, 0, math.NaN())
	if m.Stats().Finite {
		t.Fatal("NaN must clear Finite")
	}
}
