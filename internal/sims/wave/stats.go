package wave

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Stats summarizes the surface after a tick.
type Stats struct {
	Tick    int
	Ripples int

	Min, Max, Mean float64
	// PeakAbs is the largest absolute magnitude.
	PeakAbs float64
	// Energy is the sum of squared magnitudes and velocities.
	Energy float64
	// Finite is false once any magnitude or velocity is NaN or infinite.
	Finite bool
}

// Stats computes a summary of the current buffers.
func (m *Model) Stats() Stats {
	mag := m.mag.Current().Values()
	vel := m.vel.Current().Values()
	s := Stats{
		Tick:    m.tick,
		Ripples: len(m.ripples),
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
		Finite:  true,
	}
	sum := 0.0
	for i, v := range mag {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(vel[i]) || math.IsInf(vel[i], 0) {
			s.Finite = false
		}
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		s.PeakAbs = math.Max(s.PeakAbs, math.Abs(v))
		s.Energy += v*v + vel[i]*vel[i]
	}
	if len(mag) > 0 {
		s.Mean = sum / float64(len(mag))
	}
	return s
}

// DominantPeriod returns the period, in samples, of the strongest non-DC
// component of series. It returns 0 when the series is too short or flat.
func DominantPeriod(series []float64) float64 {
	n := len(series)
	if n < 4 {
		return 0
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)
	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)
	best, bestPower := 0, 0.0
	for k := 1; k < len(coeffs); k++ {
		p := cmplx.Abs(coeffs[k])
		if p > bestPower {
			best, bestPower = k, p
		}
	}
	if best == 0 || bestPower < 1e-12 {
		return 0
	}
	return float64(n) / float64(best)
}
