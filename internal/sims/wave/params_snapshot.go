package wave

import "ripple-ca/internal/core"

// Parameters publishes the configuration and live state for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	stats := s.model.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Surface",
			Params: []core.Parameter{
				core.StringParam("mood", "Mood", s.cfg.Mood),
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.Int64Param("seed", "Seed", s.seed),
				core.BoolParam("torus", "Torus", p.Torus),
			},
		},
		{
			Name: "Ripples",
			Params: []core.Parameter{
				core.FloatParam("ripples", "Spawn rate", p.Ripples),
				core.FloatParam("wavelength", "Wavelength", p.Wavelength),
				core.FloatParam("magnitude", "Magnitude", p.Magnitude),
				core.StringParam("spawn_row", "Spawn row", p.SpawnRow.String()),
				core.StringParam("spawn_col", "Spawn col", p.SpawnCol.String()),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				core.FloatParam("damping", "Damping", p.Damping),
				core.FloatParam("force_influence", "Force influence", p.Influence()),
			},
		},
		{
			Name: "Live",
			Params: []core.Parameter{
				core.IntParam("tick", "Tick", stats.Tick),
				core.IntParam("active", "Active ripples", stats.Ripples),
				core.FloatParam("peak", "Peak magnitude", stats.PeakAbs),
				core.FloatParam("energy", "Energy", stats.Energy),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "torus", Label: "Torus", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ripples", Label: "Spawn rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "wavelength", Label: "Wavelength", Type: core.ParamTypeFloat, Step: 2, Min: -200, Max: 200, HasMin: true, HasMax: true},
		{Key: "magnitude", Label: "Magnitude", Type: core.ParamTypeFloat, Step: 0.5, Min: -100, Max: 100, HasMin: true, HasMax: true},
		{Key: "damping", Label: "Damping", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "force_influence", Label: "Force influence", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: MaxForceInfluence, HasMin: true, HasMax: true},
	}
}

// SetIntParameter toggles integer-backed settings. The surface state carries
// over into the retuned model.
func (s *Sim) SetIntParameter(key string, value int) bool {
	p := s.cfg.Params
	switch key {
	case "torus":
		p.Torus = value != 0
	default:
		return false
	}
	return s.retune(p)
}

// SetFloatParameter retunes a floating point setting. Invalid values are
// rejected and the previous model is kept.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	p := s.cfg.Params
	switch key {
	case "ripples":
		p.Ripples = value
	case "wavelength":
		p.Wavelength = value
	case "magnitude":
		p.Magnitude = value
	case "damping":
		p.Damping = value
	case "force_influence":
		p.ForceInfluence = value
	default:
		return false
	}
	return s.retune(p)
}
