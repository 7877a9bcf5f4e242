package wave

import (
	"log"

	"ripple-ca/internal/core"
)

// Sim adapts a Model to the core.Sim contract used by the drivers. Cells are
// palette indices derived from the current magnitudes.
type Sim struct {
	cfg   Config
	seed  int64
	model *Model

	display []uint8
	gain    autoGain
}

// NewSim builds the simulation described by cfg.
func NewSim(cfg Config) (*Sim, error) {
	model, err := New(cfg.Height, cfg.Width, cfg.Params, core.NewRNG(cfg.Seed))
	if err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:     cfg,
		seed:    cfg.Seed,
		model:   model,
		display: make([]uint8, cfg.Width*cfg.Height),
		gain:    newAutoGain(),
	}
	s.rebuildDisplay()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "ripples/" + s.cfg.Mood }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Model exposes the underlying wave model.
func (s *Sim) Model() *Model { return s.model }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Reset returns the surface to rest. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.seed = effective
	s.model.Reseed(core.NewRNG(effective))
	s.gain = newAutoGain()
	s.rebuildDisplay()
}

// Step advances the model one tick and refreshes the display buffer.
func (s *Sim) Step() {
	s.model.Step()
	s.rebuildDisplay()
}

// Disturb drops a configured ripple at column x, row y.
func (s *Sim) Disturb(x, y int) error {
	return s.model.Disturb(y, x)
}

// Sources lists the active ripples for overlays.
func (s *Sim) Sources() []core.Source {
	out := make([]core.Source, 0, s.model.ActiveRipples())
	for _, r := range s.model.ripples {
		out = append(out, core.Source{X: r.Col, Y: r.Row, Progress: r.Progress()})
	}
	return out
}

func (s *Sim) retune(p Params) bool {
	next, err := s.model.WithParams(p)
	if err != nil {
		log.Printf("wave: keeping previous parameters: %v", err)
		return false
	}
	s.model = next
	s.cfg.Params = p
	return true
}

func init() {
	core.Register("ripples", func(cfg map[string]string) core.Sim {
		return mustSim(FromMap(cfg))
	})
	for _, name := range Moods() {
		mood := name
		core.Register(mood, func(cfg map[string]string) core.Sim {
			merged := map[string]string{"mood": mood}
			for k, v := range cfg {
				if k != "mood" {
					merged[k] = v
				}
			}
			return mustSim(FromMap(merged))
		})
	}
}

// mustSim falls back to the default mood when cfg is rejected, since registry
// factories cannot report errors.
func mustSim(cfg Config) core.Sim {
	s, err := NewSim(cfg)
	if err == nil {
		return s
	}
	log.Printf("wave: %v; falling back to %s", err, DefaultMood)
	fallback := DefaultConfig()
	fallback.Width, fallback.Height, fallback.Seed = cfg.Width, cfg.Height, cfg.Seed
	s, err = NewSim(fallback)
	if err != nil {
		log.Printf("wave: %v; using default size", err)
		s, _ = NewSim(DefaultConfig())
	}
	return s
}
