package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "storm", "-scale", "2", "-seed", "7", "-set", "damping=0.1", "-set", "w = 64"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "storm" || cfg.Scale != 2 || cfg.Seed != 7 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Options["damping"] != "0.1" || cfg.Options["w"] != "64" {
		t.Fatalf("options = %v", cfg.Options)
	}
	if err := cfg.Options.Set("novalue"); err == nil {
		t.Fatal("expected error for missing '='")
	}
}
