package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ripple-ca/internal/app"

	"github.com/gdamore/tcell/v2"
)

func TestRunUnknownSimFlushesLog(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})
	path := filepath.Join(t.TempDir(), "term.log")
	var stderr bytes.Buffer
	screenCalls := 0
	newScreen := func() (tcell.Screen, error) {
		screenCalls++
		return tcell.NewSimulationScreen("UTF-8"), nil
	}

	code := run([]string{"-sim", "no-such-sim", "-log", path}, &stderr, newScreen)
	if code != 2 {
		t.Fatalf("exit code = %d, expected 2", code)
	}
	if screenCalls != 0 {
		t.Fatal("screen must not be opened for an unknown sim")
	}
	if !strings.Contains(stderr.String(), "no-such-sim") {
		t.Fatalf("stderr missing sim name: %q", stderr.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `unknown sim "no-such-sim"`) {
		t.Fatalf("log file missing diagnostic: %q", data)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-tps", "fast"}, &stderr, tcell.NewScreen); code != 2 {
		t.Fatalf("exit code = %d, expected 2", code)
	}
}

func TestFitToScreenKeepsExplicitSize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	opts := app.Options{}
	fitToScreen(opts, screen)
	if opts["w"] != "40" || opts["h"] != "24" {
		t.Fatalf("fitted options = %v", opts)
	}
	opts = app.Options{"w": "10"}
	fitToScreen(opts, screen)
	if opts["w"] != "10" || opts["h"] != "24" {
		t.Fatalf("explicit width overwritten: %v", opts)
	}
}
