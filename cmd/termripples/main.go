package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ripple-ca/internal/app"
	"ripple-ca/internal/core"
	_ "ripple-ca/internal/sims/wave"
	"ripple-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, tcell.NewScreen))
}

// run returns the process exit code so deferred cleanup always completes
// before main exits.
func run(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) int {
	fs := flag.NewFlagSet("termripples", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	logPath := fs.String("log", "", "write diagnostics to this file (discarded when empty)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(stderr, "termripples: %v\n", err)
		return 1
	}
	defer closeLog()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Printf("termripples: unknown sim %q", cfg.Sim)
		fmt.Fprintf(stderr, "unknown sim %q (available: %v)\n", cfg.Sim, core.Names())
		return 2
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "termripples: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "termripples: %v\n", err)
		return 1
	}
	defer screen.Fini()

	fitToScreen(cfg.Options, screen)
	sim := factory(cfg.Options)
	sim.Reset(cfg.Seed)
	log.Printf("termripples: running %s at %d tps", sim.Name(), cfg.TPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := term.New(screen, sim, cfg.TPS, cfg.Seed)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("termripples: %v", err)
		return 1
	}
	return 0
}

// fitToScreen sizes the grid to the terminal unless w or h were given. Each
// terminal row holds two grid rows.
func fitToScreen(opts app.Options, screen tcell.Screen) {
	w, h := screen.Size()
	if _, ok := opts["w"]; !ok && w > 0 {
		opts["w"] = strconv.Itoa(w)
	}
	if _, ok := opts["h"]; !ok && h > 0 {
		opts["h"] = strconv.Itoa(h * 2)
	}
}

// setupLogging routes the standard logger to path. The terminal is owned by
// tcell, so without a path log output is dropped.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
