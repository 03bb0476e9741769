package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/hazard-run/internal/core"
	"github.com/vovakirdan/hazard-run/internal/registry"
	"github.com/vovakirdan/hazard-run/internal/storage"
)

// runtimeConfig sizes the screen from the terminal, falling back to the
// default 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStoreOptional opens the scores database for interactive commands.
// Play continues without persistence when it cannot be opened.
func openStoreOptional() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// mustKnowGame exits when gameID is not registered.
func mustKnowGame(gameID string) {
	if registry.Exists(gameID) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'hazard list' to see available runs.")
	os.Exit(1)
}

// mustOpenStore opens the scores database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// fatalf prints to stderr and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
