package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-relativity/internal/config"
	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/levels"
	"github.com/vovakirdan/tui-relativity/internal/platform/tui"
	"github.com/vovakirdan/tui-relativity/internal/storage"
)

// newLogger returns the CLI logger. Verbose raises the level to debug.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "relativity",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadEnv reads the physics config, difficulty and level catalog named by
// the global flags. With openStore it also opens the runs database; a
// database that cannot be opened is logged and play continues without it.
func loadEnv(logger *log.Logger, openStore bool) (tui.Env, error) {
	physics, err := config.LoadPhysics(flagConfig)
	if err != nil {
		return tui.Env{}, err
	}
	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return tui.Env{}, err
	}
	catalog, err := levels.LoadCatalog(flagLevelsDir)
	if err != nil {
		return tui.Env{}, err
	}
	for _, p := range catalog.Problems {
		logger.Debug("skipped level file", "error", p)
	}

	env := tui.Env{
		Catalog:    catalog,
		Physics:    physics,
		Difficulty: difficulty,
	}
	if openStore {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Warn("could not open runs database", "error", storeErr)
		} else {
			env.Store = store
		}
	}
	return env, nil
}

// closeEnv releases the runs database, if any.
func closeEnv(env tui.Env) {
	if env.Store != nil {
		//nolint:errcheck // Best-effort close on exit
		env.Store.Close()
	}
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// findLevel resolves a level ID, pointing at the levels command on failure.
func findLevel(catalog *levels.Catalog, id string) (levels.Level, error) {
	lvl, err := catalog.ByID(id)
	if err != nil {
		return levels.Level{}, fmt.Errorf("%w (run 'relativity levels' to see available levels)", err)
	}
	return lvl, nil
}
