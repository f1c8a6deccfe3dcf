package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-relativity/internal/levels"
	"github.com/vovakirdan/tui-relativity/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level, the first one when none is given.

Controls:
  Left/Right, A/D   - Rotate aim
  Up/Down, W/S      - Launch power
  Enter, Space      - Lock aim, then fire
  Mouse             - Press to aim, drag for power, release to fire
  Esc, X, right btn - Cancel the launch
  Space, P          - Pause in flight
  +/-               - Simulation rate
  G                 - Toggle field lattice
  R                 - Restart level
  N                 - Next level
  B                 - Back to menu
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Long predicted path and power ticks
  normal - Short predicted path and power ticks
  hard   - No aiming aids

Examples:
  relativity play
  relativity play 02 --difficulty hard
  relativity play 03 --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	logger := newLogger(false)
	env, err := loadEnv(logger, true)
	if err != nil {
		return err
	}
	defer closeEnv(env)

	var level levels.Level
	if len(args) == 1 {
		if level, err = findLevel(env.Catalog, args[0]); err != nil {
			return err
		}
	} else {
		first, ok := env.Catalog.First()
		if !ok {
			return errors.New("no levels available")
		}
		level = first
	}

	cfg := runtimeConfig()
	back, err := tui.Run(env, level, cfg)
	if err != nil {
		return err
	}

	// Backing out of a direct play opens the menu.
	if back {
		return menuLoop(logger, env, cfg)
	}
	return nil
}
