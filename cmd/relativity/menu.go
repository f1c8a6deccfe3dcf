package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a level.
Backing out of a level returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  D            - Cycle difficulty
  Tab          - Best runs
  Q            - Quit

Examples:
  relativity menu
  relativity menu --fps 30
  relativity menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger(false)
	env, err := loadEnv(logger, true)
	if err != nil {
		return err
	}
	defer closeEnv(env)

	return menuLoop(logger, env, runtimeConfig())
}

// menuLoop shows the menu until the player quits, running the scoreboard or
// a level for each selection.
func menuLoop(logger *log.Logger, env tui.Env, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(env, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		env.Difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(env, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		level, err := findLevel(env.Catalog, menuResult.LevelID)
		if err != nil {
			logger.Error("cannot start level", "error", err)
			continue
		}

		// Fresh seed per run unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(env, level, cfg)
		if err != nil {
			logger.Error("level failed", "level", level.ID, "error", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
