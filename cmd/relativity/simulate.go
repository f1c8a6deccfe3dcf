package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/game"
)

var (
	flagAngle   float64
	flagPower   float64
	flagTicks   int
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Fly a level headless with a fixed launch",
	Long: `Launch the craft with a fixed angle and power and step the level
without a terminal until it finishes, fails or runs out of ticks.
The run is deterministic for a given config.

Angle is in degrees, 0 pointing right and 90 pointing up.
Power is the raw launch input in [0,1].

Examples:
  relativity simulate 01 --angle 45 --power 0.8
  relativity simulate 02 --angle -10 --power 1 --ticks 20000 --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagAngle, "angle", 0, "Launch angle in degrees")
	simulateCmd.Flags().Float64Var(&flagPower, "power", 1, "Launch power in [0,1]")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Tick limit")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log events and flight progress")
}

func runSimulate(_ *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)
	if flagPower < 0 || flagPower > 1 {
		return fmt.Errorf("power %v out of range [0,1]", flagPower)
	}
	if flagTicks <= 0 {
		return errors.New("ticks must be positive")
	}

	env, err := loadEnv(logger, false)
	if err != nil {
		return err
	}
	level, err := findLevel(env.Catalog, args[0])
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = 1

	g := game.New(level, env.Tuned())
	g.Reset(cfg)
	if !g.Launch(flagAngle*math.Pi/180, flagPower) {
		return errors.New("launch refused")
	}
	logger.Info("launched", "level", level.ID, "angle", flagAngle, "fraction", fmt.Sprintf("%.3fc", g.State().LaunchFraction))

	empty := core.NewInputFrame()
	var res game.StepResult
	ticks := 0
	for ticks < flagTicks {
		res = g.Step(empty)
		ticks++
		for _, ev := range res.Events {
			logger.Debug("event", "tick", ticks, "event", ev)
		}
		if res.Has(game.EventFinished) || res.Has(game.EventFailed) {
			break
		}
		if ticks%cfg.TickRate == 0 {
			s := res.State
			logger.Debug("flight",
				"tick", ticks,
				"speed", fmt.Sprintf("%.3fc", s.Speed),
				"gamma_v", fmt.Sprintf("%.4f", s.VelocityGamma),
				"gamma_g", fmt.Sprintf("%.6f", s.GravGamma),
				"craft_days", fmt.Sprintf("%.3f", s.ProperDays()),
			)
		}
	}

	s := res.State
	outcome := s.Phase.String()
	switch {
	case res.Has(game.EventFinished):
		outcome = "reached destination"
	case res.Has(game.EventFailed):
		outcome = "failed: " + s.FailReason
	case ticks >= flagTicks:
		outcome = "still flying"
	}

	fmt.Printf("Level:          %s %s\n", level.ID, level.Name)
	fmt.Printf("Outcome:        %s\n", outcome)
	fmt.Printf("Ticks:          %d\n", ticks)
	fmt.Printf("Launch:         %.3fc\n", s.LaunchFraction)
	fmt.Printf("Craft clock:    %.4f days\n", s.ProperDays())
	fmt.Printf("Observer clock: %.4f days\n", s.ObserverDays())
	if s.ObserverTime > 0 {
		fmt.Printf("Clock ratio:    %.6f\n", s.ProperTime/s.ObserverTime)
	}
	return nil
}
