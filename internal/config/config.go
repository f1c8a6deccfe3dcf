// Package config provides YAML-based tuning for the simulation and the
// difficulty presets layered on top of it.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// PhysicsConfig contains every tunable of the simulation and its visuals.
type PhysicsConfig struct {
	Time    TimeConfig    `yaml:"time"`
	Launch  LaunchConfig  `yaml:"launch"`
	SimRate SimRateConfig `yaml:"simrate"`
	Grid    GridConfig    `yaml:"grid"`
	Outcome OutcomeConfig `yaml:"outcome"`
	Trail   TrailConfig   `yaml:"trail"`
	Assist  AssistConfig  `yaml:"assist"`
}

// TimeConfig sets how much simulated time passes per wall-clock second.
type TimeConfig struct {
	DaysPerSecond float64 `yaml:"days_per_second"`
}

// LaunchConfig defines the launch curve and input granularity.
type LaunchConfig struct {
	MinFraction     float64 `yaml:"min_fraction"`      // slowest launch, fraction of c
	Ceiling         float64 `yaml:"ceiling"`           // fastest launch, fraction of c
	MaxDragFraction float64 `yaml:"max_drag_fraction"` // drag for full power, fraction of field width
	AimStepDegrees  float64 `yaml:"aim_step_degrees"`
	PowerStep       float64 `yaml:"power_step"`
}

// SimRateConfig bounds the simulation-rate multiplier.
type SimRateConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// GridConfig shapes the warped field lattice. Zero Cols/Rows fit the
// lattice to the terminal, one lattice cell per CellWidth×CellHeight
// characters.
type GridConfig struct {
	Visible           bool    `yaml:"visible"`
	Cols              int     `yaml:"cols"`
	Rows              int     `yaml:"rows"`
	CellWidth         int     `yaml:"cell_width"`
	CellHeight        int     `yaml:"cell_height"`
	ReferenceStrength float64 `yaml:"reference_strength"`
	DisplacementScale float64 `yaml:"displacement_scale"`
	MaxDisplacement   float64 `yaml:"max_displacement"`
}

// OutcomeConfig controls what happens after a crash.
type OutcomeConfig struct {
	FailureResetSeconds float64 `yaml:"failure_reset_seconds"`
	ShakeTrauma         float64 `yaml:"shake_trauma"`
	ShakeDecay          float64 `yaml:"shake_decay"` // trauma lost per second
	LostMargin          float64 `yaml:"lost_margin"` // field widths beyond the edge before a craft is lost
}

// TrailConfig sizes the flight trail.
type TrailConfig struct {
	MaxPoints int `yaml:"max_points"`
}

// AssistConfig controls aiming aids.
type AssistConfig struct {
	ArcTicks     bool `yaml:"arc_ticks"`
	PreviewSteps int  `yaml:"preview_steps"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts the aiming aids for a difficulty preset.
// Easy shows a long predicted path, hard removes every aid.
func (c *PhysicsConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		c.Assist.ArcTicks = true
		c.Assist.PreviewSteps = 240
	case DifficultyHard:
		c.Assist.ArcTicks = false
		c.Assist.PreviewSteps = 0
	}
}

// LaunchCurve returns the launch mapping described by the config.
func (c PhysicsConfig) LaunchCurve() physics.LaunchCurve {
	return physics.LaunchCurve{MinFraction: c.Launch.MinFraction, Ceiling: c.Launch.Ceiling}
}

// RateBounds returns the simulation-rate range.
func (c PhysicsConfig) RateBounds() physics.RateBounds {
	return physics.RateBounds{
		Min:     c.SimRate.Min,
		Max:     c.SimRate.Max,
		Step:    c.SimRate.Step,
		Default: c.SimRate.Default,
	}
}

// Lattice returns a field lattice over the full play field, fitted to a
// w×h character area when the config leaves the size open.
func (c PhysicsConfig) Lattice(w, h int) physics.Lattice {
	l := physics.DefaultLattice()
	l.ReferenceStrength = c.Grid.ReferenceStrength
	l.DisplacementScale = c.Grid.DisplacementScale
	l.MaxDisplacement = c.Grid.MaxDisplacement

	l.Cols, l.Rows = c.Grid.Cols, c.Grid.Rows
	if l.Cols == 0 {
		l.Cols = max(1, w/max(1, c.Grid.CellWidth))
	}
	if l.Rows == 0 {
		l.Rows = max(1, h/max(1, c.Grid.CellHeight))
	}
	return l
}

// SimSeconds converts wall-clock seconds into simulated seconds.
func (c PhysicsConfig) SimSeconds(wall float64) float64 {
	return wall * c.Time.DaysPerSecond * physics.Day
}

// Validate rejects values the simulation cannot run with.
func (c PhysicsConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Time.DaysPerSecond > 0, "time.days_per_second must be positive"},
		{c.Launch.Ceiling > 0 && c.Launch.Ceiling < 1, "launch.ceiling must be in (0, 1)"},
		{c.Launch.MinFraction > 0 && c.Launch.MinFraction < c.Launch.Ceiling, "launch.min_fraction must be in (0, ceiling)"},
		{c.Launch.MaxDragFraction > 0, "launch.max_drag_fraction must be positive"},
		{c.Launch.AimStepDegrees > 0, "launch.aim_step_degrees must be positive"},
		{c.Launch.PowerStep > 0 && c.Launch.PowerStep <= 1, "launch.power_step must be in (0, 1]"},
		{c.SimRate.Min > 0, "simrate.min must be positive"},
		{c.SimRate.Max >= c.SimRate.Min, "simrate.max must not be below simrate.min"},
		{c.SimRate.Step > 0, "simrate.step must be positive"},
		{c.SimRate.Default >= c.SimRate.Min && c.SimRate.Default <= c.SimRate.Max, "simrate.default must lie in [min, max]"},
		{onStep(c.SimRate.Default, c.SimRate.Step), "simrate.default must be a multiple of simrate.step"},
		{c.Grid.Cols >= 0 && c.Grid.Rows >= 0, "grid.cols and grid.rows must not be negative"},
		{c.Grid.CellWidth > 0 && c.Grid.CellHeight > 0, "grid.cell_width and grid.cell_height must be positive"},
		{c.Grid.ReferenceStrength > 0, "grid.reference_strength must be positive"},
		{c.Grid.DisplacementScale >= 0, "grid.displacement_scale must not be negative"},
		{c.Grid.MaxDisplacement >= 0, "grid.max_displacement must not be negative"},
		{c.Outcome.FailureResetSeconds >= 0, "outcome.failure_reset_seconds must not be negative"},
		{c.Outcome.ShakeTrauma >= 0 && c.Outcome.ShakeTrauma <= 1, "outcome.shake_trauma must be in [0, 1]"},
		{c.Outcome.ShakeDecay >= 0, "outcome.shake_decay must not be negative"},
		{c.Outcome.LostMargin > 0, "outcome.lost_margin must be positive"},
		{c.Trail.MaxPoints > 0, "trail.max_points must be positive"},
		{c.Assist.PreviewSteps >= 0, "assist.preview_steps must not be negative"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s", chk.msg)
		}
	}
	return nil
}

func onStep(v, step float64) bool {
	if step <= 0 {
		return false
	}
	n := v / step
	return math.Abs(n-math.Round(n)) < 1e-9
}
