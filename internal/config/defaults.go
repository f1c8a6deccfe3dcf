package config

import (
	_ "embed"
)

//go:embed defaults/physics.yaml
var defaultPhysicsYAML []byte

// DefaultPhysicsConfig returns the built-in tuning.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Time: TimeConfig{
			DaysPerSecond: 0.1,
		},
		Launch: LaunchConfig{
			MinFraction:     0.10,
			Ceiling:         0.99,
			MaxDragFraction: 0.8,
			AimStepDegrees:  3,
			PowerStep:       0.02,
		},
		SimRate: SimRateConfig{
			Min:     0.25,
			Max:     2.0,
			Step:    0.25,
			Default: 1.0,
		},
		Grid: GridConfig{
			Visible:           true,
			Cols:              0,
			Rows:              0,
			CellWidth:         4,
			CellHeight:        2,
			ReferenceStrength: 50,
			DisplacementScale: 18,
			MaxDisplacement:   80,
		},
		Outcome: OutcomeConfig{
			FailureResetSeconds: 1.5,
			ShakeTrauma:         0.4,
			ShakeDecay:          0.8,
			LostMargin:          0.5,
		},
		Trail: TrailConfig{
			MaxPoints: 2000,
		},
		Assist: AssistConfig{
			ArcTicks:     true,
			PreviewSteps: 60,
		},
	}
}
