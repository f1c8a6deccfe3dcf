package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// LaunchCurve maps normalized launch power onto a fraction of the maximum
// launch speed with a quadratic ease-in.
type LaunchCurve struct {
	MinFraction float64 // slowest launch as a fraction of max speed
	Ceiling     float64 // fastest launch as a fraction of max speed
}

// DefaultLaunchCurve launches between 0.10c and 0.99c when max speed is c.
var DefaultLaunchCurve = LaunchCurve{MinFraction: 0.10, Ceiling: 0.99}

func (lc LaunchCurve) floor() float64 {
	return lc.MinFraction / lc.Ceiling
}

// MapPower maps raw power in [0,1] to an effective power in [floor, 1].
// Out-of-range input saturates.
func (lc LaunchCurve) MapPower(raw float64) float64 {
	r := clamp01(raw)
	f := lc.floor()
	return f + (1-f)*r*r
}

// Fraction is the launch speed for raw power as a fraction of max speed.
func (lc LaunchCurve) Fraction(raw float64) float64 {
	return lc.Ceiling * lc.MapPower(raw)
}

// Velocity returns the launch velocity for a direction and raw power.
func (lc LaunchCurve) Velocity(angle, raw, maxSpeed float64) r2.Vec {
	speed := maxSpeed * lc.Fraction(raw)
	return r2.Vec{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)}
}

// PowerForFraction inverts Fraction. Fractions outside the curve's range
// saturate to 0 or 1.
func (lc LaunchCurve) PowerForFraction(fraction float64) float64 {
	f := lc.floor()
	eff := fraction / lc.Ceiling
	if eff <= f {
		return 0
	}
	return clamp01(math.Sqrt((eff - f) / (1 - f)))
}

// MapPower applies DefaultLaunchCurve.
func MapPower(raw float64) float64 {
	return DefaultLaunchCurve.MapPower(raw)
}

// VelocityFromAnglePower applies DefaultLaunchCurve.
func VelocityFromAnglePower(angle, raw, maxSpeed float64) r2.Vec {
	return DefaultLaunchCurve.Velocity(angle, raw, maxSpeed)
}

// PowerFromDrag converts a pointer drag distance into raw power; a drag of
// maxDrag or more is full power.
func PowerFromDrag(drag, maxDrag float64) float64 {
	if maxDrag <= 0 {
		return 1
	}
	return clamp01(drag / maxDrag)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// LaunchPhase tags the variant held by a LaunchState.
type LaunchPhase uint8

const (
	LaunchIdle LaunchPhase = iota
	LaunchAimLocked
	LaunchLaunching
)

func (p LaunchPhase) String() string {
	switch p {
	case LaunchAimLocked:
		return "aim-locked"
	case LaunchLaunching:
		return "launching"
	default:
		return "idle"
	}
}

// LaunchState is Idle, AimLocked(angle) or Launching(angle, power).
// Angle is meaningful outside Idle; Power only in Launching.
type LaunchState struct {
	Phase LaunchPhase
	Angle float64
	Power float64
}

// Aim locks the direction. It only applies from Idle.
func (s LaunchState) Aim(angle float64) LaunchState {
	if s.Phase != LaunchIdle {
		return s
	}
	return LaunchState{Phase: LaunchAimLocked, Angle: angle}
}

// Drag sets the power of a locked aim. Idle ignores it.
func (s LaunchState) Drag(power float64) LaunchState {
	if s.Phase == LaunchIdle {
		return s
	}
	return LaunchState{Phase: LaunchLaunching, Angle: s.Angle, Power: clamp01(power)}
}

// Cancel returns to Idle from any state.
func (s LaunchState) Cancel() LaunchState {
	return LaunchState{}
}

// Release ends a gesture. It reports true only when leaving Launching;
// releasing a bare AimLocked is a cancel.
func (s LaunchState) Release() (LaunchState, bool) {
	return LaunchState{}, s.Phase == LaunchLaunching
}
