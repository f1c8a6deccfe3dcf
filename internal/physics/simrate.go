package physics

import "math"

// RateBounds is the closed range and step of the simulation-rate multiplier.
// A rate of 0 means paused and is never produced by these helpers.
type RateBounds struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// DefaultRateBounds allows 0.25× to 2.00× in 0.25 steps.
var DefaultRateBounds = RateBounds{Min: 0.25, Max: 2.0, Step: 0.25, Default: 1.0}

// Clamp snaps rate to the nearest step and bounds it to [Min, Max].
func (b RateBounds) Clamp(rate float64) float64 {
	if b.Step > 0 {
		rate = math.Round(rate/b.Step) * b.Step
	}
	return math.Max(b.Min, math.Min(b.Max, rate))
}

// Up returns the next faster rate.
func (b RateBounds) Up(rate float64) float64 {
	return b.Clamp(rate + b.Step)
}

// Down returns the next slower rate.
func (b RateBounds) Down(rate float64) float64 {
	return b.Clamp(rate - b.Step)
}
