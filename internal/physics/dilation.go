package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// speedEpsilon keeps the Lorentz factor finite at the light-speed limit.
const speedEpsilon = 1e-9

// MinGravFactor floors 1 - 2Gm/(dc²) so a single source caps at γ = 10.
const MinGravFactor = 0.01

// VelocityGamma is the Lorentz factor 1/sqrt(1 - (s/c)²). Speeds at or above
// c are clamped to c·(1-1e-9).
func VelocityGamma(speed, c float64) float64 {
	s := math.Min(math.Abs(speed), c*(1-speedEpsilon))
	beta := s / c
	return 1 / math.Sqrt(1-beta*beta)
}

// GravitationalGamma is the product of the per-source factors
// 1/sqrt(max(0.01, 1 - 2Gm/(dc²))). It is exactly 1 with no sources.
func GravitationalGamma(position r2.Vec, sources []MassSource) float64 {
	gamma := 1.0
	for _, s := range sources {
		gamma *= sourceGamma(position, s)
	}
	return gamma
}

func sourceGamma(position r2.Vec, s MassSource) float64 {
	d := math.Max(r2.Norm(r2.Sub(s.Position, position)), MinDistance)
	return 1 / math.Sqrt(math.Max(MinGravFactor, 1-SchwarzschildRadius(s.Mass)/d))
}

// CombinedGamma is the total dilation of a clock that both moves and sits in
// a gravity well.
func CombinedGamma(velocityGamma, gravGamma float64) float64 {
	return velocityGamma * gravGamma
}

// AdvanceClock adds dt of coordinate time to a proper-time clock.
func AdvanceClock(dt, velocityGamma, gravGamma, previous float64) float64 {
	return previous + dt/CombinedGamma(velocityGamma, gravGamma)
}
