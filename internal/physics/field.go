package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MassSource is a point mass contributing to the gravitational field.
// Mass must be positive; levels are validated before they reach the core.
type MassSource struct {
	Position r2.Vec
	Mass     float64
}

// Acceleration returns the net gravitational acceleration at point.
// Each source pulls with G·m/d² toward itself, attenuated by Damping so the
// contribution falls to zero inside the source's Schwarzschild radius.
// An empty source list yields the zero vector.
func Acceleration(point r2.Vec, sources []MassSource) r2.Vec {
	var acc r2.Vec
	for _, s := range sources {
		acc = r2.Add(acc, pull(point, s))
	}
	return acc
}

// pull is the contribution of a single source at point.
func pull(point r2.Vec, s MassSource) r2.Vec {
	delta := r2.Sub(s.Position, point)
	d := r2.Norm(delta)
	if d == 0 {
		return r2.Vec{}
	}
	dist := math.Max(d, MinDistance)
	mag := G * s.Mass / (dist * dist) * Damping(s.Mass, dist)
	return r2.Scale(mag/d, delta)
}

// Damping is the relativistic attenuation max(0, 1 - 2Gm/(c²d)).
func Damping(mass, distance float64) float64 {
	distance = math.Max(distance, MinDistance)
	return math.Max(0, 1-SchwarzschildRadius(mass)/distance)
}

// fieldFloor is the magnitude below which a field has no usable direction.
const fieldFloor = 1e-30

// FieldAt returns the field magnitude and unit direction at point.
// A vanishing field reports zero magnitude and a zero direction.
func FieldAt(point r2.Vec, sources []MassSource) (float64, r2.Vec) {
	acc := Acceleration(point, sources)
	mag := r2.Norm(acc)
	if mag < fieldFloor {
		return 0, r2.Vec{}
	}
	return mag, r2.Scale(1/mag, acc)
}
