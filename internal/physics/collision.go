package physics

import "gonum.org/v1/gonum/spatial/r2"

// HasCollided reports whether two bodies touch or overlap.
func HasCollided(a, b Body) bool {
	return r2.Norm(r2.Sub(a.Position, b.Position)) <= a.Radius+b.Radius
}
