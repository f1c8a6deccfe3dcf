// Package levels loads and validates level definitions. Levels are authored
// in screen fractions and unit radii and converted to world units on load.
package levels

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// Role is what a body does in a level.
type Role string

const (
	RoleObstacle    Role = "obstacle"    // static, gravitates, crashing into it fails the run
	RoleOrbiter     Role = "orbiter"     // like an obstacle but integrated every frame
	RoleDestination Role = "destination" // static, gravitates, touching it wins
)

// Body is a level body in world units.
type Body struct {
	Name string
	Role Role
	physics.Body
	Mass float64
}

// Source returns the body as a point mass.
func (b Body) Source() physics.MassSource {
	return physics.MassSource{Position: b.Position, Mass: b.Mass}
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Hint     string
	Player   physics.Body
	Bodies   []Body
	FilePath string
}

// Destination returns the level's single destination body.
func (l Level) Destination() Body {
	for _, b := range l.Bodies {
		if b.Role == RoleDestination {
			return b
		}
	}
	return Body{}
}

// Static returns the bodies that never move.
func (l Level) Static() []Body {
	return l.filter(func(r Role) bool { return r != RoleOrbiter })
}

// Orbiters returns the bodies that are integrated alongside the player.
func (l Level) Orbiters() []Body {
	return l.filter(func(r Role) bool { return r == RoleOrbiter })
}

func (l Level) filter(keep func(Role) bool) []Body {
	var out []Body
	for _, b := range l.Bodies {
		if keep(b.Role) {
			out = append(out, b)
		}
	}
	return out
}

// FromFraction maps a screen fraction onto world coordinates.
func FromFraction(x, y float64) r2.Vec {
	return r2.Vec{X: x * physics.ScreenWidth, Y: y * physics.ScreenHeight}
}
