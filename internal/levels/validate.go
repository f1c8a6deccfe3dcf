package levels

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// maxOrbitFraction caps circular orbit speeds as a fraction of c.
const maxOrbitFraction = 0.9

// Validate checks a parsed level before it is converted to world units.
// Checks:
//   - id present, player and bodies have positive radius and mass
//   - every position lies on the play field
//   - body names are unique and roles are known
//   - exactly one destination
//   - orbits reference a static body and stay below light speed
//   - the player does not start touching anything
func Validate(yl YAMLLevel) error {
	if yl.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if yl.Player.Radius <= 0 {
		return ValidationError{Code: "BAD_RADIUS", Message: "player radius must be positive"}
	}
	if !onField(yl.Player.X, yl.Player.Y) {
		return ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("player at (%g, %g) is off the field", yl.Player.X, yl.Player.Y)}
	}

	names := make(map[string]YAMLBody, len(yl.Bodies))
	destinations := 0
	for _, b := range yl.Bodies {
		if err := validateBody(b); err != nil {
			return err
		}
		if _, dup := names[b.Name]; dup {
			return ValidationError{Code: "DUPLICATE_NAME", Message: fmt.Sprintf("body name %q used twice", b.Name)}
		}
		names[b.Name] = b
		if Role(b.Role) == RoleDestination {
			destinations++
		}
	}

	switch {
	case destinations == 0:
		return ValidationError{Code: "NO_DESTINATION", Message: "level has no destination"}
	case destinations > 1:
		return ValidationError{Code: "MULTIPLE_DESTINATIONS", Message: fmt.Sprintf("level has %d destinations", destinations)}
	}

	for _, b := range yl.Bodies {
		if err := validateOrbit(b, names); err != nil {
			return err
		}
	}

	player := physics.Body{Position: FromFraction(yl.Player.X, yl.Player.Y), Radius: yl.Player.Radius * physics.UnitRadius}
	for _, b := range yl.Bodies {
		other := physics.Body{Position: FromFraction(b.X, b.Y), Radius: b.Radius * physics.UnitRadius}
		if physics.HasCollided(player, other) {
			return ValidationError{Code: "PLAYER_OVERLAP", Message: fmt.Sprintf("player starts inside %q", b.Name)}
		}
	}
	return nil
}

func validateBody(b YAMLBody) error {
	if b.Name == "" {
		return ValidationError{Code: "MISSING_NAME", Message: "body has no name"}
	}
	switch Role(b.Role) {
	case RoleObstacle, RoleOrbiter, RoleDestination:
	default:
		return ValidationError{Code: "UNKNOWN_ROLE", Message: fmt.Sprintf("body %q has unknown role %q", b.Name, b.Role)}
	}
	if b.Radius <= 0 {
		return ValidationError{Code: "BAD_RADIUS", Message: fmt.Sprintf("body %q radius must be positive", b.Name)}
	}
	if b.Mass.Suns < 0 || b.Mass.Earths < 0 || b.Mass.Kilograms() <= 0 {
		return ValidationError{Code: "BAD_MASS", Message: fmt.Sprintf("body %q mass must be positive", b.Name)}
	}
	if !onField(b.X, b.Y) {
		return ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("body %q at (%g, %g) is off the field", b.Name, b.X, b.Y)}
	}
	return nil
}

func validateOrbit(b YAMLBody, names map[string]YAMLBody) error {
	isOrbiter := Role(b.Role) == RoleOrbiter
	switch {
	case b.Orbit != nil && !isOrbiter:
		return ValidationError{Code: "BAD_ORBIT", Message: fmt.Sprintf("%s %q cannot orbit", b.Role, b.Name)}
	case b.Orbit == nil:
		return nil
	}

	center, ok := names[b.Orbit.Around]
	if !ok {
		return ValidationError{Code: "BAD_ORBIT", Message: fmt.Sprintf("%q orbits unknown body %q", b.Name, b.Orbit.Around)}
	}
	if Role(center.Role) == RoleOrbiter {
		return ValidationError{Code: "BAD_ORBIT", Message: fmt.Sprintf("%q orbits another orbiter %q", b.Name, center.Name)}
	}

	pos := FromFraction(b.X, b.Y)
	src := physics.MassSource{Position: FromFraction(center.X, center.Y), Mass: center.Mass.Kilograms()}
	if r2.Norm(r2.Sub(pos, src.Position)) == 0 {
		return ValidationError{Code: "BAD_ORBIT", Message: fmt.Sprintf("%q sits on the center of %q", b.Name, center.Name)}
	}
	v := CircularVelocity(pos, src, b.Orbit.Clockwise)
	if speed := r2.Norm(v); speed == 0 || speed > maxOrbitFraction*physics.C {
		return ValidationError{Code: "BAD_ORBIT", Message: fmt.Sprintf("%q cannot hold a circular orbit around %q", b.Name, center.Name)}
	}
	return nil
}

func onField(x, y float64) bool {
	return x >= 0 && x <= 1 && y >= 0 && y <= 1
}
