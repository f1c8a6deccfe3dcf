package levels

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Hint   string     `yaml:"hint,omitempty"`
	Player YAMLPlayer `yaml:"player"`
	Bodies []YAMLBody `yaml:"bodies"`
}

// YAMLPlayer is the traveler's start. Coordinates are screen fractions with
// the origin at the lower-left corner; radius is in unit radii.
type YAMLPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// YAMLBody represents a single body in YAML format.
type YAMLBody struct {
	Name   string     `yaml:"name"`
	Role   string     `yaml:"role"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Radius float64    `yaml:"radius"`
	Mass   YAMLMass   `yaml:"mass"`
	Orbit  *YAMLOrbit `yaml:"orbit,omitempty"`
}

// YAMLMass is a mass in reference units; both terms are summed.
type YAMLMass struct {
	Suns   float64 `yaml:"suns,omitempty"`
	Earths float64 `yaml:"earths,omitempty"`
}

// Kilograms returns the mass in kilograms.
func (m YAMLMass) Kilograms() float64 {
	return m.Suns*physics.SunMass + m.Earths*physics.EarthMass
}

// YAMLOrbit puts an orbiter on a circular orbit around a static body.
type YAMLOrbit struct {
	Around    string `yaml:"around"`
	Clockwise bool   `yaml:"clockwise,omitempty"`
}

// ParseYAML parses and validates a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := Validate(yl); err != nil {
		return Level{}, err
	}
	return yl.toLevel(), nil
}

// toLevel converts a validated YAML level into world units.
func (yl YAMLLevel) toLevel() Level {
	lvl := Level{
		ID:   yl.ID,
		Name: yl.Name,
		Hint: yl.Hint,
		Player: physics.Body{
			Position: FromFraction(yl.Player.X, yl.Player.Y),
			Radius:   yl.Player.Radius * physics.UnitRadius,
		},
	}

	byName := make(map[string]Body, len(yl.Bodies))
	for _, yb := range yl.Bodies {
		b := Body{
			Name: yb.Name,
			Role: Role(yb.Role),
			Body: physics.Body{
				Position: FromFraction(yb.X, yb.Y),
				Radius:   yb.Radius * physics.UnitRadius,
			},
			Mass: yb.Mass.Kilograms(),
		}
		byName[b.Name] = b
		lvl.Bodies = append(lvl.Bodies, b)
	}

	for i, yb := range yl.Bodies {
		if yb.Orbit == nil {
			continue
		}
		center := byName[yb.Orbit.Around]
		lvl.Bodies[i].Velocity = CircularVelocity(lvl.Bodies[i].Position, center.Source(), yb.Orbit.Clockwise)
	}
	return lvl
}

// CircularVelocity is the velocity for a circular orbit of position around
// center, counter-clockwise unless clockwise is set.
func CircularVelocity(position r2.Vec, center physics.MassSource, clockwise bool) r2.Vec {
	radial := r2.Sub(position, center.Position)
	r := r2.Norm(radial)
	if r == 0 {
		return r2.Vec{}
	}
	acc := r2.Norm(physics.Acceleration(position, []physics.MassSource{center}))
	speed := math.Sqrt(acc * r)

	tangent := r2.Vec{X: -radial.Y / r, Y: radial.X / r}
	if clockwise {
		tangent = r2.Scale(-1, tangent)
	}
	return r2.Scale(speed, tangent)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
