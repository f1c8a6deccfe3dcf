package levels

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/physics"
)

func TestBuiltinLevels(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Fatalf("expected 3 builtin levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
	for _, lvl := range lvls {
		if lvl.Destination().Role != RoleDestination {
			t.Errorf("level %s has no destination", lvl.ID)
		}
	}
}

func TestBuiltinLevelOne(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	lvl := lvls[0]

	if lvl.ID != "01" || lvl.Name != "First Light" {
		t.Errorf("unexpected level %q %q", lvl.ID, lvl.Name)
	}
	if want := FromFraction(0.3, 0.3); lvl.Player.Position != want {
		t.Errorf("player at %v, expected %v", lvl.Player.Position, want)
	}
	if lvl.Player.Radius != physics.UnitRadius*0.25 {
		t.Errorf("player radius = %v", lvl.Player.Radius)
	}

	dest := lvl.Destination()
	if dest.Mass != 0.6*physics.SunMass || dest.Radius != 4*physics.UnitRadius {
		t.Errorf("destination = %+v", dest)
	}
	if len(lvl.Static()) != 4 || len(lvl.Orbiters()) != 0 {
		t.Errorf("expected 4 static bodies and no orbiters, got %d/%d", len(lvl.Static()), len(lvl.Orbiters()))
	}
}

func TestOrbitersStartOnCircularOrbit(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	found := 0
	for _, lvl := range lvls {
		for _, b := range lvl.Orbiters() {
			found++
			if b.Velocity == (r2.Vec{}) {
				t.Errorf("%s/%s has no orbital velocity", lvl.ID, b.Name)
			}
			if r2.Norm(b.Velocity) >= physics.C {
				t.Errorf("%s/%s orbits faster than light", lvl.ID, b.Name)
			}
		}
	}
	if found == 0 {
		t.Fatal("expected builtin levels with orbiters")
	}
}

func TestCircularVelocity(t *testing.T) {
	center := physics.MassSource{Position: r2.Vec{X: 1e12, Y: 1e12}, Mass: physics.SunMass}
	pos := r2.Vec{X: 1e12, Y: 2e12}

	ccw := CircularVelocity(pos, center, false)
	cw := CircularVelocity(pos, center, true)

	if ccw.X >= 0 {
		t.Errorf("counter-clockwise velocity above the center should point left, got %v", ccw)
	}
	if cw != r2.Scale(-1, ccw) {
		t.Errorf("clockwise %v is not the reverse of %v", cw, ccw)
	}
	if dot := r2.Dot(ccw, r2.Sub(pos, center.Position)); math.Abs(dot) > 1e-6*r2.Norm(ccw)*1e12 {
		t.Errorf("velocity not tangential, dot = %v", dot)
	}

	a := r2.Norm(physics.Acceleration(pos, []physics.MassSource{center}))
	v := r2.Norm(ccw)
	if got := v * v / 1e12; math.Abs(got-a)/a > 1e-9 {
		t.Errorf("centripetal %v != gravity %v", got, a)
	}

	if got := CircularVelocity(center.Position, center, false); got != (r2.Vec{}) {
		t.Errorf("velocity at center = %v", got)
	}
}

func validLevel() YAMLLevel {
	return YAMLLevel{
		ID:     "t1",
		Name:   "Test",
		Player: YAMLPlayer{X: 0.1, Y: 0.1, Radius: 0.25},
		Bodies: []YAMLBody{
			{Name: "sun", Role: "obstacle", X: 0.5, Y: 0.5, Radius: 3, Mass: YAMLMass{Suns: 1}},
			{Name: "goal", Role: "destination", X: 0.9, Y: 0.9, Radius: 3, Mass: YAMLMass{Suns: 0.5}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*YAMLLevel)
		code   string
	}{
		{"valid", func(*YAMLLevel) {}, ""},
		{"missing id", func(l *YAMLLevel) { l.ID = "" }, "MISSING_ID"},
		{"player radius", func(l *YAMLLevel) { l.Player.Radius = 0 }, "BAD_RADIUS"},
		{"player off field", func(l *YAMLLevel) { l.Player.X = 1.2 }, "OUT_OF_BOUNDS"},
		{"body off field", func(l *YAMLLevel) { l.Bodies[0].Y = -0.1 }, "OUT_OF_BOUNDS"},
		{"negative radius", func(l *YAMLLevel) { l.Bodies[0].Radius = -1 }, "BAD_RADIUS"},
		{"zero mass", func(l *YAMLLevel) { l.Bodies[0].Mass = YAMLMass{} }, "BAD_MASS"},
		{"negative mass term", func(l *YAMLLevel) { l.Bodies[0].Mass = YAMLMass{Suns: 1, Earths: -1} }, "BAD_MASS"},
		{"unknown role", func(l *YAMLLevel) { l.Bodies[0].Role = "comet" }, "UNKNOWN_ROLE"},
		{"missing name", func(l *YAMLLevel) { l.Bodies[0].Name = "" }, "MISSING_NAME"},
		{"duplicate name", func(l *YAMLLevel) { l.Bodies[1].Name = "sun" }, "DUPLICATE_NAME"},
		{"no destination", func(l *YAMLLevel) { l.Bodies = l.Bodies[:1] }, "NO_DESTINATION"},
		{"two destinations", func(l *YAMLLevel) { l.Bodies[0].Role = "destination" }, "MULTIPLE_DESTINATIONS"},
		{"player overlap", func(l *YAMLLevel) { l.Player.X, l.Player.Y = 0.5, 0.5 }, "PLAYER_OVERLAP"},
		{"orbit on obstacle", func(l *YAMLLevel) { l.Bodies[0].Orbit = &YAMLOrbit{Around: "goal"} }, "BAD_ORBIT"},
		{"orbit unknown center", func(l *YAMLLevel) {
			l.Bodies = append(l.Bodies, YAMLBody{Name: "moon", Role: "orbiter", X: 0.5, Y: 0.8, Radius: 1, Mass: YAMLMass{Earths: 1}, Orbit: &YAMLOrbit{Around: "nowhere"}})
		}, "BAD_ORBIT"},
		{"orbit inside horizon", func(l *YAMLLevel) {
			l.Bodies = append(l.Bodies, YAMLBody{Name: "moon", Role: "orbiter", X: 0.51, Y: 0.5, Radius: 0.1, Mass: YAMLMass{Earths: 1}, Orbit: &YAMLOrbit{Around: "sun"}})
		}, "BAD_ORBIT"},
		{"valid orbit", func(l *YAMLLevel) {
			l.Bodies = append(l.Bodies, YAMLBody{Name: "moon", Role: "orbiter", X: 0.5, Y: 0.8, Radius: 1, Mass: YAMLMass{Earths: 1}, Orbit: &YAMLOrbit{Around: "sun"}})
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			yl := validLevel()
			tc.mutate(&yl)
			err := Validate(yl)

			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError %s, got %v", tc.code, err)
			}
			if ve.Code != tc.code {
				t.Errorf("code = %s, expected %s (%s)", ve.Code, tc.code, ve.Message)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{Code: "BAD_MASS", Message: "nope"}
	if err.Error() != "[BAD_MASS] nope" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseYAMLRejectsMalformed(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

const customLevel = `
id: "02"
name: Replacement
player: {x: 0.1, y: 0.1, radius: 0.25}
bodies:
  - {name: goal, role: destination, x: 0.9, y: 0.9, radius: 2, mass: {suns: 0.2}}
`

const extraLevel = `
id: "10"
name: Extra
player: {x: 0.1, y: 0.5, radius: 0.25}
bodies:
  - {name: goal, role: destination, x: 0.9, y: 0.5, radius: 2, mass: {earths: 5}}
`

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, dir, "b.yaml", extraLevel)
	writeLevel(t, filepath.Join(dir, "nested"), "a.yml", customLevel)
	writeLevel(t, dir, "broken.yaml", "id: x\nplayer: {radius: 0}\n")
	writeLevel(t, dir, "notes.txt", "ignored")

	loader := NewLoader(dir)
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 || lvls[0].ID != "02" || lvls[1].ID != "10" {
		t.Fatalf("unexpected levels: %+v", lvls)
	}
	if len(loader.Problems) != 1 {
		t.Errorf("expected one problem file, got %v", loader.Problems)
	}
	if lvls[1].FilePath != filepath.Join(dir, "b.yaml") {
		t.Errorf("FilePath = %q", lvls[1].FilePath)
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "02.yaml", customLevel)
	writeLevel(t, dir, "10.yaml", extraLevel)

	c, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	ids := c.IDs()
	want := []string{"01", "02", "03", "10"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %s, expected %s", i, ids[i], want[i])
		}
	}

	lvl, err := c.ByID("02")
	if err != nil || lvl.Name != "Replacement" {
		t.Errorf("ByID(02) = %q, %v; expected the custom level", lvl.Name, err)
	}
	if _, err := c.ByID("99"); err == nil {
		t.Error("expected error for unknown id")
	}

	next, ok := c.Next("03")
	if !ok || next.ID != "10" {
		t.Errorf("Next(03) = %s, %v", next.ID, ok)
	}
	if _, ok := c.Next("10"); ok {
		t.Error("Next on last level should report false")
	}
	if first, ok := c.First(); !ok || first.ID != "01" {
		t.Errorf("First = %s, %v", first.ID, ok)
	}
}

func TestCatalogBuiltinOnly(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Levels) != 3 || len(c.Problems) != 0 {
		t.Errorf("unexpected catalog: %d levels, %v", len(c.Levels), c.Problems)
	}
}
