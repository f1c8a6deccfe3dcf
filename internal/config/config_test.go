package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPhysicsConfigValidates(t *testing.T) {
	if err := DefaultPhysicsConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parsePhysics(defaultPhysicsYAML)
	if err != nil {
		t.Fatalf("embedded defaults: %v", err)
	}
	if cfg != DefaultPhysicsConfig() {
		t.Errorf("embedded defaults drifted from DefaultPhysicsConfig:\n%+v\n%+v", cfg, DefaultPhysicsConfig())
	}
}

func TestLoadPhysicsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPhysics("")
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if cfg != DefaultPhysicsConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPhysicsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".relativity", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("trail:\n  max_points: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPhysics("")
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if cfg.Trail.MaxPoints != 10 {
		t.Errorf("Trail.MaxPoints = %d, expected 10", cfg.Trail.MaxPoints)
	}
}

func TestLoadPhysicsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	doc := "simrate:\n  max: 4.0\ngrid:\n  visible: false\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPhysics(path)
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if cfg.SimRate.Max != 4 {
		t.Errorf("SimRate.Max = %v, expected 4", cfg.SimRate.Max)
	}
	if cfg.Grid.Visible {
		t.Errorf("Grid.Visible should be overridden to false")
	}
	if cfg.SimRate.Min != 0.25 || cfg.Grid.CellWidth != 4 {
		t.Errorf("untouched keys lost their defaults: %+v", cfg)
	}
}

func TestLoadPhysicsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPhysics(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("time: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPhysics(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("simrate:\n  min: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPhysics(invalid)
	if err == nil || !strings.Contains(err.Error(), "simrate") {
		t.Errorf("expected simrate validation error, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PhysicsConfig)
	}{
		{"zero time scale", func(c *PhysicsConfig) { c.Time.DaysPerSecond = 0 }},
		{"ceiling at c", func(c *PhysicsConfig) { c.Launch.Ceiling = 1 }},
		{"min above ceiling", func(c *PhysicsConfig) { c.Launch.MinFraction = 0.995 }},
		{"default off step", func(c *PhysicsConfig) { c.SimRate.Default = 1.1 }},
		{"default out of range", func(c *PhysicsConfig) { c.SimRate.Default = 3 }},
		{"negative grid", func(c *PhysicsConfig) { c.Grid.Cols = -1 }},
		{"zero cell width", func(c *PhysicsConfig) { c.Grid.CellWidth = 0 }},
		{"trauma above one", func(c *PhysicsConfig) { c.Outcome.ShakeTrauma = 2 }},
		{"no trail", func(c *PhysicsConfig) { c.Trail.MaxPoints = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPhysicsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultPhysicsConfig()
	easy.ApplyPreset(DifficultyEasy)
	if !easy.Assist.ArcTicks || easy.Assist.PreviewSteps <= DefaultPhysicsConfig().Assist.PreviewSteps {
		t.Errorf("easy preset should lengthen the preview: %+v", easy.Assist)
	}

	hard := DefaultPhysicsConfig()
	hard.ApplyPreset(DifficultyHard)
	if hard.Assist.ArcTicks || hard.Assist.PreviewSteps != 0 {
		t.Errorf("hard preset should remove aids: %+v", hard.Assist)
	}

	normal := DefaultPhysicsConfig()
	normal.ApplyPreset(DifficultyNormal)
	if normal != DefaultPhysicsConfig() {
		t.Errorf("normal preset changed the config")
	}
}

func TestDerivedPhysicsValues(t *testing.T) {
	cfg := DefaultPhysicsConfig()

	if l := cfg.Lattice(100, 30); l.Cols != 25 || l.Rows != 15 || l.MaxDisplacement != 80 {
		t.Errorf("fitted Lattice = %+v", l)
	}
	if l := cfg.Lattice(2, 1); l.Cols != 1 || l.Rows != 1 {
		t.Errorf("tiny area should still give one cell, got %dx%d", l.Cols, l.Rows)
	}

	cfg.Grid.Cols, cfg.Grid.Rows = 40, 24
	if l := cfg.Lattice(100, 30); l.Cols != 40 || l.Rows != 24 {
		t.Errorf("explicit Lattice = %+v", l)
	}
	if b := cfg.RateBounds(); b.Min != 0.25 || b.Max != 2 || b.Default != 1 {
		t.Errorf("RateBounds() = %+v", b)
	}
	if lc := cfg.LaunchCurve(); lc.MinFraction != 0.10 || lc.Ceiling != 0.99 {
		t.Errorf("LaunchCurve() = %+v", lc)
	}
	if got := cfg.SimSeconds(10); got != 86_400 {
		t.Errorf("SimSeconds(10) = %v, expected one day", got)
	}
}
