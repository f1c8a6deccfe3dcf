package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPhysics loads the simulation tuning.
// Search order: customPath -> ~/.relativity/configs/physics.yaml -> ./configs/physics.yaml -> embedded default
//
// Files found on the search path are layered over the defaults, so a partial
// document only overrides the keys it names. A custom path that cannot be read
// or does not validate is an error; the other locations fall through silently.
func LoadPhysics(customPath string) (PhysicsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PhysicsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePhysics(data)
		if err != nil {
			return PhysicsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("physics.yaml"), filepath.Join("configs", "physics.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parsePhysics(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePhysics(defaultPhysicsYAML)
	if err != nil {
		return DefaultPhysicsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePhysics decodes data on top of the built-in defaults and validates it.
func parsePhysics(data []byte) (PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PhysicsConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PhysicsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".relativity", "configs", filename)
}
