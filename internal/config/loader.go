package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/voxelpad.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback and as the source of sanitized values.
func Default() Config {
	return Config{
		World: WorldConfig{
			Preset:     "flat",
			Size:       8,
			DirtChance: 0.3,
			Trees:      3,
		},
		Camera: CameraConfig{
			Sensitivity: 0.3,
			Pitch:       30,
			Yaw:         45,
		},
		View: ViewConfig{
			TileSize: 3,
		},
	}
}

// Load loads the voxelpad configuration.
// Search order: customPath -> ~/.voxelpad/config.yaml -> ./configs/voxelpad.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first; an explicit path failing is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Sanitize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Sanitize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "voxelpad.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Sanitize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Sanitize()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty when the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".voxelpad", "config.yaml")
}
