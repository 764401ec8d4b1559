// Package config loads voxelpad settings from YAML with an embedded default.
package config

// Config is the full voxelpad configuration.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Camera CameraConfig `yaml:"camera"`
	View   ViewConfig   `yaml:"view"`
}

// WorldConfig controls procedural generation.
type WorldConfig struct {
	Preset     string  `yaml:"preset"`      // World preset ID ("flat", "hills")
	Size       int     `yaml:"size"`        // Grid extent along X and Z
	DirtChance float64 `yaml:"dirt_chance"` // Per-column decorative dirt probability
	Trees      int     `yaml:"trees"`       // Tree structures to scatter
}

// CameraConfig controls the starting view and drag behavior.
type CameraConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // Degrees per dragged cell
	Pitch       float64 `yaml:"pitch"`       // Starting pitch in degrees
	Yaw         float64 `yaml:"yaw"`         // Starting yaw in degrees
}

// ViewConfig controls the projection scale.
type ViewConfig struct {
	TileSize float64 `yaml:"tile_size"` // World units per grid step
}

// Sanitize replaces out-of-range values with their defaults so a hand-edited
// config cannot produce a degenerate view.
func (c *Config) Sanitize() {
	def := Default()
	if c.World.Preset == "" {
		c.World.Preset = def.World.Preset
	}
	if c.World.Size < 2 {
		c.World.Size = def.World.Size
	}
	if c.World.DirtChance < 0 || c.World.DirtChance > 1 {
		c.World.DirtChance = def.World.DirtChance
	}
	if c.World.Trees < 0 || c.World.Trees > c.World.Size*c.World.Size {
		c.World.Trees = def.World.Trees
	}
	if c.Camera.Sensitivity <= 0 {
		c.Camera.Sensitivity = def.Camera.Sensitivity
	}
	if c.View.TileSize <= 0 {
		c.View.TileSize = def.View.TileSize
	}
}
