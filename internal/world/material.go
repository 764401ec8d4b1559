// Package world implements the voxelpad world state: the material catalog,
// the insertion-ordered block collection, and its mutation rules.
package world

import "github.com/vovakirdan/voxelpad/internal/core"

// Material identifies a block type. Empty marks the absence of a block and is
// never placed in the world by the UI.
type Material uint8

const (
	Empty Material = iota
	Grass
	Dirt
	Stone
	Wood
	Leaves
	Planks
)

// String returns the material's display name.
func (m Material) String() string {
	switch m {
	case Empty:
		return "Empty"
	case Grass:
		return "Grass"
	case Dirt:
		return "Dirt"
	case Stone:
		return "Stone"
	case Wood:
		return "Wood"
	case Leaves:
		return "Leaves"
	case Planks:
		return "Planks"
	default:
		return "Unknown"
	}
}

// Color returns the display color for flat-fill rendering.
func (m Material) Color() core.Color {
	switch m {
	case Grass:
		return core.ColorGreen
	case Dirt:
		return core.ColorBrown
	case Stone:
		return core.ColorGray
	case Wood:
		return core.ColorOrange
	case Leaves:
		return core.ColorDarkGreen
	case Planks:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// Icon returns the rune used for this material in the inventory panel.
func (m Material) Icon() rune {
	switch m {
	case Grass:
		return '▒'
	case Dirt:
		return '░'
	case Stone:
		return '▓'
	case Wood:
		return '║'
	case Leaves:
		return '*'
	case Planks:
		return '='
	default:
		return '·'
	}
}

// Placeable returns the materials a player can select and place,
// in inventory order. The first entry is the default selection.
func Placeable() []Material {
	return []Material{Grass, Dirt, Stone, Wood, Leaves, Planks}
}
