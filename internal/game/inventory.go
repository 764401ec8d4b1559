package game

import "github.com/vovakirdan/voxelpad/internal/world"

// InventoryItem is static display metadata for one inventory slot.
// Counts are cosmetic and never decrease on placement.
type InventoryItem struct {
	Material world.Material
	Count    int
}

// defaultInventory returns the fixed inventory listing, one slot per
// placeable material. The first slot is the default selection.
func defaultInventory() []InventoryItem {
	materials := world.Placeable()
	items := make([]InventoryItem, len(materials))
	for i, m := range materials {
		items[i] = InventoryItem{Material: m, Count: 64}
	}
	return items
}
