package game

import "github.com/vovakirdan/voxelpad/internal/world"

// Snapshot captures the observable sandbox state for determinism testing.
type Snapshot struct {
	Seed          int64
	Blocks        int
	Placed        int
	Removed       int
	Selected      world.Material
	Pitch         float64
	Yaw           float64
	InventoryOpen bool
	StatsOverlay  bool
}

// Snapshot returns the current sandbox snapshot.
func (s *Sandbox) Snapshot() Snapshot {
	rot := s.cam.Rotation()
	return Snapshot{
		Seed:          s.seed,
		Blocks:        s.world.Len(),
		Placed:        s.placed,
		Removed:       s.removed,
		Selected:      s.selected,
		Pitch:         rot.Pitch,
		Yaw:           rot.Yaw,
		InventoryOpen: s.inventoryOpen,
		StatsOverlay:  s.statsOverlay,
	}
}
