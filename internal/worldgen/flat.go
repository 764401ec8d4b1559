// Package worldgen contains the world preset generators.
// Each preset registers itself with the registry in init().
package worldgen

import (
	"math/rand"

	"github.com/vovakirdan/voxelpad/internal/registry"
	"github.com/vovakirdan/voxelpad/internal/world"
)

func init() {
	registry.Register("flat", "Flat Meadow", GenerateFlat)
}

// GenerateFlat builds the classic world: a flat grassy plane with scattered
// decorative dirt blocks and a few simple trees.
func GenerateFlat(p registry.GenParams, seed int64) *world.World {
	rng := rand.New(rand.NewSource(seed))
	w := world.New(p.Size)

	// Ground plane with decorative dirt
	for x := 0; x < p.Size; x++ {
		for z := 0; z < p.Size; z++ {
			w.Add(world.Grass, x, 0, z)
			if rng.Float64() < p.DirtChance {
				w.Add(world.Dirt, x, 1, z)
			}
		}
	}

	plantTrees(w, rng, p, func(x, z int) int { return 0 })

	return w
}

// plantTrees scatters p.Trees tree structures at distinct random columns.
// groundAt reports the surface height of a column; the trunk starts one above.
func plantTrees(w *world.World, rng *rand.Rand, p registry.GenParams, groundAt func(x, z int) int) {
	used := make(map[[2]int]bool)
	for planted := 0; planted < p.Trees; {
		x := rng.Intn(p.Size)
		z := rng.Intn(p.Size)
		if used[[2]int{x, z}] {
			continue
		}
		used[[2]int{x, z}] = true

		base := groundAt(x, z)
		w.Add(world.Wood, x, base+1, z)
		w.Add(world.Wood, x, base+2, z)
		w.Add(world.Leaves, x, base+3, z)
		planted++
	}
}
