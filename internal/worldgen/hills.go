package worldgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/voxelpad/internal/registry"
	"github.com/vovakirdan/voxelpad/internal/world"
)

// Perlin noise shape for the hills heightmap.
const (
	hillsAlpha     = 2.0
	hillsBeta      = 2.0
	hillsOctaves   = 2
	hillsMaxHeight = 3
)

func init() {
	registry.Register("hills", "Rolling Hills", GenerateHills)
}

// GenerateHills builds a world with a Perlin-noise heightmap: stone columns
// capped with grass, plus the same dirt scatter and tree pass as the flat
// preset applied on top of the surface.
func GenerateHills(p registry.GenParams, seed int64) *world.World {
	rng := rand.New(rand.NewSource(seed))
	noise := perlin.NewPerlin(hillsAlpha, hillsBeta, hillsOctaves, seed)
	w := world.New(p.Size)

	heights := make([][]int, p.Size)
	for x := 0; x < p.Size; x++ {
		heights[x] = make([]int, p.Size)
		for z := 0; z < p.Size; z++ {
			heights[x][z] = surfaceHeight(noise, x, z, p.Size)
		}
	}

	for x := 0; x < p.Size; x++ {
		for z := 0; z < p.Size; z++ {
			h := heights[x][z]
			for y := 0; y < h; y++ {
				w.Add(world.Stone, x, y, z)
			}
			w.Add(world.Grass, x, h, z)
			if rng.Float64() < p.DirtChance {
				w.Add(world.Dirt, x, h+1, z)
			}
		}
	}

	plantTrees(w, rng, p, func(x, z int) int { return heights[x][z] })

	return w
}

// surfaceHeight maps noise at a column to a height in [0, hillsMaxHeight].
func surfaceHeight(noise *perlin.Perlin, x, z, size int) int {
	// Noise2D returns roughly [-1, 1]; rescale to [0, 1]
	n := noise.Noise2D(float64(x)/float64(size), float64(z)/float64(size))
	n = (n + 1) / 2
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return int(n * float64(hillsMaxHeight+1) * 0.999)
}
