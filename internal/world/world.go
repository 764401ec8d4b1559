package world

// Block is a single voxel at integer grid coordinates.
// Identity is positional: the UI never stacks two blocks on the same triple,
// but the store does not enforce deduplication.
type Block struct {
	Material Material
	X, Y, Z  int
}

// World is an insertion-ordered sequence of blocks on a size×size grid.
// X and Z are assumed to stay within [0, size) and Y ≥ 0; the operations are
// total and do not validate, matching how the UI produces coordinates.
type World struct {
	blocks []Block
	size   int
}

// New creates an empty world over a size×size grid.
func New(size int) *World {
	return &World{
		blocks: make([]Block, 0, size*size*2),
		size:   size,
	}
}

// Size returns the grid extent along X and Z.
func (w *World) Size() int {
	return w.size
}

// Len returns the number of blocks currently in the world.
func (w *World) Len() int {
	return len(w.blocks)
}

// Blocks returns the block sequence in insertion order.
// The slice is shared with the world; callers must not mutate it.
func (w *World) Blocks() []Block {
	return w.blocks
}

// Add appends a block. No bounds or duplicate validation.
func (w *World) Add(m Material, x, y, z int) {
	w.blocks = append(w.blocks, Block{Material: m, X: x, Y: y, Z: z})
}

// RemoveAt removes every block whose coordinates exactly equal (x, y, z).
// A miss is a silent no-op.
func (w *World) RemoveAt(x, y, z int) {
	kept := w.blocks[:0]
	for _, b := range w.blocks {
		if b.X == x && b.Y == y && b.Z == z {
			continue
		}
		kept = append(kept, b)
	}
	w.blocks = kept
}

// HighestAt returns the maximum Y among blocks in column (x, z),
// or -1 when the column is empty.
func (w *World) HighestAt(x, z int) int {
	highest := -1
	for _, b := range w.blocks {
		if b.X == x && b.Z == z && b.Y > highest {
			highest = b.Y
		}
	}
	return highest
}

// PlaceOnTop adds a block of material m one unit above the tallest block in
// column (x, z). An empty column gets the block at y=0.
func (w *World) PlaceOnTop(m Material, x, z int) Block {
	y := w.HighestAt(x, z) + 1
	w.Add(m, x, y, z)
	return w.blocks[len(w.blocks)-1]
}

// RemoveNearCenter removes the above-ground block (y ≥ 1) whose column lies
// closest to the grid center, breaking distance ties by insertion order.
// Returns the removed block and true, or false when no block qualifies.
//
// This is a deliberate stand-in for crosshair-aimed targeting: the view has
// no raycast against the projected scene, so "destroy" aims near the middle.
func (w *World) RemoveNearCenter() (Block, bool) {
	cx := w.size / 2
	cz := w.size / 2

	best := -1
	bestDist := 0
	for i, b := range w.blocks {
		if b.Y < 1 {
			continue
		}
		dx := b.X - cx
		dz := b.Z - cz
		dist := dx*dx + dz*dz
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return Block{}, false
	}

	removed := w.blocks[best]
	w.blocks = append(w.blocks[:best], w.blocks[best+1:]...)
	return removed, true
}

// BuildAtCenter places material m on top of the center column.
// The "build" counterpart of RemoveNearCenter.
func (w *World) BuildAtCenter(m Material) Block {
	c := w.size / 2
	return w.PlaceOnTop(m, c, c)
}
