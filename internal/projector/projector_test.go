package projector

import (
	"math"
	"testing"

	"github.com/vovakirdan/voxelpad/internal/camera"
	"github.com/vovakirdan/voxelpad/internal/world"
)

const eps = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testParams() Params {
	// 8×8 grid, 10 units per tile, origin-centered viewport
	return ParamsFor(8, 10, 0, 0)
}

func TestProjectZeroRotation(t *testing.T) {
	p := testParams()
	b := world.Block{Material: world.Stone, X: 2, Y: 1, Z: 3}

	pt := Project(b, camera.Rotation{}, p)

	// px = 2*10 - 40, py = -1*10, pz = 3*10 - 40
	if !closeTo(pt.X, -20) {
		t.Errorf("X = %v, expected -20", pt.X)
	}
	if !closeTo(pt.Y, -10) {
		t.Errorf("Y = %v, expected -10", pt.Y)
	}
	if !closeTo(pt.Key, KeyBias+10) {
		t.Errorf("Key = %v, expected %v", pt.Key, KeyBias+10)
	}
}

func TestProjectViewportOffset(t *testing.T) {
	p := ParamsFor(8, 10, 100, 50)
	b := world.Block{X: 4, Y: 0, Z: 4}

	pt := Project(b, camera.Rotation{}, p)

	// Grid center projects onto the viewport offset
	if !closeTo(pt.X, 100) {
		t.Errorf("X = %v, expected 100", pt.X)
	}
	if !closeTo(pt.Y, 50) {
		t.Errorf("Y = %v, expected 50", pt.Y)
	}
}

func TestProjectYawQuarterTurn(t *testing.T) {
	p := testParams()
	b := world.Block{X: 2, Y: 0, Z: 3} // px=-20, pz=-10

	pt := Project(b, camera.Rotation{Yaw: 90}, p)

	// (px, pz) → (-pz, px)
	if !closeTo(pt.X, 10) {
		t.Errorf("X = %v, expected 10", pt.X)
	}
	if !closeTo(pt.Key, KeyBias+20) {
		t.Errorf("Key = %v, expected %v", pt.Key, KeyBias+20)
	}
}

func TestProjectPitchQuarterTurn(t *testing.T) {
	p := testParams()
	b := world.Block{X: 4, Y: 2, Z: 3} // px=0, py=-20, pz=-10

	pt := Project(b, camera.Rotation{Pitch: 90}, p)

	// (py, pz) → (-pz, py)
	if !closeTo(pt.Y, 10) {
		t.Errorf("Y = %v, expected 10", pt.Y)
	}
	if !closeTo(pt.Key, KeyBias+20) {
		t.Errorf("Key = %v, expected %v", pt.Key, KeyBias+20)
	}
}

func TestPaintKeyDecreasesWithDepth(t *testing.T) {
	p := testParams()
	rot := camera.Rotation{Pitch: 30, Yaw: 45}

	prev := math.Inf(1)
	for z := 0; z < 8; z++ {
		pt := Project(world.Block{X: 0, Y: 0, Z: z}, rot, p)
		if pt.Key >= prev {
			t.Errorf("Key at z=%d is %v, expected strictly below %v", z, pt.Key, prev)
		}
		prev = pt.Key
	}
}

func TestPaintOrderBackToFront(t *testing.T) {
	p := testParams()
	blocks := []world.Block{
		{Material: world.Grass, X: 0, Y: 0, Z: 0}, // nearest at yaw 0
		{Material: world.Stone, X: 0, Y: 0, Z: 7}, // farthest
		{Material: world.Dirt, X: 0, Y: 0, Z: 4},
	}

	ordered := PaintOrder(blocks, camera.Rotation{}, p)

	if len(ordered) != 3 {
		t.Fatalf("PaintOrder returned %d blocks, expected 3", len(ordered))
	}
	got := []int{ordered[0].Block.Z, ordered[1].Block.Z, ordered[2].Block.Z}
	want := []int{7, 4, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paint order by z = %v, expected %v (back to front)", got, want)
		}
	}
}

func TestPaintOrderStableOnTies(t *testing.T) {
	p := testParams()
	// Identical coordinates: equal distance and equal key
	blocks := []world.Block{
		{Material: world.Grass, X: 3, Y: 1, Z: 3},
		{Material: world.Stone, X: 3, Y: 1, Z: 3},
		{Material: world.Planks, X: 3, Y: 1, Z: 3},
	}

	ordered := PaintOrder(blocks, camera.Rotation{Pitch: 30, Yaw: 45}, p)

	want := []world.Material{world.Grass, world.Stone, world.Planks}
	for i, pr := range ordered {
		if pr.Block.Material != want[i] {
			t.Errorf("position %d is %v, expected %v (insertion order preserved)",
				i, pr.Block.Material, want[i])
		}
	}
}

func TestPaintOrderDoesNotMutateInput(t *testing.T) {
	p := testParams()
	blocks := []world.Block{
		{X: 0, Y: 0, Z: 7},
		{X: 0, Y: 0, Z: 0},
	}

	PaintOrder(blocks, camera.Rotation{}, p)

	if blocks[0].Z != 7 || blocks[1].Z != 0 {
		t.Error("PaintOrder reordered the caller's slice")
	}
}
