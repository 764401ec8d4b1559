// Package projector maps block grid coordinates and the camera rotation to
// 2D view positions and a paint order. The transform is a hand-rolled pair
// of rotations, not a real 3D pipeline, and the depth ordering is a
// painter's-algorithm heuristic preserved from the original design: it can
// mis-order overlapping geometry at oblique angles and that is accepted.
package projector

import (
	"math"
	"sort"

	"github.com/vovakirdan/voxelpad/internal/camera"
	"github.com/vovakirdan/voxelpad/internal/world"
)

// KeyBias is the large constant the final depth is subtracted from, so that
// a larger paint key always means "nearer, draw later".
const KeyBias = 100000.0

// Params fixes the viewport mapping for a projection pass.
type Params struct {
	TileSize float64 // World units per grid step
	Extent   float64 // Half the total grid extent; keeps the world centered
	OffsetX  float64 // Viewport translation, roughly the view center
	OffsetY  float64
}

// ParamsFor builds projection parameters for a size×size world rendered
// around the viewport point (offsetX, offsetY).
func ParamsFor(size int, tileSize, offsetX, offsetY float64) Params {
	return Params{
		TileSize: tileSize,
		Extent:   float64(size) * tileSize / 2,
		OffsetX:  offsetX,
		OffsetY:  offsetY,
	}
}

// Point is a projected block position: viewport coordinates plus the paint
// key derived from the post-rotation depth.
type Point struct {
	X, Y float64
	Key  float64
}

// Project maps a block to its view position under the given rotation.
func Project(b world.Block, rot camera.Rotation, p Params) Point {
	yaw := rot.Yaw * math.Pi / 180
	pitch := rot.Pitch * math.Pi / 180

	// World position centered on the grid; y grows upward on screen
	px := float64(b.X)*p.TileSize - p.Extent
	py := -float64(b.Y) * p.TileSize
	pz := float64(b.Z)*p.TileSize - p.Extent

	// Yaw about the vertical axis: rotate in the x/z plane
	sinY, cosY := math.Sin(yaw), math.Cos(yaw)
	px, pz = px*cosY-pz*sinY, px*sinY+pz*cosY

	// Pitch about the horizontal axis: rotate in the resulting y/z plane
	sinX, cosX := math.Sin(pitch), math.Cos(pitch)
	py, pz = py*cosX-pz*sinX, py*sinX+pz*cosX

	return Point{
		X:   px + p.OffsetX,
		Y:   py + p.OffsetY,
		Key: KeyBias - pz,
	}
}

// Projected pairs a block with its projected position.
type Projected struct {
	Block world.Block
	Point Point
}

// PaintOrder projects every block and returns the draw sequence,
// back-to-front. Two stable passes reproduce the original ordering: the set
// is first arranged by descending squared distance from the world origin
// (farther appended first), then by ascending paint key so that deeper
// blocks draw earlier. Ties keep insertion order.
func PaintOrder(blocks []world.Block, rot camera.Rotation, p Params) []Projected {
	out := make([]Projected, len(blocks))
	for i, b := range blocks {
		out[i] = Projected{Block: b}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return squaredDistance(out[i].Block) > squaredDistance(out[j].Block)
	})

	for i := range out {
		out[i].Point = Project(out[i].Block, rot, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Point.Key < out[j].Point.Key
	})

	return out
}

// squaredDistance is the depth-sort heuristic key: x²+y²+z² over the raw
// grid coordinates.
func squaredDistance(b world.Block) int {
	return b.X*b.X + b.Y*b.Y + b.Z*b.Z
}
