// Package camera tracks the view rotation and the pointer drag gesture that
// drives it. Pitch is clamped, yaw wraps, and deltas are scaled by a fixed
// sensitivity constant.
package camera

import "github.com/vovakirdan/voxelpad/internal/core"

// Pitch limits in degrees. Yaw has no limits; it wraps into [0, 360).
const (
	PitchMin = -90.0
	PitchMax = 90.0
)

// DefaultSensitivity is the degrees-per-cell factor applied to drag deltas.
const DefaultSensitivity = 0.3

// Rotation holds the camera angles in degrees.
// Pitch ∈ [PitchMin, PitchMax], Yaw ∈ [0, 360).
type Rotation struct {
	Pitch float64
	Yaw   float64
}

// Normalized returns the rotation with pitch clamped and yaw wrapped.
func (r Rotation) Normalized() Rotation {
	return Rotation{
		Pitch: core.ClampF(r.Pitch, PitchMin, PitchMax),
		Yaw:   core.WrapDeg(r.Yaw),
	}
}

// Camera owns the rotation and the state of an in-progress drag gesture.
type Camera struct {
	rot         Rotation
	sensitivity float64

	dragging   bool
	anchorX    int
	anchorY    int
	movedSince bool
}

// New creates a camera at the given starting rotation.
// A sensitivity ≤ 0 falls back to DefaultSensitivity.
func New(start Rotation, sensitivity float64) *Camera {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Camera{
		rot:         start.Normalized(),
		sensitivity: sensitivity,
	}
}

// Rotation returns the current normalized rotation.
func (c *Camera) Rotation() Rotation {
	return c.rot
}

// ApplyDelta rotates by a raw pointer delta: yaw by dx, pitch by dy, both
// scaled by the sensitivity constant.
func (c *Camera) ApplyDelta(dx, dy float64) {
	c.rot.Yaw = core.WrapDeg(c.rot.Yaw + dx*c.sensitivity)
	c.rot.Pitch = core.ClampF(c.rot.Pitch+dy*c.sensitivity, PitchMin, PitchMax)
}

// BeginDrag starts a gesture at the given pointer position.
func (c *Camera) BeginDrag(x, y int) {
	c.dragging = true
	c.anchorX = x
	c.anchorY = y
	c.movedSince = false
}

// DragTo continues a gesture: applies the delta since the last sampled
// position and re-anchors. Ignored when no gesture is active.
// Returns true if the pointer actually moved.
func (c *Camera) DragTo(x, y int) bool {
	if !c.dragging {
		return false
	}
	dx := x - c.anchorX
	dy := y - c.anchorY
	if dx == 0 && dy == 0 {
		return false
	}
	c.ApplyDelta(float64(dx), float64(dy))
	c.anchorX = x
	c.anchorY = y
	c.movedSince = true
	return true
}

// EndDrag finishes the gesture. Returns true if the pointer moved at any
// point during it, letting the caller tell a drag apart from a click.
func (c *Camera) EndDrag() bool {
	moved := c.movedSince
	c.dragging = false
	c.movedSince = false
	return moved
}

// Dragging reports whether a gesture is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}
