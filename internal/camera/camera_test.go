package camera

import "testing"

func TestApplyDeltaYaw(t *testing.T) {
	// {pitch:30, yaw:45}, drag delta (dx:100, dy:0) at k=0.3 ⇒ yaw 75, pitch unchanged
	c := New(Rotation{Pitch: 30, Yaw: 45}, 0.3)

	c.ApplyDelta(100, 0)

	rot := c.Rotation()
	if rot.Yaw != 75 {
		t.Errorf("Yaw = %v, expected 75", rot.Yaw)
	}
	if rot.Pitch != 30 {
		t.Errorf("Pitch = %v, expected unchanged 30", rot.Pitch)
	}
}

func TestApplyDeltaPitchClamps(t *testing.T) {
	// pitch 85, dy=100 at k=0.3 would push to 115 ⇒ clamped to 90
	c := New(Rotation{Pitch: 85, Yaw: 0}, 0.3)

	c.ApplyDelta(0, 100)

	if got := c.Rotation().Pitch; got != 90 {
		t.Errorf("Pitch = %v, expected clamp at 90", got)
	}

	c.ApplyDelta(0, -10000)
	if got := c.Rotation().Pitch; got != -90 {
		t.Errorf("Pitch = %v, expected clamp at -90", got)
	}
}

func TestApplyDeltaYawWraps(t *testing.T) {
	tests := []struct {
		name     string
		startYaw float64
		dx       float64
		expected float64
	}{
		{"wraps past 360", 350, 100, 20},  // 350 + 30
		{"wraps below 0", 10, -100, 340},  // 10 - 30
		{"lands exactly on 360", 330, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Rotation{Yaw: tc.startYaw}, 0.3)
			c.ApplyDelta(tc.dx, 0)

			got := c.Rotation().Yaw
			if got != tc.expected {
				t.Errorf("Yaw = %v, expected %v", got, tc.expected)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Yaw = %v, outside [0, 360)", got)
			}
		})
	}
}

func TestDragGesture(t *testing.T) {
	c := New(Rotation{}, 0.3)

	// Moves before a press are ignored
	if c.DragTo(50, 50) {
		t.Error("DragTo before BeginDrag should be ignored")
	}
	if c.Rotation().Yaw != 0 {
		t.Errorf("Yaw = %v after ignored move, expected 0", c.Rotation().Yaw)
	}

	// Press, move, release
	c.BeginDrag(10, 10)
	if !c.Dragging() {
		t.Error("Dragging() should be true after BeginDrag")
	}

	c.DragTo(20, 10) // dx=10 ⇒ yaw += 3
	if got := c.Rotation().Yaw; got != 3 {
		t.Errorf("Yaw = %v after first move, expected 3", got)
	}

	// Delta is measured from the last sampled position, not the anchor
	c.DragTo(30, 10) // another dx=10 ⇒ yaw += 3
	if got := c.Rotation().Yaw; got != 6 {
		t.Errorf("Yaw = %v after second move, expected 6", got)
	}

	if moved := c.EndDrag(); !moved {
		t.Error("EndDrag should report the pointer moved")
	}
	if c.Dragging() {
		t.Error("Dragging() should be false after EndDrag")
	}

	// Moves after release are ignored again
	if c.DragTo(100, 100) {
		t.Error("DragTo after EndDrag should be ignored")
	}
}

func TestDragWithoutMovementIsAClick(t *testing.T) {
	c := New(Rotation{}, 0.3)

	c.BeginDrag(5, 5)
	c.DragTo(5, 5) // no movement
	if moved := c.EndDrag(); moved {
		t.Error("EndDrag should report no movement for a stationary gesture")
	}
}

func TestNewNormalizesStart(t *testing.T) {
	c := New(Rotation{Pitch: 120, Yaw: -45}, 0)

	rot := c.Rotation()
	if rot.Pitch != 90 {
		t.Errorf("start Pitch = %v, expected clamp to 90", rot.Pitch)
	}
	if rot.Yaw != 315 {
		t.Errorf("start Yaw = %v, expected wrap to 315", rot.Yaw)
	}
}
