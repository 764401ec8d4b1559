package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 4)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 5, 5, true},
		{"interior", 10, 7, true},
		{"right edge (exclusive)", 15, 5, false},
		{"bottom edge (exclusive)", 5, 9, false},
		{"left of rect", 4, 7, false},
		{"above rect", 10, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"within range", 30, -90, 90, 30},
		{"below min", -120, -90, 90, -90},
		{"above max", 115, -90, 90, 90},
		{"at min", -90, -90, 90, -90},
		{"at max", 90, -90, 90, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
					tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestWrapDeg(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected float64
	}{
		{"already in range", 45, 45},
		{"zero", 0, 0},
		{"exactly 360", 360, 0},
		{"above 360", 405, 45},
		{"multiple turns", 725, 5},
		{"negative wraps up", -10, 350},
		{"negative full turn", -360, 0},
		{"large negative", -730, 350},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapDeg(tc.deg)
			if got != tc.expected {
				t.Errorf("WrapDeg(%v) = %v, expected %v", tc.deg, got, tc.expected)
			}
			if got < 0 || got >= 360 {
				t.Errorf("WrapDeg(%v) = %v, outside [0, 360)", tc.deg, got)
			}
		})
	}
}
