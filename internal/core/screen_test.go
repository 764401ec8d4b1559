package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '█', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '█' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '█'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorGreen", cell.Color)
	}

	// Out of bounds returns a default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", oob)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(7, 0, "world")
	if s.Row(0) != "       wor" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "       wor")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 4)

	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGray)

	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("Get(%d, %d) = %q, expected '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(0, 0) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("after Resize: %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking drops content outside the new bounds without panicking
	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("content inside shrunk bounds should survive")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "ab  " || lines[1] != "cd  " {
		t.Errorf("String() = %q", out)
	}
}
