package core

import (
	"image/color"
	"testing"
)

func TestRectOverlapsX(t *testing.T) {
	pipe := NewRect(100, 0, 60, 600)

	tests := []struct {
		name     string
		box      Rect
		expected bool
	}{
		{"left of pipe", NewRect(70, 300, 24, 24), false},
		{"touching left edge", NewRect(76, 300, 24, 24), false},
		{"entering", NewRect(77, 300, 24, 24), true},
		{"inside", NewRect(120, 0, 24, 24), true},
		{"touching right edge", NewRect(160, 300, 24, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.OverlapsX(pipe); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCells(t *testing.T) {
	// 800x600 playfield onto an 80x24 grid
	x0, y0, x1, y1 := NewRect(100, 0, 60, 150).Cells(80, 24, 800, 600)

	if x0 != 10 || x1 != 16 {
		t.Errorf("Cells() x span = [%d,%d), expected [10,16)", x0, x1)
	}
	if y0 != 0 || y1 != 6 {
		t.Errorf("Cells() y span = [%d,%d), expected [0,6)", y0, y1)
	}

	// Partially covered cells count as covered
	x0, y0, x1, y1 = NewRect(105, 10, 10, 10).Cells(80, 24, 800, 600)
	if x0 != 10 || x1 != 12 || y0 != 0 || y1 != 1 {
		t.Errorf("Cells() = [%d,%d) x [%d,%d), expected [10,12) x [0,1)", x0, x1, y0, y1)
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		name     string
		in       color.Color
		expected Color
	}{
		{"yellow bird", color.RGBA{0xff, 0xff, 0x00, 0xff}, ColorBrightYellow},
		{"green pipe", color.RGBA{0x00, 0x80, 0x00, 0xff}, ColorGreen},
		{"dark text", color.RGBA{0x22, 0x22, 0x22, 0xff}, ColorDefault},
		{"game over red", color.RGBA{0xd3, 0x2f, 0x2f, 0xff}, ColorBrightRed},
		{"white", color.White, ColorBrightWhite},
		{"nil", nil, ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestColor(tc.in); got != tc.expected {
				t.Errorf("NearestColor() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsTranslucent(t *testing.T) {
	if !IsTranslucent(color.NRGBA{0, 0, 0, 89}) {
		t.Error("35% black overlay should be translucent")
	}
	if IsTranslucent(color.White) {
		t.Error("white should be opaque")
	}
}
