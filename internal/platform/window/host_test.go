package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flapper/internal/core"
)

func TestCountPresses(t *testing.T) {
	none := func(ebiten.MouseButton) bool { return false }
	left := func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft }
	all := func(ebiten.MouseButton) bool { return true }
	back := func(b ebiten.MouseButton) bool { return b == ebiten.MouseButton3 }

	tests := []struct {
		name     string
		keys     int
		touches  int
		pressed  func(ebiten.MouseButton) bool
		expected int
	}{
		{"nothing", 0, 0, none, 0},
		{"two keys", 2, 0, none, 2},
		{"key and touch", 1, 1, none, 2},
		{"left click", 0, 0, left, 1},
		{"every button", 1, 2, all, 6},
		{"other buttons ignored", 0, 0, back, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := countPresses(tc.keys, tc.touches, tc.pressed); got != tc.expected {
				t.Errorf("countPresses() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestRoundedRect(t *testing.T) {
	bars, corners, r := roundedRect(190, 200, 420, 200, 16)
	if r != 16 {
		t.Errorf("radius = %v, expected 16", r)
	}
	if bars[0] != core.NewRect(206, 200, 388, 200) {
		t.Errorf("vertical bar = %+v", bars[0])
	}
	if bars[1] != core.NewRect(190, 216, 420, 168) {
		t.Errorf("horizontal bar = %+v", bars[1])
	}
	expected := [4][2]float64{{206, 216}, {594, 216}, {206, 384}, {594, 384}}
	if corners != expected {
		t.Errorf("corners = %v, expected %v", corners, expected)
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	tests := []struct {
		name     string
		w, h, r  float64
		expected float64
	}{
		{"wider than tall", 100, 20, 16, 10},
		{"taller than wide", 10, 100, 16, 5},
		{"negative", 100, 100, -3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bars, _, r := roundedRect(0, 0, tc.w, tc.h, tc.r)
			if r != tc.expected {
				t.Errorf("radius = %v, expected %v", r, tc.expected)
			}
			if bars[0].W < 0 || bars[1].H < 0 {
				t.Errorf("bars have negative size: %+v", bars)
			}
		})
	}
}
