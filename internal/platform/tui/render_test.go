package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/flapper/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorYellow)
	s.DrawText(0, 1, "score", core.ColorWhite)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "abcd  ")
	}
	if lines[1] != "score " {
		t.Errorf("row 1 = %q, expected %q", lines[1], "score ")
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen() of empty screen = %q, expected empty", out)
	}
}
