package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapper/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionFlap},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		action   tea.MouseAction
		button   tea.MouseButton
		expected core.Action
	}{
		{"left press", tea.MouseActionPress, tea.MouseButtonLeft, core.ActionFlap},
		{"middle press", tea.MouseActionPress, tea.MouseButtonMiddle, core.ActionFlap},
		{"right press", tea.MouseActionPress, tea.MouseButtonRight, core.ActionFlap},
		{"release", tea.MouseActionRelease, tea.MouseButtonLeft, core.ActionNone},
		{"motion", tea.MouseActionMotion, tea.MouseButtonLeft, core.ActionNone},
		{"wheel down", tea.MouseActionPress, tea.MouseButtonWheelDown, core.ActionNone},
		{"wheel up", tea.MouseActionPress, tea.MouseButtonWheelUp, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := tea.MouseMsg{Action: tc.action, Button: tc.button}
			if got := MapMouse(msg); got != tc.expected {
				t.Errorf("MapMouse() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
