package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.KeyCode
		ok   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, engine.KeyUp, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, engine.KeyDown, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, engine.KeyLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, engine.KeyRight, true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, engine.KeyW, true},
		{"shifted W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, engine.KeyW, true},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, engine.KeyA, true},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, engine.KeyS, true},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, engine.KeyD, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, engine.KeyQ, true},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, engine.KeyR, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, engine.KeySpace, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, engine.KeyEscape, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, engine.KeyEnter, true},
		{"unmapped letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, engine.KeyUnknown, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, engine.KeyUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapKey(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapKey(%q) ok = %v, expected %v", tt.msg.String(), ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouseButton(t *testing.T) {
	tests := []struct {
		button tea.MouseButton
		want   engine.MouseButton
		ok     bool
	}{
		{tea.MouseButtonLeft, engine.MouseLeft, true},
		{tea.MouseButtonRight, engine.MouseRight, true},
		{tea.MouseButtonMiddle, engine.MouseMiddle, true},
		{tea.MouseButtonWheelUp, 0, false},
		{tea.MouseButtonNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := MapMouseButton(tt.button)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("MapMouseButton(%v) = %v, %v, expected %v, %v", tt.button, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
