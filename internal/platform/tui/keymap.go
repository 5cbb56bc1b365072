package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

// KeyMap describes the play view controls for the help bar.
// Movement, reset and quit are forwarded to the game as engine key codes;
// the remaining bindings are handled by the host itself.
type KeyMap struct {
	Move       key.Binding
	Spawn      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Spawn, k.Reset, k.Quit, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Spawn, k.Reset},
		{k.Quit, k.ForceQuit, k.Screenshot},
	}
}

// DefaultKeyMap returns the play view bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "drive"),
		),
		Spawn: key.NewBinding(
			key.WithKeys("click"),
			key.WithHelp("click", "spawn car"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// teaKeys maps Bubble Tea key strings to engine key codes.
var teaKeys = map[string]engine.KeyCode{
	"up":    engine.KeyUp,
	"down":  engine.KeyDown,
	"left":  engine.KeyLeft,
	"right": engine.KeyRight,
	"w":     engine.KeyW,
	"a":     engine.KeyA,
	"s":     engine.KeyS,
	"d":     engine.KeyD,
	"q":     engine.KeyQ,
	"r":     engine.KeyR,
	" ":     engine.KeySpace,
	"space": engine.KeySpace,
	"esc":   engine.KeyEscape,
	"enter": engine.KeyEnter,
}

// MapKey translates a key message to an engine key code.
// Shifted letters map to the same code as their lowercase form.
func MapKey(msg tea.KeyMsg) (engine.KeyCode, bool) {
	s := msg.String()
	if len(s) == 1 {
		s = strings.ToLower(s)
	}
	k, ok := teaKeys[s]
	return k, ok
}

// MapMouseButton translates a Bubble Tea mouse button to an engine button.
func MapMouseButton(b tea.MouseButton) (engine.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return engine.MouseLeft, true
	case tea.MouseButtonRight:
		return engine.MouseRight, true
	case tea.MouseButtonMiddle:
		return engine.MouseMiddle, true
	}
	return 0, false
}
