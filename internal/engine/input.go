package engine

import "github.com/vovakirdan/sprite-tutorial/internal/core"

// KeyCode identifies a physical keyboard key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyQ
	KeyR
	KeyS
	KeyW
	KeySpace
	KeyEscape
	KeyEnter
)

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyQ:
		return "Q"
	case KeyR:
		return "R"
	case KeyS:
		return "S"
	case KeyW:
		return "W"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// KeyboardState is the keyboard snapshot for the current frame.
type KeyboardState struct {
	pressed      map[KeyCode]bool
	justPressed  map[KeyCode]bool
	justReleased map[KeyCode]bool
}

func newKeyboardState() KeyboardState {
	return KeyboardState{
		pressed:      make(map[KeyCode]bool),
		justPressed:  make(map[KeyCode]bool),
		justReleased: make(map[KeyCode]bool),
	}
}

// apply replaces the held set and derives edges. A key is just pressed if the
// host reported the edge or if it is held now but was not held last frame.
func (k *KeyboardState) apply(held, justPressed []KeyCode) {
	now := make(map[KeyCode]bool, len(held))
	for _, key := range held {
		now[key] = true
	}

	if k.justPressed == nil {
		*k = newKeyboardState()
	}
	clear(k.justPressed)
	clear(k.justReleased)
	for key := range now {
		if !k.pressed[key] {
			k.justPressed[key] = true
		}
	}
	for _, key := range justPressed {
		k.justPressed[key] = true
	}
	for key := range k.pressed {
		if !now[key] {
			k.justReleased[key] = true
		}
	}
	k.pressed = now
}

// Pressed returns true while the key is held.
func (k KeyboardState) Pressed(key KeyCode) bool {
	return k.pressed[key]
}

// PressedAny returns true if any of the keys is held.
func (k KeyboardState) PressedAny(keys ...KeyCode) bool {
	for _, key := range keys {
		if k.pressed[key] {
			return true
		}
	}
	return false
}

// JustPressed returns true only on the frame the key went down.
func (k KeyboardState) JustPressed(key KeyCode) bool {
	return k.justPressed[key]
}

// JustPressedAny returns true if any of the keys went down this frame.
func (k KeyboardState) JustPressedAny(keys ...KeyCode) bool {
	for _, key := range keys {
		if k.justPressed[key] {
			return true
		}
	}
	return false
}

// JustReleased returns true only on the frame the key went up.
func (k KeyboardState) JustReleased(key KeyCode) bool {
	return k.justReleased[key]
}

// MouseState is the mouse snapshot for the current frame.
type MouseState struct {
	pressed     map[MouseButton]bool
	justPressed map[MouseButton]bool
	location    core.Vec2
	hasLocation bool
}

func newMouseState() MouseState {
	return MouseState{
		pressed:     make(map[MouseButton]bool),
		justPressed: make(map[MouseButton]bool),
	}
}

func (m *MouseState) apply(held, justPressed []MouseButton, location *core.Vec2) {
	now := make(map[MouseButton]bool, len(held))
	for _, b := range held {
		now[b] = true
	}

	if m.justPressed == nil {
		m.justPressed = make(map[MouseButton]bool)
	}
	clear(m.justPressed)
	for b := range now {
		if !m.pressed[b] {
			m.justPressed[b] = true
		}
	}
	for _, b := range justPressed {
		m.justPressed[b] = true
	}
	m.pressed = now

	if location != nil {
		m.location = *location
		m.hasLocation = true
	} else {
		m.hasLocation = false
	}
}

// Pressed returns true while the button is held.
func (m MouseState) Pressed(b MouseButton) bool {
	return m.pressed[b]
}

// JustPressed returns true only on the frame the button went down.
func (m MouseState) JustPressed(b MouseButton) bool {
	return m.justPressed[b]
}

// Location returns the pointer position in world units. The second value is
// false when the pointer is outside the window or unknown to the host.
func (m MouseState) Location() (core.Vec2, bool) {
	return m.location, m.hasLocation
}
