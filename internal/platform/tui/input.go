package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

// inputTracker turns the terminal's key and mouse messages into per-frame
// engine snapshots.
//
// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held until hold has passed since its last event. An event for a
// key that is not currently held is a fresh press.
type inputTracker struct {
	hold     time.Duration
	lastSeen map[engine.KeyCode]time.Time
	pressed  []engine.KeyCode

	buttons        map[engine.MouseButton]bool
	buttonsPressed []engine.MouseButton
	mouse          *core.Vec2
}

func newInputTracker(hold time.Duration) *inputTracker {
	return &inputTracker{
		hold:     hold,
		lastSeen: make(map[engine.KeyCode]time.Time),
		buttons:  make(map[engine.MouseButton]bool),
	}
}

// held reports whether k counts as held at now.
func (t *inputTracker) held(k engine.KeyCode, now time.Time) bool {
	seen, ok := t.lastSeen[k]
	return ok && now.Sub(seen) <= t.hold
}

// key records a key event.
func (t *inputTracker) key(k engine.KeyCode, now time.Time) {
	if !t.held(k, now) {
		t.pressed = append(t.pressed, k)
	}
	t.lastSeen[k] = now
}

// mouseEvent records a mouse message. Events outside the viewport only move
// the pointer out of the world.
func (t *inputTracker) mouseEvent(msg tea.MouseMsg, vp Viewport) {
	if vp.InBounds(msg.X, msg.Y) {
		loc := vp.CellToWorld(msg.X, msg.Y)
		t.mouse = &loc
	} else {
		t.mouse = nil
	}

	b, ok := MapMouseButton(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return
		}
		if !t.buttons[b] && t.mouse != nil {
			t.buttonsPressed = append(t.buttonsPressed, b)
		}
		t.buttons[b] = true
	case tea.MouseActionRelease:
		// Some terminals do not say which button was released
		if !ok {
			clear(t.buttons)
			return
		}
		delete(t.buttons, b)
	}
}

// frame builds the snapshot for one frame and clears the edges.
func (t *inputTracker) frame(now time.Time, delta time.Duration, dims core.Vec2) engine.FrameInput {
	in := engine.FrameInput{
		Delta:            delta,
		WindowDimensions: dims,
		JustPressedKeys:  t.pressed,
	}

	for k := range t.lastSeen {
		if t.held(k, now) {
			in.Keys = append(in.Keys, k)
		} else {
			delete(t.lastSeen, k)
		}
	}
	slices.Sort(in.Keys)

	for b := range t.buttons {
		in.MouseButtons = append(in.MouseButtons, b)
	}
	slices.Sort(in.MouseButtons)
	in.JustPressedButtons = t.buttonsPressed

	if t.mouse != nil {
		loc := *t.mouse
		in.MouseLocation = &loc
	}

	t.pressed = nil
	t.buttonsPressed = nil
	return in
}
