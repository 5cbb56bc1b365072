package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

func TestKeyboardEdges(t *testing.T) {
	k := newKeyboardState()

	k.apply([]KeyCode{KeyW}, nil)
	assert.True(t, k.Pressed(KeyW))
	assert.True(t, k.JustPressed(KeyW))

	k.apply([]KeyCode{KeyW}, nil)
	assert.True(t, k.Pressed(KeyW))
	assert.False(t, k.JustPressed(KeyW), "held key is not just pressed on later frames")

	k.apply(nil, nil)
	assert.False(t, k.Pressed(KeyW))
	assert.True(t, k.JustReleased(KeyW))
}

func TestKeyboardHostReportedEdge(t *testing.T) {
	k := newKeyboardState()

	// A tap that went down and up between two frames.
	k.apply(nil, []KeyCode{KeyQ})
	assert.True(t, k.JustPressed(KeyQ))
	assert.False(t, k.Pressed(KeyQ))

	k.apply(nil, nil)
	assert.False(t, k.JustPressed(KeyQ))
}

func TestKeyboardAny(t *testing.T) {
	k := newKeyboardState()
	k.apply([]KeyCode{KeyUp}, []KeyCode{KeyR})

	assert.True(t, k.PressedAny(KeyW, KeyUp))
	assert.False(t, k.PressedAny(KeyS, KeyDown))
	assert.True(t, k.JustPressedAny(KeyR, KeyQ))
	assert.False(t, k.JustPressedAny(KeyQ))
}

func TestZeroKeyboardStateApply(t *testing.T) {
	var k KeyboardState
	assert.NotPanics(t, func() { k.apply([]KeyCode{KeyA}, []KeyCode{KeyA}) })
	assert.True(t, k.JustPressed(KeyA))
}

func TestMouseState(t *testing.T) {
	m := newMouseState()

	loc := core.Vec2{X: 12, Y: -40}
	m.apply(nil, []MouseButton{MouseLeft}, &loc)
	assert.True(t, m.JustPressed(MouseLeft))
	got, ok := m.Location()
	assert.True(t, ok)
	assert.Equal(t, loc, got)

	m.apply(nil, nil, nil)
	assert.False(t, m.JustPressed(MouseLeft))
	_, ok = m.Location()
	assert.False(t, ok)

	m.apply([]MouseButton{MouseRight}, nil, nil)
	assert.True(t, m.Pressed(MouseRight))
	assert.True(t, m.JustPressed(MouseRight))
}

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "Left", KeyLeft.String())
	assert.Equal(t, "Unknown", KeyCode(999).String())
}
