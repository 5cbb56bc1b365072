package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

func TestAddSpriteDefaults(t *testing.T) {
	e := newTestEngine()
	s := e.AddSprite("player", registry.PresetRacingCarBlue)

	assert.Equal(t, "player", s.Label)
	assert.Equal(t, float32(1), s.Scale)
	assert.False(t, s.Collision)
	assert.Same(t, s, e.MustSprite("player"))
}

func TestAddSpriteUnknownPresetPanics(t *testing.T) {
	e := newTestEngine()
	assert.Panics(t, func() { e.AddSprite("x", "no_such_preset") })
}

func TestMustLookupsPanic(t *testing.T) {
	e := newTestEngine()
	assert.Panics(t, func() { e.MustSprite("player") })
	assert.Panics(t, func() { e.MustText("score") })

	e.AddText("score", "Score: 0")
	assert.Equal(t, "Score: 0", e.MustText("score").Value)
}

func TestDrainCollisionEvents(t *testing.T) {
	e := newTestEngine()
	e.CollisionEvents = append(e.CollisionEvents, CollisionEvent{Pair: NewCollisionPair("a", "b")})

	assert.Len(t, e.DrainCollisionEvents(), 1)
	assert.Empty(t, e.CollisionEvents)
}

func TestHeading(t *testing.T) {
	s := &Sprite{}
	tests := []struct {
		rotation float32
		heading  int
	}{
		{RotationEast, 0},
		{RotationNorth, 2},
		{RotationSouthWest, 5},
		{RotationSouthEast, 7},
		{-RotationNorthEast, 7},
	}
	for _, tc := range tests {
		s.Rotation = tc.rotation
		assert.Equal(t, tc.heading, s.Heading(), "rotation %v", tc.rotation)
	}
}

type counterState struct {
	frames int
	order  []string
}

func TestGameFrameRunsLogicInOrder(t *testing.T) {
	e := newTestEngine()
	g := NewGame(e, counterState{})
	g.AddLogic(func(_ *Engine, s *counterState) {
		s.frames++
		s.order = append(s.order, "first")
	})
	g.AddLogic(func(_ *Engine, s *counterState) {
		s.order = append(s.order, "second")
	})

	require.True(t, g.Frame(FrameInput{Delta: time.Second / 60}))
	assert.Equal(t, 1, g.State().frames)
	assert.Equal(t, []string{"first", "second"}, g.State().order)
	assert.Equal(t, uint64(1), e.FrameCount)
}

func TestGameFrameTiming(t *testing.T) {
	e := newTestEngine()
	g := NewGame(e, counterState{})

	g.Frame(FrameInput{Delta: 250 * time.Millisecond, WindowDimensions: core.Vec2{X: 800, Y: 600}})
	g.Frame(FrameInput{Delta: 250 * time.Millisecond})

	assert.Equal(t, 500*time.Millisecond, e.TimeSinceStartup)
	assert.InDelta(t, 0.5, e.TimeSinceStartupF64(), 1e-9)
	assert.InDelta(t, 0.25, e.DeltaF32, 1e-6)
	assert.Equal(t, core.Vec2{X: 800, Y: 600}, e.WindowDimensions, "zero dimensions keep the previous size")
}

func TestGameFrameStopsAfterExit(t *testing.T) {
	e := newTestEngine()
	g := NewGame(e, counterState{})
	g.AddLogic(func(e *Engine, s *counterState) {
		s.frames++
		if e.Keyboard.JustPressed(KeyQ) {
			e.ShouldExit = true
		}
	})

	assert.True(t, g.Frame(FrameInput{}))
	assert.False(t, g.Frame(FrameInput{JustPressedKeys: []KeyCode{KeyQ}}))
	assert.False(t, g.Frame(FrameInput{}))
	assert.Equal(t, 2, g.State().frames, "logic does not run after exit")
}

func TestGameFrameQueuesCollisions(t *testing.T) {
	e := newTestEngine()
	e.AddSprite("a", registry.PresetRollingBall).Collision = true
	e.AddSprite("b", registry.PresetRollingBall).Collision = true

	var seen []CollisionEvent
	g := NewGame(e, counterState{})
	g.AddLogic(func(e *Engine, _ *counterState) {
		seen = append(seen, e.DrainCollisionEvents()...)
	})

	g.Frame(FrameInput{})
	g.Frame(FrameInput{})
	require.Len(t, seen, 1)
	assert.Equal(t, CollisionBegin, seen[0].State)
}

func TestAudioManager(t *testing.T) {
	a := NewAudioManager()
	a.PlayMusic(registry.SoundClassy8Bit, 0.1)
	a.PlaySfx(registry.SoundMinimize1, 1.5)

	assert.True(t, a.MusicPlaying())
	track, vol := a.Music()
	assert.Equal(t, registry.SoundClassy8Bit, track)
	assert.InDelta(t, 0.1, vol, 1e-6)
	assert.Equal(t, 2, a.Pending())

	reqs := a.Drain()
	require.Len(t, reqs, 2)
	assert.Equal(t, AudioMusic, reqs[0].Kind)
	assert.Equal(t, AudioSfx, reqs[1].Kind)
	assert.Equal(t, float32(1), reqs[1].Volume, "volume is clamped")
	assert.Zero(t, a.Pending())

	a.StopMusic()
	a.StopMusic()
	assert.False(t, a.MusicPlaying())
	assert.Len(t, a.Drain(), 1)
}
