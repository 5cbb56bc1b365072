// Package engine is the small 2D engine the tutorial game runs inside.
//
// The engine owns the sprite and text tables, the collision-event queue, the
// per-frame keyboard and mouse snapshots, timing and the audio request queue.
// Game code registers Logic functions on a Game; hosts (terminal, window, SSH)
// build a FrameInput from their own event sources and call Game.Frame once per
// rendered frame, then draw the tables.
//
// The package imports no UI toolkit so that game logic stays pure and testable.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

// Engine is the mutable world handed to game logic every frame.
type Engine struct {
	// Sprites maps labels to sprites. Logic may add, update and remove entries.
	Sprites map[string]*Sprite

	// Texts maps labels to text overlays.
	Texts map[string]*Text

	// CollisionEvents accumulates until logic drains it.
	CollisionEvents []CollisionEvent

	Keyboard KeyboardState
	Mouse    MouseState

	// Delta is the time since the previous frame.
	Delta    time.Duration
	DeltaF32 float32

	// TimeSinceStartup is the sum of all frame deltas.
	TimeSinceStartup time.Duration

	// FrameCount is the number of frames run so far.
	FrameCount uint64

	// WindowDimensions is the current window size in world units.
	WindowDimensions core.Vec2

	// WindowTitle is read by hosts that have a title bar.
	WindowTitle string

	// ShouldExit asks the host loop to stop after the current frame.
	ShouldExit bool

	Audio *AudioManager
	Rand  *rand.Rand
	Log   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.Log = l
	}
}

// WithSeed seeds the engine RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithWindowDimensions sets the initial window size.
func WithWindowDimensions(dims core.Vec2) Option {
	return func(e *Engine) {
		e.WindowDimensions = dims
	}
}

// New creates an empty engine. Without options it logs nowhere, uses a
// time-seeded RNG and a 1280x720 window.
func New(opts ...Option) *Engine {
	e := &Engine{
		Sprites:          make(map[string]*Sprite),
		Texts:            make(map[string]*Text),
		Keyboard:         newKeyboardState(),
		Mouse:            newMouseState(),
		WindowDimensions: core.Vec2{X: 1280, Y: 720},
		Audio:            NewAudioManager(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.Log == nil {
		e.Log = log.New(io.Discard)
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// AddSprite creates a sprite from a registered preset and stores it under
// label, replacing any sprite with the same label. The preset must exist.
func (e *Engine) AddSprite(label, presetID string) *Sprite {
	p, err := registry.LookupPreset(presetID)
	if err != nil {
		panic(fmt.Sprintf("engine: cannot add sprite %q: %v", label, err))
	}
	s := &Sprite{
		Label:  label,
		Preset: p.ID,
		Scale:  1.0,
		size:   core.Vec2{X: p.Width, Y: p.Height},
	}
	e.Sprites[label] = s
	return s
}

// AddText creates a text overlay stored under label, replacing any text with
// the same label.
func (e *Engine) AddText(label, value string) *Text {
	t := &Text{
		Label:    label,
		Value:    value,
		FontSize: 30,
		Layer:    900,
	}
	e.Texts[label] = t
	return t
}

// MustSprite returns the sprite stored under label.
// A missing sprite is a programming error and panics.
func (e *Engine) MustSprite(label string) *Sprite {
	s, ok := e.Sprites[label]
	if !ok {
		panic(fmt.Sprintf("engine: sprite %q does not exist", label))
	}
	return s
}

// MustText returns the text stored under label.
// A missing text is a programming error and panics.
func (e *Engine) MustText(label string) *Text {
	t, ok := e.Texts[label]
	if !ok {
		panic(fmt.Sprintf("engine: text %q does not exist", label))
	}
	return t
}

// DrainCollisionEvents returns all queued collision events and empties the queue.
func (e *Engine) DrainCollisionEvents() []CollisionEvent {
	events := e.CollisionEvents
	e.CollisionEvents = nil
	return events
}

// TimeSinceStartupF64 returns TimeSinceStartup in seconds.
func (e *Engine) TimeSinceStartupF64() float64 {
	return e.TimeSinceStartup.Seconds()
}

// beginFrame applies a host snapshot before logic runs.
func (e *Engine) beginFrame(in FrameInput) {
	e.Delta = in.Delta
	e.DeltaF32 = float32(in.Delta.Seconds())
	e.TimeSinceStartup += in.Delta
	e.FrameCount++
	if in.WindowDimensions.X > 0 && in.WindowDimensions.Y > 0 {
		e.WindowDimensions = in.WindowDimensions
	}
	e.Keyboard.apply(in.Keys, in.JustPressedKeys)
	e.Mouse.apply(in.MouseButtons, in.JustPressedButtons, in.MouseLocation)
}
