package engine

import (
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

// Logic is a per-frame callback. It receives the engine and the game's own
// state by pointer and mutates them in place.
type Logic[S any] func(e *Engine, state *S)

// FrameInput is the snapshot a host builds for one frame.
type FrameInput struct {
	Delta            time.Duration
	WindowDimensions core.Vec2 // Zero keeps the previous size

	// Keys lists every key held this frame.
	Keys []KeyCode
	// JustPressedKeys lists keys the host saw go down since the last frame.
	// Keys that appear in Keys but were not held last frame count as just
	// pressed even if missing here.
	JustPressedKeys []KeyCode

	MouseButtons       []MouseButton
	JustPressedButtons []MouseButton

	// MouseLocation is nil when the pointer position is unknown.
	MouseLocation *core.Vec2
}

// Game runs logic functions against an engine and a state value.
type Game[S any] struct {
	engine     *Engine
	logics     []Logic[S]
	state      S
	collisions *collisionTracker
}

// NewGame creates a game around an engine and an initial state.
func NewGame[S any](e *Engine, initial S) *Game[S] {
	return &Game[S]{
		engine:     e,
		state:      initial,
		collisions: newCollisionTracker(),
	}
}

// AddLogic registers a logic function. Functions run in registration order.
func (g *Game[S]) AddLogic(l Logic[S]) {
	g.logics = append(g.logics, l)
}

// Engine returns the engine the game runs on.
func (g *Game[S]) Engine() *Engine {
	return g.engine
}

// State returns a pointer to the game state.
func (g *Game[S]) State() *S {
	return &g.state
}

// Frame runs one frame: it applies the input snapshot, queues collision
// events, and runs every logic function. It returns false once an exit has
// been requested; frames after that are ignored.
func (g *Game[S]) Frame(in FrameInput) bool {
	e := g.engine
	if e.ShouldExit {
		return false
	}

	e.beginFrame(in)
	e.CollisionEvents = append(e.CollisionEvents, g.collisions.detect(e.Sprites)...)

	for _, l := range g.logics {
		l(e, &g.state)
	}

	return !e.ShouldExit
}
