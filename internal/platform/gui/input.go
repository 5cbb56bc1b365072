package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

// keyBindings maps engine key codes to physical keys.
var keyBindings = map[engine.KeyCode]ebiten.Key{
	engine.KeyUp:     ebiten.KeyArrowUp,
	engine.KeyDown:   ebiten.KeyArrowDown,
	engine.KeyLeft:   ebiten.KeyArrowLeft,
	engine.KeyRight:  ebiten.KeyArrowRight,
	engine.KeyA:      ebiten.KeyA,
	engine.KeyD:      ebiten.KeyD,
	engine.KeyQ:      ebiten.KeyQ,
	engine.KeyR:      ebiten.KeyR,
	engine.KeyS:      ebiten.KeyS,
	engine.KeyW:      ebiten.KeyW,
	engine.KeySpace:  ebiten.KeySpace,
	engine.KeyEscape: ebiten.KeyEscape,
	engine.KeyEnter:  ebiten.KeyEnter,
}

var buttonBindings = map[engine.MouseButton]ebiten.MouseButton{
	engine.MouseLeft:   ebiten.MouseButtonLeft,
	engine.MouseRight:  ebiten.MouseButtonRight,
	engine.MouseMiddle: ebiten.MouseButtonMiddle,
}

// pollInput reads the current keyboard and mouse state into a frame snapshot.
func pollInput(delta time.Duration, dims core.Vec2) engine.FrameInput {
	in := engine.FrameInput{
		Delta:            delta,
		WindowDimensions: dims,
	}

	for code, k := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			in.Keys = append(in.Keys, code)
		}
		if inpututil.IsKeyJustPressed(k) {
			in.JustPressedKeys = append(in.JustPressedKeys, code)
		}
	}

	for b, eb := range buttonBindings {
		if ebiten.IsMouseButtonPressed(eb) {
			in.MouseButtons = append(in.MouseButtons, b)
		}
		if inpututil.IsMouseButtonJustPressed(eb) {
			in.JustPressedButtons = append(in.JustPressedButtons, b)
		}
	}

	cx, cy := ebiten.CursorPosition()
	if px, py := float32(cx), float32(cy); core.InWindow(px, py, dims) {
		loc := core.WindowToWorld(px, py, dims)
		in.MouseLocation = &loc
	}

	return in
}
