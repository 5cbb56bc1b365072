// Package tutorial implements the sprite tutorial: drive a car around, collect
// targets that appear on a timer or where you click, and chase a high score.
package tutorial

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
)

// Well-known labels created by Setup.
const (
	PlayerLabel    = "player"
	ScoreLabel     = "score"
	HighScoreLabel = "high_score"
)

// Key bindings.
var (
	QuitKey  = engine.KeyQ
	ResetKey = engine.KeyR

	UpKeys    = []engine.KeyCode{engine.KeyUp, engine.KeyW}
	DownKeys  = []engine.KeyCode{engine.KeyDown, engine.KeyS}
	RightKeys = []engine.KeyCode{engine.KeyRight, engine.KeyD}
	LeftKeys  = []engine.KeyCode{engine.KeyLeft, engine.KeyA}
)

// Setup populates a fresh engine with the player, the HUD texts and the
// background music. It must run before the first frame.
func Setup(e *engine.Engine, cfg config.TutorialConfig) {
	e.WindowTitle = cfg.Window.Title

	if cfg.Audio.Music != "" {
		e.Audio.PlayMusic(cfg.Audio.Music, cfg.Audio.MusicVolume)
	}

	// Origin is the middle of the window
	player := e.AddSprite(PlayerLabel, cfg.Player.Preset)
	player.Translation = core.Vec2{}
	player.Rotation = cfg.Player.Rotation
	player.Scale = cfg.Player.Scale
	player.Layer = cfg.Player.Layer
	player.Collision = true

	score := e.AddText(ScoreLabel, scoreText(0))
	score.Translation = core.Vec2{X: 520, Y: 320}

	highScore := e.AddText(HighScoreLabel, highScoreText(0))
	highScore.Translation = core.Vec2{X: -520, Y: 320}
}

// New creates a game with Setup applied and the frame logic registered.
func New(e *engine.Engine, cfg config.TutorialConfig) *engine.Game[GameState] {
	Setup(e, cfg)
	g := engine.NewGame(e, NewGameState(cfg))
	g.AddLogic(Logic(cfg))
	return g
}

// Logic returns the per-frame update function.
func Logic(cfg config.TutorialConfig) engine.Logic[GameState] {
	return func(e *engine.Engine, s *GameState) {
		if e.Keyboard.JustPressed(QuitKey) {
			e.ShouldExit = true
		}

		positionHUD(e, cfg.HUD)
		handleCollisions(e, s, cfg.Audio)
		movePlayer(e, cfg.Player.Speed)

		if e.Mouse.JustPressed(engine.MouseLeft) {
			if loc, ok := e.Mouse.Location(); ok {
				spawnTarget(e, s, cfg.Targets, loc, "mouse")
			}
		}

		if s.SpawnTimer.Tick(e.Delta).JustFinished() {
			spawnTarget(e, s, cfg.Targets, randomPosition(e, cfg.Targets.Bounds), "timer")
		}

		if e.Keyboard.JustPressed(ResetKey) {
			s.Score = 0
			s.Resets++
			e.MustText(ScoreLabel).Value = scoreText(0)
			e.Log.Debug("score reset", "high_score", s.HighScore)
		}
	}
}

// positionHUD keeps the texts near the top edge of the current window. The
// score bobs up and down a little.
func positionHUD(e *engine.Engine, hud config.HUDConfig) {
	offset := float32(math.Cos(e.TimeSinceStartupF64()*hud.WobbleFrequency) * hud.WobbleAmplitude)
	w, h := e.WindowDimensions.X, e.WindowDimensions.Y

	score := e.MustText(ScoreLabel)
	score.Translation.X = w/2 - hud.ScoreInsetX
	score.Translation.Y = h/2 - hud.InsetY + offset

	highScore := e.MustText(HighScoreLabel)
	highScore.Translation.X = -w/2 + hud.HighScoreInsetX
	highScore.Translation.Y = h/2 - hud.InsetY
}

// handleCollisions drains the queue and scores every Begin event the player
// takes part in. A pair made of the player twice removes nothing but still
// scores.
func handleCollisions(e *engine.Engine, s *GameState, audio config.AudioConfig) {
	for _, event := range e.DrainCollisionEvents() {
		if event.State != engine.CollisionBegin || !event.Pair.Contains(PlayerLabel) {
			continue
		}

		for _, label := range event.Pair {
			if label != PlayerLabel {
				delete(e.Sprites, label)
			}
		}
		s.TargetsCollected++

		s.Score++
		e.MustText(ScoreLabel).Value = scoreText(s.Score)

		if s.Score > s.HighScore {
			s.HighScore = s.Score
			e.MustText(HighScoreLabel).Value = highScoreText(s.HighScore)
		}

		if audio.CollectSfx != "" {
			e.Audio.PlaySfx(audio.CollectSfx, audio.SfxVolume)
		}
		e.Log.Debug("target collected", "pair", event.Pair, "score", s.Score, "high_score", s.HighScore)
	}
}

// movePlayer applies every held direction. Opposing keys cancel out.
func movePlayer(e *engine.Engine, speed float32) {
	player := e.MustSprite(PlayerLabel)
	step := speed * e.DeltaF32

	if e.Keyboard.PressedAny(UpKeys...) {
		player.Translation.Y += step
	}
	if e.Keyboard.PressedAny(DownKeys...) {
		player.Translation.Y -= step
	}
	if e.Keyboard.PressedAny(RightKeys...) {
		player.Translation.X += step
	}
	if e.Keyboard.PressedAny(LeftKeys...) {
		player.Translation.X -= step
	}
}

// spawnTarget adds a collidable target at pos under the next free label.
func spawnTarget(e *engine.Engine, s *GameState, targets config.TargetsConfig, pos core.Vec2, source string) {
	label := fmt.Sprintf("%s%d", targets.LabelPrefix, s.NextSpawnIndex)
	s.NextSpawnIndex++
	s.TargetsSpawned++

	target := e.AddSprite(label, targets.Preset)
	target.Translation = pos
	target.Collision = true

	e.Log.Debug("target spawned", "label", label, "source", source, "x", pos.X, "y", pos.Y)
}

// randomPosition picks a uniform point inside bounds.
func randomPosition(e *engine.Engine, b config.BoundsConfig) core.Vec2 {
	return core.Vec2{
		X: b.MinX + e.Rand.Float32()*(b.MaxX-b.MinX),
		Y: b.MinY + e.Rand.Float32()*(b.MaxY-b.MinY),
	}
}

func scoreText(score uint32) string {
	return fmt.Sprintf("Score: %d", score)
}

func highScoreText(highScore uint32) string {
	return fmt.Sprintf("High Score: %d", highScore)
}
