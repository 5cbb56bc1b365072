package config

import (
	_ "embed"
	"math"
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

//go:embed defaults/tutorial.yaml
var defaultTutorialYAML []byte

// DefaultTutorialConfig returns the default tutorial configuration.
func DefaultTutorialConfig() TutorialConfig {
	return TutorialConfig{
		Window: WindowConfig{
			Title:  "Tutorial!",
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Preset:   registry.PresetRacingCarBlue,
			Speed:    100,
			Rotation: 5 * math.Pi / 4, // South-west
			Scale:    1.0,
			Layer:    0,
		},
		Targets: TargetsConfig{
			Preset:        registry.PresetRacingCarYellow,
			LabelPrefix:   "ferris",
			SpawnInterval: 2 * time.Second,
			Bounds: BoundsConfig{
				MinX: -550,
				MaxX: 550,
				MinY: -325,
				MaxY: 325,
			},
		},
		HUD: HUDConfig{
			ScoreInsetX:     80,
			HighScoreInsetX: 110,
			InsetY:          30,
			WobbleAmplitude: 5,
			WobbleFrequency: 3,
		},
		Audio: AudioConfig{
			Music:       registry.SoundClassy8Bit,
			MusicVolume: 0.1,
			CollectSfx:  registry.SoundMinimize1,
			SfxVolume:   0.3,
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 30,
			HoldWindow: 150 * time.Millisecond,
			Bell:       false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTutorialYAML
}
