// Package config provides YAML-based configuration loading for the tutorial
// game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TutorialConfig contains all configuration for the tutorial game.
type TutorialConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	Targets  TargetsConfig  `yaml:"targets"`
	HUD      HUDConfig      `yaml:"hud"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WindowConfig holds startup window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // Window host only
	Height int    `yaml:"height"` // Window host only
}

// PlayerConfig defines the controllable sprite.
type PlayerConfig struct {
	Preset   string  `yaml:"preset"`
	Speed    float32 `yaml:"speed"`    // World units per second
	Rotation float32 `yaml:"rotation"` // Radians
	Scale    float32 `yaml:"scale"`
	Layer    float32 `yaml:"layer"`
}

// TargetsConfig defines the collectible sprites.
type TargetsConfig struct {
	Preset        string        `yaml:"preset"`
	LabelPrefix   string        `yaml:"label_prefix"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	Bounds        BoundsConfig  `yaml:"bounds"`
}

// BoundsConfig is the inclusive rectangle timer spawns land in.
type BoundsConfig struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinY float32 `yaml:"min_y"`
	MaxY float32 `yaml:"max_y"`
}

// HUDConfig positions the score texts relative to the window edges.
type HUDConfig struct {
	ScoreInsetX     float32 `yaml:"score_inset_x"`      // From the right edge
	HighScoreInsetX float32 `yaml:"high_score_inset_x"` // From the left edge
	InsetY          float32 `yaml:"inset_y"`            // From the top edge
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleFrequency float64 `yaml:"wobble_frequency"` // Radians per second
}

// AudioConfig selects sound presets and volumes.
type AudioConfig struct {
	Music       string  `yaml:"music"` // Empty disables music
	MusicVolume float32 `yaml:"music_volume"`
	CollectSfx  string  `yaml:"collect_sfx"`
	SfxVolume   float32 `yaml:"sfx_volume"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	CellWidth  float32       `yaml:"cell_width"`
	CellHeight float32       `yaml:"cell_height"`
	HoldWindow time.Duration `yaml:"hold_window"`
	Bell       bool          `yaml:"bell"`
}

// Validate checks the configuration for values the game cannot run with.
func (c TutorialConfig) Validate() error {
	if c.Window.Title == "" {
		return fmt.Errorf("%w: window.title must not be empty", ErrInvalid)
	}
	if !registry.PresetExists(c.Player.Preset) {
		return fmt.Errorf("%w: player.preset %q is not a known preset", ErrInvalid, c.Player.Preset)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player.speed must be positive, got %v", ErrInvalid, c.Player.Speed)
	}
	if c.Player.Scale <= 0 {
		return fmt.Errorf("%w: player.scale must be positive, got %v", ErrInvalid, c.Player.Scale)
	}
	if !registry.PresetExists(c.Targets.Preset) {
		return fmt.Errorf("%w: targets.preset %q is not a known preset", ErrInvalid, c.Targets.Preset)
	}
	if c.Targets.LabelPrefix == "" {
		return fmt.Errorf("%w: targets.label_prefix must not be empty", ErrInvalid)
	}
	if c.Targets.SpawnInterval <= 0 {
		return fmt.Errorf("%w: targets.spawn_interval must be positive, got %v", ErrInvalid, c.Targets.SpawnInterval)
	}
	b := c.Targets.Bounds
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("%w: targets.bounds are inverted", ErrInvalid)
	}
	if c.Audio.Music != "" && !registry.SoundExists(c.Audio.Music) {
		return fmt.Errorf("%w: audio.music %q is not a known sound", ErrInvalid, c.Audio.Music)
	}
	if c.Audio.CollectSfx != "" && !registry.SoundExists(c.Audio.CollectSfx) {
		return fmt.Errorf("%w: audio.collect_sfx %q is not a known sound", ErrInvalid, c.Audio.CollectSfx)
	}
	if !inUnitRange(c.Audio.MusicVolume) || !inUnitRange(c.Audio.SfxVolume) {
		return fmt.Errorf("%w: audio volumes must be within [0, 1]", ErrInvalid)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	}
	if c.Terminal.HoldWindow < 0 {
		return fmt.Errorf("%w: terminal.hold_window must not be negative", ErrInvalid)
	}
	return nil
}

func inUnitRange(v float32) bool {
	return v >= 0 && v <= 1
}
