package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	want := DefaultTutorialConfig()

	if math.Abs(float64(cfg.Player.Rotation-want.Player.Rotation)) > 1e-5 {
		t.Errorf("Player.Rotation = %v, expected %v", cfg.Player.Rotation, want.Player.Rotation)
	}
	cfg.Player.Rotation = want.Player.Rotation

	if cfg != want {
		t.Errorf("embedded default differs from DefaultTutorialConfig():\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultsMatchTutorialConstants(t *testing.T) {
	cfg := DefaultTutorialConfig()

	if cfg.Player.Speed != 100 {
		t.Errorf("Player.Speed = %v, expected 100", cfg.Player.Speed)
	}
	if cfg.Targets.SpawnInterval != 2*time.Second {
		t.Errorf("SpawnInterval = %v, expected 2s", cfg.Targets.SpawnInterval)
	}
	b := cfg.Targets.Bounds
	if b.MinX != -550 || b.MaxX != 550 || b.MinY != -325 || b.MaxY != 325 {
		t.Errorf("Bounds = %+v, expected ±550 x ±325", b)
	}
	if cfg.Window.Title != "Tutorial!" {
		t.Errorf("Window.Title = %q, expected %q", cfg.Window.Title, "Tutorial!")
	}
}

func TestLoadTutorialCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  speed: 250\ntargets:\n  spawn_interval: 500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTutorial(path)
	if err != nil {
		t.Fatalf("LoadTutorial() failed: %v", err)
	}

	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, expected 250", cfg.Player.Speed)
	}
	if cfg.Targets.SpawnInterval != 500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 500ms", cfg.Targets.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Targets.LabelPrefix != "ferris" {
		t.Errorf("LabelPrefix = %q, expected default %q", cfg.Targets.LabelPrefix, "ferris")
	}
}

func TestLoadTutorialMissingCustomPath(t *testing.T) {
	_, err := LoadTutorial(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadTutorial() should fail for a missing custom file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadTutorialFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTutorial("")
	if err != nil {
		t.Fatalf("LoadTutorial() failed: %v", err)
	}
	if cfg.Player.Speed != 100 {
		t.Errorf("Player.Speed = %v, expected default 100", cfg.Player.Speed)
	}
}

func TestLoadTutorialLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "tutorial.yaml"), []byte("window:\n  title: Local\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTutorial("")
	if err != nil {
		t.Fatalf("LoadTutorial() failed: %v", err)
	}
	if cfg.Window.Title != "Local" {
		t.Errorf("Window.Title = %q, expected %q", cfg.Window.Title, "Local")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TutorialConfig)
	}{
		{"empty title", func(c *TutorialConfig) { c.Window.Title = "" }},
		{"unknown player preset", func(c *TutorialConfig) { c.Player.Preset = "spaceship" }},
		{"zero speed", func(c *TutorialConfig) { c.Player.Speed = 0 }},
		{"negative scale", func(c *TutorialConfig) { c.Player.Scale = -1 }},
		{"unknown target preset", func(c *TutorialConfig) { c.Targets.Preset = "" }},
		{"empty label prefix", func(c *TutorialConfig) { c.Targets.LabelPrefix = "" }},
		{"zero interval", func(c *TutorialConfig) { c.Targets.SpawnInterval = 0 }},
		{"inverted x bounds", func(c *TutorialConfig) { c.Targets.Bounds.MinX = 600 }},
		{"inverted y bounds", func(c *TutorialConfig) { c.Targets.Bounds.MaxY = -400 }},
		{"unknown music", func(c *TutorialConfig) { c.Audio.Music = "polka" }},
		{"unknown sfx", func(c *TutorialConfig) { c.Audio.CollectSfx = "boing" }},
		{"loud sfx", func(c *TutorialConfig) { c.Audio.SfxVolume = 1.5 }},
		{"zero cell width", func(c *TutorialConfig) { c.Terminal.CellWidth = 0 }},
		{"negative hold window", func(c *TutorialConfig) { c.Terminal.HoldWindow = -time.Millisecond }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTutorialConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultTutorialConfig().Validate(); err != nil {
			t.Errorf("Validate() on defaults failed: %v", err)
		}
	})

	t.Run("music may be disabled", func(t *testing.T) {
		cfg := DefaultTutorialConfig()
		cfg.Audio.Music = ""
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() failed: %v", err)
		}
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.sprite-tutorial/runs.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".sprite-tutorial", "runs.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	got, _ = ExpandHome("/abs/path.db")
	if got != "/abs/path.db" {
		t.Errorf("ExpandHome() should leave absolute paths alone, got %q", got)
	}
}
