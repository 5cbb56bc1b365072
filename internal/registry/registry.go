// Package registry provides a global registry for sprite and sound presets.
// Presets register themselves in init() functions, allowing the engine and
// the hosts to look them up by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

// Preset describes how a sprite looks and how large its collider is.
type Preset struct {
	// ID is the unique key used in config files and by the engine.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Width and Height are the collider size in world units at scale 1.0.
	Width, Height float32

	// Glyph is drawn in every terminal cell the sprite covers.
	Glyph rune

	// Directional presets are drawn with an arrow matching their rotation
	// in the centre cell.
	Directional bool

	// Color is used by both terminal and window hosts.
	Color core.Color
}

// SoundKind tells hosts whether a sound loops.
type SoundKind int

const (
	SoundEffect SoundKind = iota
	SoundMusic
)

// Sound describes a synthesized sound preset.
// Hosts with audio output render Notes as square-ish tones of NoteLength each.
type Sound struct {
	ID         string
	Title      string
	Kind       SoundKind
	Notes      []float64 // Frequencies in Hz, 0 is a rest
	NoteLength time.Duration
}

var (
	presets = make(map[string]Preset)
	sounds  = make(map[string]Sound)
	mu      sync.RWMutex
)

// RegisterPreset adds a sprite preset to the registry.
// Panics if a preset with the same ID is already registered.
func RegisterPreset(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// LookupPreset returns the preset registered under id.
func LookupPreset(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// PresetExists checks if a sprite preset with the given ID is registered.
func PresetExists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// ListPresets returns all registered sprite presets, sorted by ID.
func ListPresets() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// RegisterSound adds a sound preset to the registry.
// Panics if a sound with the same ID is already registered.
func RegisterSound(s Sound) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sounds[s.ID]; exists {
		panic(fmt.Sprintf("registry: sound %q already registered", s.ID))
	}
	sounds[s.ID] = s
}

// LookupSound returns the sound registered under id.
func LookupSound(id string) (Sound, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sounds[id]
	if !ok {
		return Sound{}, fmt.Errorf("registry: unknown sound %q", id)
	}
	return s, nil
}

// SoundExists checks if a sound preset with the given ID is registered.
func SoundExists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sounds[id]
	return ok
}

// ListSounds returns all registered sound presets, sorted by ID.
func ListSounds() []Sound {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Sound, 0, len(sounds))
	for _, s := range sounds {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
