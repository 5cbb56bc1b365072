package registry

import (
	"testing"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	for _, id := range []string{PresetRacingCarBlue, PresetRacingCarYellow, PresetRacingCarRed, PresetRollingBall, PresetBarrier} {
		if !PresetExists(id) {
			t.Errorf("PresetExists(%q) = false, expected true", id)
		}
	}
	for _, id := range []string{SoundMinimize1, SoundConfirm1, SoundClassy8Bit} {
		if !SoundExists(id) {
			t.Errorf("SoundExists(%q) = false, expected true", id)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset(PresetRacingCarBlue)
	if err != nil {
		t.Fatalf("LookupPreset() failed: %v", err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		t.Errorf("Collider size should be positive, got %vx%v", p.Width, p.Height)
	}

	if _, err := LookupPreset("does_not_exist"); err == nil {
		t.Error("LookupPreset() should fail for unknown preset")
	}
}

func TestLookupSound(t *testing.T) {
	s, err := LookupSound(SoundClassy8Bit)
	if err != nil {
		t.Fatalf("LookupSound() failed: %v", err)
	}
	if s.Kind != SoundMusic {
		t.Errorf("Kind = %v, expected SoundMusic", s.Kind)
	}

	if _, err := LookupSound("nope"); err == nil {
		t.Error("LookupSound() should fail for unknown sound")
	}
}

func TestListPresetsSorted(t *testing.T) {
	list := ListPresets()
	if len(list) < 5 {
		t.Fatalf("Expected at least 5 presets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("ListPresets() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	sounds := ListSounds()
	for i := 1; i < len(sounds); i++ {
		if sounds[i-1].ID >= sounds[i].ID {
			t.Errorf("ListSounds() not sorted: %q before %q", sounds[i-1].ID, sounds[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterPreset() should panic on duplicate ID")
		}
	}()
	RegisterPreset(Preset{ID: PresetRacingCarBlue})
}
