package registry

import (
	"time"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

// Built-in preset IDs.
const (
	PresetRacingCarBlue   = "racing_car_blue"
	PresetRacingCarYellow = "racing_car_yellow"
	PresetRacingCarRed    = "racing_car_red"
	PresetRollingBall     = "rolling_ball"
	PresetBarrier         = "barrier"

	SoundMinimize1  = "minimize1"
	SoundConfirm1   = "confirm1"
	SoundClassy8Bit = "classy_8bit"
)

func init() {
	RegisterPreset(Preset{
		ID: PresetRacingCarBlue, Title: "Racing Car (Blue)",
		Width: 64, Height: 30, Glyph: '█', Directional: true, Color: core.ColorBrightBlue,
	})
	RegisterPreset(Preset{
		ID: PresetRacingCarYellow, Title: "Racing Car (Yellow)",
		Width: 64, Height: 30, Glyph: '▓', Color: core.ColorBrightYellow,
	})
	RegisterPreset(Preset{
		ID: PresetRacingCarRed, Title: "Racing Car (Red)",
		Width: 64, Height: 30, Glyph: '▓', Color: core.ColorBrightRed,
	})
	RegisterPreset(Preset{
		ID: PresetRollingBall, Title: "Rolling Ball",
		Width: 32, Height: 30, Glyph: '●', Color: core.ColorBrightGreen,
	})
	RegisterPreset(Preset{
		ID: PresetBarrier, Title: "Barrier",
		Width: 96, Height: 30, Glyph: '▒', Color: core.ColorGray,
	})

	RegisterSound(Sound{
		ID: SoundMinimize1, Title: "Minimize 1", Kind: SoundEffect,
		Notes: []float64{880, 660}, NoteLength: 60 * time.Millisecond,
	})
	RegisterSound(Sound{
		ID: SoundConfirm1, Title: "Confirm 1", Kind: SoundEffect,
		Notes: []float64{523.25, 783.99}, NoteLength: 70 * time.Millisecond,
	})
	RegisterSound(Sound{
		ID: SoundClassy8Bit, Title: "Classy 8-Bit", Kind: SoundMusic,
		Notes: []float64{
			261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 0, 0,
			220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 0, 0,
			174.61, 220.00, 261.63, 349.23, 261.63, 220.00, 0, 0,
			196.00, 246.94, 293.66, 392.00, 293.66, 246.94, 0, 0,
		},
		NoteLength: 180 * time.Millisecond,
	})
}
