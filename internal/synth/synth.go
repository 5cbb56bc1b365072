// Package synth renders registry sound presets into PCM for hosts that have
// an audio device.
package synth

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

// Amplitude is the peak level of a tone, relative to full scale.
const Amplitude = 0.25

// fadeFraction is the share of each note spent in its linear attack and release.
const fadeFraction = 0.1

// BytesPerFrame is the size of one stereo 16-bit sample frame.
const BytesPerFrame = 4

// Render returns the sound as signed 16-bit little-endian stereo PCM.
// Each note is a square wave lasting NoteLength; a zero frequency is silence.
func Render(s registry.Sound, sampleRate int) []byte {
	perNote := NoteFrames(s, sampleRate)
	buf := make([]byte, 0, perNote*len(s.Notes)*BytesPerFrame)

	fade := max(int(float64(perNote)*fadeFraction), 1)
	for _, freq := range s.Notes {
		for i := range perNote {
			v := int16(0)
			if freq > 0 {
				v = int16(sample(freq, i, sampleRate) * envelope(i, perNote, fade) * Amplitude * math.MaxInt16)
			}
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}

// NoteFrames returns the number of frames a single note of s lasts.
func NoteFrames(s registry.Sound, sampleRate int) int {
	return int(s.NoteLength.Seconds() * float64(sampleRate))
}

// sample returns the square wave value in [-1, 1] at frame i.
func sample(freq float64, i, sampleRate int) float64 {
	phase := math.Mod(freq*float64(i)/float64(sampleRate), 1)
	if phase < 0.5 {
		return 1
	}
	return -1
}

// envelope ramps the first and last fade frames of a note.
func envelope(i, n, fade int) float64 {
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-1-i) / float64(fade)
	}
	return 1
}
