package synth

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

const rate = 48000

func frames(t *testing.T, pcm []byte) [][2]int16 {
	t.Helper()
	require.Zero(t, len(pcm)%BytesPerFrame)
	out := make([][2]int16, len(pcm)/BytesPerFrame)
	for i := range out {
		out[i][0] = int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		out[i][1] = int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
	}
	return out
}

func TestRenderLength(t *testing.T) {
	s := registry.Sound{Notes: []float64{440, 0, 880}, NoteLength: 100 * time.Millisecond}

	pcm := Render(s, rate)
	assert.Equal(t, 4800, NoteFrames(s, rate))
	assert.Len(t, pcm, 3*4800*BytesPerFrame)
}

func TestRenderRestIsSilent(t *testing.T) {
	s := registry.Sound{Notes: []float64{440, 0}, NoteLength: 50 * time.Millisecond}
	f := frames(t, Render(s, rate))
	n := NoteFrames(s, rate)

	loud := false
	for _, fr := range f[:n] {
		if fr[0] != 0 {
			loud = true
		}
	}
	assert.True(t, loud, "tone should not be silent")

	for i, fr := range f[n:] {
		require.Equal(t, [2]int16{0, 0}, fr, "rest frame %d", i)
	}
}

func TestRenderStereoAndBounded(t *testing.T) {
	s, err := registry.LookupSound(registry.SoundMinimize1)
	require.NoError(t, err)

	amp := float64(Amplitude)
	limit := int16(amp*math.MaxInt16) + 1
	for _, fr := range frames(t, Render(s, rate)) {
		assert.Equal(t, fr[0], fr[1])
		assert.LessOrEqual(t, fr[0], limit)
		assert.GreaterOrEqual(t, fr[0], -limit)
	}
}

func TestRenderNotesStartAndEndQuiet(t *testing.T) {
	s := registry.Sound{Notes: []float64{300}, NoteLength: 100 * time.Millisecond}
	f := frames(t, Render(s, rate))

	assert.Equal(t, int16(0), f[0][0])
	assert.Equal(t, int16(0), f[len(f)-1][0])
}

func TestBuiltinSoundsRender(t *testing.T) {
	for _, s := range registry.ListSounds() {
		t.Run(s.ID, func(t *testing.T) {
			assert.NotEmpty(t, Render(s, rate))
		})
	}
}
