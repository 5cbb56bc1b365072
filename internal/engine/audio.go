package engine

// AudioKind distinguishes the requests hosts receive.
type AudioKind int

const (
	AudioSfx AudioKind = iota
	AudioMusic
	AudioStopMusic
)

// AudioRequest is a fire-and-forget instruction for the host's audio output.
type AudioRequest struct {
	Kind   AudioKind
	Sound  string  // Sound preset ID, empty for AudioStopMusic
	Volume float32 // 0.0 to 1.0
}

// AudioManager queues sound requests made by game logic. The engine never
// plays anything itself; hosts drain the queue after each frame.
type AudioManager struct {
	queue        []AudioRequest
	music        string
	musicVolume  float32
	musicPlaying bool
}

// NewAudioManager creates an empty audio manager.
func NewAudioManager() *AudioManager {
	return &AudioManager{}
}

// PlaySfx queues a one-shot sound effect.
func (a *AudioManager) PlaySfx(sound string, volume float32) {
	a.queue = append(a.queue, AudioRequest{Kind: AudioSfx, Sound: sound, Volume: clampVolume(volume)})
}

// PlayMusic queues looping background music, replacing any current track.
func (a *AudioManager) PlayMusic(sound string, volume float32) {
	a.music = sound
	a.musicVolume = clampVolume(volume)
	a.musicPlaying = true
	a.queue = append(a.queue, AudioRequest{Kind: AudioMusic, Sound: sound, Volume: a.musicVolume})
}

// StopMusic queues a request to stop the background music.
func (a *AudioManager) StopMusic() {
	if !a.musicPlaying {
		return
	}
	a.musicPlaying = false
	a.queue = append(a.queue, AudioRequest{Kind: AudioStopMusic})
}

// MusicPlaying reports whether background music was started and not stopped.
func (a *AudioManager) MusicPlaying() bool {
	return a.musicPlaying
}

// Music returns the current music track and its volume.
func (a *AudioManager) Music() (string, float32) {
	return a.music, a.musicVolume
}

// Pending returns the number of queued requests.
func (a *AudioManager) Pending() int {
	return len(a.queue)
}

// Drain returns all queued requests and empties the queue.
func (a *AudioManager) Drain() []AudioRequest {
	q := a.queue
	a.queue = nil
	return q
}

func clampVolume(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
