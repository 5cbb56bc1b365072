package gui

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/sprite-tutorial/internal/engine"
	"github.com/vovakirdan/sprite-tutorial/internal/registry"
	"github.com/vovakirdan/sprite-tutorial/internal/synth"
)

// SampleRate is the audio context rate.
const SampleRate = 48000

// player is the part of *audio.Player the sound bookkeeping needs.
type player interface {
	Play()
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// soundPlayer turns engine audio requests into Ebiten players.
type soundPlayer struct {
	pcm    map[string][]byte
	music  player
	sfx    []player
	logger *log.Logger

	newSfx   func(pcm []byte) player
	newMusic func(pcm []byte) (player, error)
}

func newSoundPlayer(logger *log.Logger) *soundPlayer {
	ctx := audio.NewContext(SampleRate)
	p := newSoundPlayerWith(logger)
	p.newSfx = func(pcm []byte) player {
		return ctx.NewPlayerFromBytes(pcm)
	}
	p.newMusic = func(pcm []byte) (player, error) {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		return ctx.NewPlayer(loop)
	}
	return p
}

// newSoundPlayerWith creates a sound player without player factories.
func newSoundPlayerWith(logger *log.Logger) *soundPlayer {
	return &soundPlayer{
		pcm:    make(map[string][]byte),
		logger: logger,
	}
}

// load renders a sound preset once and caches the PCM.
func (p *soundPlayer) load(id string) ([]byte, bool) {
	if b, ok := p.pcm[id]; ok {
		return b, true
	}
	s, err := registry.LookupSound(id)
	if err != nil {
		p.logger.Warn("unknown sound", "sound", id, "error", err)
		return nil, false
	}
	b := synth.Render(s, SampleRate)
	p.pcm[id] = b
	return b, true
}

// handle plays every drained request.
func (p *soundPlayer) handle(reqs []engine.AudioRequest) {
	p.reap()

	for _, req := range reqs {
		switch req.Kind {
		case engine.AudioSfx:
			b, ok := p.load(req.Sound)
			if !ok {
				continue
			}
			pl := p.newSfx(b)
			pl.SetVolume(float64(req.Volume))
			pl.Play()
			p.sfx = append(p.sfx, pl)

		case engine.AudioMusic:
			p.stopMusic()
			b, ok := p.load(req.Sound)
			if !ok {
				continue
			}
			pl, err := p.newMusic(b)
			if err != nil {
				p.logger.Warn("cannot start music", "sound", req.Sound, "error", err)
				continue
			}
			pl.SetVolume(float64(req.Volume))
			pl.Play()
			p.music = pl

		case engine.AudioStopMusic:
			p.stopMusic()
		}
	}
}

// reap closes finished sound effects.
func (p *soundPlayer) reap() {
	live := p.sfx[:0]
	for _, pl := range p.sfx {
		if pl.IsPlaying() {
			live = append(live, pl)
			continue
		}
		pl.Close()
	}
	p.sfx = live
}

func (p *soundPlayer) stopMusic() {
	if p.music != nil {
		p.music.Close()
		p.music = nil
	}
}

// close releases every player.
func (p *soundPlayer) close() {
	p.stopMusic()
	for _, pl := range p.sfx {
		pl.Close()
	}
	p.sfx = nil
}
