package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Audio plays the configured WAV sounds and music. Sounds are decoded once
// and cached. A nil audio context makes every call silent.
type Audio struct {
	ctx  *audio.Context
	fsys fs.FS
	cfg  config.AudioConfig
	log  logrus.FieldLogger

	cache   map[string][]byte
	missing map[string]bool

	music   *audio.Player
	musicID string
}

// NewAudio creates the audio service.
func NewAudio(ctx *audio.Context, fsys fs.FS, cfg config.AudioConfig, log logrus.FieldLogger) *Audio {
	return &Audio{
		ctx:     ctx,
		fsys:    fsys,
		cfg:     cfg,
		log:     log,
		cache:   make(map[string][]byte),
		missing: make(map[string]bool),
	}
}

// Preload decodes every configured sound. Failing sounds are reported and
// stay silent.
func (a *Audio) Preload() error {
	var first error
	for id := range a.cfg.Sounds {
		if _, err := a.sound(id); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// PlaySound plays a sound effect once.
func (a *Audio) PlaySound(id string) {
	if a.ctx == nil {
		return
	}
	data, err := a.sound(id)
	if err != nil {
		return
	}
	a.ctx.NewPlayerFromBytes(data).Play()
}

// PlayMusic loops the music track id, replacing the current one.
func (a *Audio) PlayMusic(id string) {
	if a.ctx == nil || id == a.musicID {
		return
	}
	a.HaltMusic()

	path, ok := a.cfg.Music[id]
	if !ok {
		a.log.WithField("music", id).Warn("unknown music")
		return
	}
	stream, err := a.open(path)
	if err != nil {
		a.log.WithError(err).WithField("music", id).Warn("music unavailable")
		return
	}
	player, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		a.log.WithError(err).WithField("music", id).Warn("music unavailable")
		return
	}
	player.Play()
	a.music = player
	a.musicID = id
}

// HaltMusic stops the current music.
func (a *Audio) HaltMusic() {
	if a.music == nil {
		return
	}
	_ = a.music.Close()
	a.music = nil
	a.musicID = ""
}

// MusicID returns the playing track, or "".
func (a *Audio) MusicID() string { return a.musicID }

func (a *Audio) sound(id string) ([]byte, error) {
	if data, ok := a.cache[id]; ok {
		return data, nil
	}
	if a.missing[id] {
		return nil, fmt.Errorf("sound %s unavailable", id)
	}

	path, ok := a.cfg.Sounds[id]
	if !ok {
		a.missing[id] = true
		a.log.WithField("sound", id).Warn("unknown sound")
		return nil, fmt.Errorf("unknown sound %s", id)
	}
	stream, err := a.open(path)
	if err == nil {
		var data []byte
		data, err = io.ReadAll(stream)
		if err == nil {
			a.cache[id] = data
			return data, nil
		}
	}
	a.missing[id] = true
	a.log.WithError(err).WithField("sound", id).Warn("sound unavailable")
	return nil, err
}

func (a *Audio) open(path string) (*wav.Stream, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("failed to read %s: no asset filesystem", path)
	}
	data, err := fs.ReadFile(a.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return DecodeWAV(data, a.sampleRate())
}

func (a *Audio) sampleRate() int {
	if a.ctx != nil {
		return a.ctx.SampleRate()
	}
	return a.cfg.SampleRate
}

// DecodeWAV decodes WAV data resampled to sampleRate.
func DecodeWAV(data []byte, sampleRate int) (*wav.Stream, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	return stream, nil
}
