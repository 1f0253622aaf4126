// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/infrastructure/assets"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Options configures the playing scene.
type Options struct {
	Sprites *assets.SpriteFactory
	Audio   *assets.Audio
	Logger  logrus.FieldLogger
	// RecordPath enables input recording when set.
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	session     *Session
	inputSystem *system.InputSystem
	sprites     *assets.SpriteFactory
	log         logrus.FieldLogger

	screenW int
	screenH int
	ppu     float64
	dt      float64
	camera  camera
	white   *ebiten.Image

	// Input recording
	recorder       *Recorder
	recordFilename string
	saved          bool
}

// New creates a new Playing scene on lvl.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, lvl *config.LevelConfig, opts Options) (*Playing, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Sprites == nil {
		opts.Sprites = assets.NewSpriteFactory(cfg.Entities.Sprites, nil, opts.Logger)
	}
	sessOpts := SessionOptions{Sprites: opts.Sprites, Logger: opts.Logger}
	if opts.Audio != nil {
		sessOpts.Audio = opts.Audio
	}

	session, err := NewSession(cfg, lvl, sessOpts)
	if err != nil {
		return nil, err
	}

	d := cfg.Physics.Display
	p := &Playing{
		session:        session,
		inputSystem:    system.NewInputSystem(),
		sprites:        opts.Sprites,
		log:            opts.Logger,
		screenW:        d.ScreenWidth,
		screenH:        d.ScreenHeight,
		ppu:            float64(d.PixelsPerUnit),
		dt:             1.0 / float64(d.Framerate),
		recordFilename: opts.RecordPath,
	}
	if p.ppu <= 0 {
		p.ppu = 16
	}
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(session.LevelName())
		p.log.WithField("file", opts.RecordPath).Info("recording enabled")
	}
	return p, nil
}

// Session returns the running session.
func (p *Playing) Session() *Session { return p.session }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.session.State() {
	case state.StatePlaying, state.StateFrozen:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.session.SetPaused(false)
		}
	case state.StateGameOver:
		if !p.saved {
			p.saveRecording()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.session.SetPaused(true)
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.session.Tick(input, p.dt)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	p.saved = true
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	log := p.log.WithField("file", filename)
	if err := p.recorder.Save(filename); err != nil {
		log.WithError(err).Warn("failed to save recording")
		return
	}
	log.WithField("frames", p.recorder.FrameCount()).Info("recording saved")
}

func (p *Playing) restart() error {
	if err := p.session.Restart(); err != nil {
		return err
	}
	p.saved = false
	p.camera = camera{}
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.session.LevelName())
		p.log.Info("recording restarted")
	}
	return nil
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if !p.saved {
		p.saveRecording()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
