package playing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/level"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// fallMargin is how far below the level the knight may fall before dying.
const fallMargin = 4

// SessionOptions carries the services a session hands to its worlds.
type SessionOptions struct {
	Sprites entity.SpriteFactory
	Audio   entity.Audio
	Logger  logrus.FieldLogger
}

// Session is one run of a level without any rendering: the world, the
// knight and the game state. It is the game hooks of its worlds.
type Session struct {
	cfg    *config.GameConfig
	lvlCfg *config.LevelConfig
	opts   SessionOptions
	log    logrus.FieldLogger

	world *world.World
	level *level.Level
	state state.GameState
	frame int
	runs  int
}

// NewSession loads lvl and returns a session ready to tick.
func NewSession(cfg *config.GameConfig, lvl *config.LevelConfig, opts SessionOptions) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Audio == nil {
		opts.Audio = entity.NopAudio{}
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		opts.Logger = l
	}
	s := &Session{
		cfg:    cfg,
		lvlCfg: lvl,
		opts:   opts,
		log:    opts.Logger,
		state:  state.StateLoading,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	w := world.New(world.Options{
		Sprites:    s.opts.Sprites,
		Audio:      s.opts.Audio,
		Hooks:      s,
		Logger:     s.log,
		Collision:  collisionConfig(s.cfg.Physics),
		BroadPhase: broadPhase(s.cfg.Physics, s.lvlCfg, s.log),
	})
	lvl, err := level.NewLoader(s.cfg, s.log).Load(w, s.lvlCfg)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	s.world = w
	s.level = lvl
	s.state = state.StatePlaying
	s.frame = 0
	s.runs++
	if lvl.Music != "" {
		s.opts.Audio.PlayMusic(lvl.Music)
	}
	return nil
}

func collisionConfig(p *config.PhysicsConfig) system.CollisionConfig {
	c := system.DefaultCollisionConfig()
	if p.Collision.MaxIterations > 0 {
		c.MaxIterations = p.Collision.MaxIterations
	}
	if p.Collision.GroundProbe > 0 {
		c.GroundProbe = p.Collision.GroundProbe
	}
	if p.Collision.MaxSlopeDegrees > 0 {
		c.MaxSlopeDegrees = p.Collision.MaxSlopeDegrees
	}
	return c
}

func broadPhase(p *config.PhysicsConfig, lvl *config.LevelConfig, log logrus.FieldLogger) system.BroadPhase {
	sim := p.Simulation
	switch sim.BroadPhase {
	case "grid":
		w, h := 1.0, 1.0
		if lvl != nil {
			w, h = lvl.Size.Width, lvl.Size.Height
		}
		return system.NewGrid(geom.NewRect(0, 0, w, h), sim.GridCell, sim.GridScale)
	case "", "pairwise":
		return system.NewPairwise()
	default:
		log.WithField("broadPhase", sim.BroadPhase).Warn("unknown broad phase, using pairwise")
		return system.NewPairwise()
	}
}

// Tick applies one frame of input and steps the world by dt. Nothing
// happens while paused or after game over.
func (s *Session) Tick(in system.InputState, dt float64) {
	if !s.state.Simulating() {
		return
	}
	k := s.level.Knight
	if !k.Dying() && !k.Dead() {
		system.Apply(s.world, k, system.Intents(in))
	}
	s.world.Step(dt)
	s.frame++

	if !k.Dying() && k.Bounds().Top() > s.level.Bounds.Bottom()+fallMargin {
		s.log.WithField("frame", s.frame).Debug("knight fell out of the level")
		k.Die(s.world)
	}
}

// Freeze implements entity.GameHooks.
func (s *Session) Freeze(on bool) {
	s.world.Freeze(on)
	switch {
	case on && s.state == state.StatePlaying:
		s.state = state.StateFrozen
	case !on && s.state == state.StateFrozen:
		s.state = state.StatePlaying
	}
}

// GameOver implements entity.GameHooks.
func (s *Session) GameOver() {
	s.state = state.StateGameOver
	s.log.WithFields(logrus.Fields{
		"level": s.level.Name,
		"frame": s.frame,
		"run":   s.runs,
	}).Info("game over")
}

// SetPaused pauses or resumes a running session.
func (s *Session) SetPaused(on bool) {
	switch {
	case on && s.state.Simulating():
		s.state = state.StatePaused
	case !on && s.state == state.StatePaused:
		s.state = state.StatePlaying
		if s.world.Frozen() {
			s.state = state.StateFrozen
		}
	}
}

// Restart reloads the level from scratch.
func (s *Session) Restart() error {
	s.opts.Audio.HaltMusic()
	return s.load()
}

func (s *Session) World() *world.World    { return s.world }
func (s *Session) Knight() *entity.Knight { return s.level.Knight }
func (s *Session) Level() *level.Level    { return s.level }
func (s *Session) State() state.GameState { return s.state }
func (s *Session) Frame() int             { return s.frame }
func (s *Session) Runs() int              { return s.runs }
func (s *Session) LevelName() string      { return s.level.Name }
