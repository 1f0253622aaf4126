package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ReplayResult summarizes a headless re-simulation.
type ReplayResult struct {
	Level   string
	Frames  int
	State   state.GameState
	KnightX float64
	KnightY float64
	Dead    bool
	Objects int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("level=%s frames=%d state=%s knight=(%.4f, %.4f) dead=%t objects=%d",
		r.Level, r.Frames, r.State, r.KnightX, r.KnightY, r.Dead, r.Objects)
}

// RunReplay feeds a recording to a fresh session of lvl until the frames
// run out or the game is over. No window or audio is used.
func RunReplay(cfg *config.GameConfig, lvl *config.LevelConfig, data replay.ReplayData, log logrus.FieldLogger) (ReplayResult, error) {
	s, err := playing.NewSession(cfg, lvl, playing.SessionOptions{Logger: log})
	if err != nil {
		return ReplayResult{}, err
	}

	fps := cfg.Physics.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)

	rp := replay.NewReplayer(data)
	for s.State() != state.StateGameOver {
		in, ok := rp.GetInput()
		if !ok {
			break
		}
		s.Tick(in, dt)
	}

	k := s.Knight()
	return ReplayResult{
		Level:   s.LevelName(),
		Frames:  s.Frame(),
		State:   s.State(),
		KnightX: k.Pos().X(),
		KnightY: k.Pos().Y(),
		Dead:    k.Dead(),
		Objects: s.World().Len(),
	}, nil
}
