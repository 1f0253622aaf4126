package entity

import "github.com/sirupsen/logrus"

// SpriteHandle is a shared, read-only animated sprite. A nil handle draws
// nothing.
type SpriteHandle interface {
	ID() string
}

// SpriteFactory resolves sprite ids. Unknown ids return nil.
type SpriteFactory interface {
	Get(id string) SpriteHandle
}

// Audio plays sounds and music. Calls are fire-and-forget.
type Audio interface {
	PlaySound(id string)
	PlayMusic(id string)
	HaltMusic()
}

// GameHooks lets entities drive game-level transitions.
type GameHooks interface {
	// Freeze pauses every entity that is not freeze-immune.
	Freeze(on bool)
	// GameOver ends the current run.
	GameOver()
}

// Context is the set of scene capabilities an entity may use while the
// world is stepping.
type Context interface {
	// Schedule arms a one-shot timer for owner. Scheduling the same tag
	// again replaces the pending one.
	Schedule(owner Object, tag string, delay float64)
	// Cancel disarms a pending timer.
	Cancel(owner Object, tag string)
	// Kill removes obj from the world, at the end of the step when called
	// during one.
	Kill(obj Object)

	Sprites() SpriteFactory
	Audio() Audio
	Hooks() GameHooks
	Logger() logrus.FieldLogger
}

// NopSprites resolves every id to nil.
type NopSprites struct{}

func (NopSprites) Get(string) SpriteHandle { return nil }

// NopAudio discards every call.
type NopAudio struct{}

func (NopAudio) PlaySound(string) {}
func (NopAudio) PlayMusic(string) {}
func (NopAudio) HaltMusic()       {}

// sprite resolves id through f, tolerating a nil factory.
func sprite(f SpriteFactory, id string) SpriteHandle {
	if f == nil || id == "" {
		return nil
	}
	return f.Get(id)
}
