package entity

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type timerCall struct {
	owner Object
	tag   string
	delay float64
}

// fakeContext records every capability call made by an entity.
type fakeContext struct {
	scheduled []timerCall
	cancelled []string
	killed    []Object
	sounds    []string
	halted    int
	frozen    []bool
	gameOver  int
	log       *logrus.Logger
}

func newFakeContext() *fakeContext {
	log, _ := test.NewNullLogger()
	return &fakeContext{log: log}
}

func (c *fakeContext) Schedule(owner Object, tag string, delay float64) {
	c.scheduled = append(c.scheduled, timerCall{owner, tag, delay})
}

func (c *fakeContext) Cancel(_ Object, tag string) { c.cancelled = append(c.cancelled, tag) }
func (c *fakeContext) Kill(obj Object)             { c.killed = append(c.killed, obj) }
func (c *fakeContext) Sprites() SpriteFactory      { return NopSprites{} }
func (c *fakeContext) Audio() Audio                { return (*fakeAudio)(c) }
func (c *fakeContext) Hooks() GameHooks            { return (*fakeHooks)(c) }
func (c *fakeContext) Logger() logrus.FieldLogger  { return c.log }

func (c *fakeContext) tags() []string {
	tags := make([]string, 0, len(c.scheduled))
	for _, s := range c.scheduled {
		tags = append(tags, s.tag)
	}
	return tags
}

type fakeAudio fakeContext

func (a *fakeAudio) PlaySound(id string) { a.sounds = append(a.sounds, id) }
func (a *fakeAudio) PlayMusic(string)    {}
func (a *fakeAudio) HaltMusic()          { a.halted++ }

type fakeHooks fakeContext

func (h *fakeHooks) Freeze(on bool) { h.frozen = append(h.frozen, on) }
func (h *fakeHooks) GameOver()      { h.gameOver++ }

// namedSprite is a sprite handle that only carries its id.
type namedSprite string

func (s namedSprite) ID() string { return string(s) }

type spriteTable map[string]bool

func (t spriteTable) Get(id string) SpriteHandle {
	if !t[id] {
		return nil
	}
	return namedSprite(id)
}
