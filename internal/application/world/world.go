// Package world owns the game objects of a level and steps them.
package world

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Options configures a World. Nil services fall back to no-op
// implementations; nil Hooks freeze the world itself.
type Options struct {
	Sprites    entity.SpriteFactory
	Audio      entity.Audio
	Hooks      entity.GameHooks
	Logger     logrus.FieldLogger
	Collision  system.CollisionConfig
	BroadPhase system.BroadPhase
}

// World holds all objects of a level and the scene timer table.
type World struct {
	nextID  entity.EntityID
	objects map[entity.EntityID]entity.Object
	order   []entity.Object

	timers    *system.Timers
	collision *system.CollisionSystem

	sprites entity.SpriteFactory
	audio   entity.Audio
	hooks   entity.GameHooks
	log     logrus.FieldLogger

	now      float64
	frozen   bool
	gameOver bool
	stepping bool
	doomed   []entity.Object
}

// New creates an empty world.
func New(opts Options) *World {
	w := &World{
		nextID:  1, // 0 is "nil"
		objects: make(map[entity.EntityID]entity.Object),
		timers:  system.NewTimers(),
		sprites: opts.Sprites,
		audio:   opts.Audio,
		hooks:   opts.Hooks,
		log:     opts.Logger,
	}
	if w.sprites == nil {
		w.sprites = entity.NopSprites{}
	}
	if w.audio == nil {
		w.audio = entity.NopAudio{}
	}
	if w.hooks == nil {
		w.hooks = selfHooks{w}
	}
	if w.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		w.log = l
	}
	if opts.Collision.MaxIterations == 0 {
		opts.Collision = system.DefaultCollisionConfig()
	}
	w.collision = system.NewCollisionSystem(opts.Collision, opts.BroadPhase, w.log)
	return w
}

// Add inserts obj and returns its new id.
func (w *World) Add(obj entity.Object) entity.EntityID {
	id := w.nextID
	w.nextID++
	obj.Base().Bind(id)
	w.objects[id] = obj
	w.order = append(w.order, obj)
	w.log.WithField("entity", obj.String()).Trace("added")
	return id
}

// Get returns the live object with id.
func (w *World) Get(id entity.EntityID) (entity.Object, bool) {
	obj, ok := w.objects[id]
	if !ok || obj.Base().Removed() {
		return nil, false
	}
	return obj, true
}

// Objects returns the live objects in id order.
func (w *World) Objects() []entity.Object {
	out := make([]entity.Object, 0, len(w.order))
	for _, o := range w.order {
		if !o.Base().Removed() {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.Objects())
}

// Kill removes obj. During a step the object stops taking part at once and
// is dropped when the step ends.
func (w *World) Kill(obj entity.Object) {
	e := obj.Base()
	if e.Removed() {
		return
	}
	if _, ok := w.objects[e.ID()]; !ok {
		return
	}
	e.Retire()
	w.timers.DropOwner(e.ID())
	w.log.WithField("entity", obj.String()).Debug("killed")
	if w.stepping {
		w.doomed = append(w.doomed, obj)
		return
	}
	w.remove(obj)
}

func (w *World) remove(obj entity.Object) {
	id := obj.Base().ID()
	delete(w.objects, id)
	i := sort.Search(len(w.order), func(i int) bool { return w.order[i].Base().ID() >= id })
	if i < len(w.order) && w.order[i].Base().ID() == id {
		w.order = append(w.order[:i], w.order[i+1:]...)
	}
}

// Schedule arms a one-shot timer for owner, delay seconds from now.
func (w *World) Schedule(owner entity.Object, tag string, delay float64) {
	w.timers.Schedule(owner.Base().ID(), tag, w.now+delay)
}

// Cancel disarms a pending timer.
func (w *World) Cancel(owner entity.Object, tag string) {
	w.timers.Cancel(owner.Base().ID(), tag)
}

// Pending reports whether owner has a timer armed for tag.
func (w *World) Pending(owner entity.Object, tag string) bool {
	_, ok := w.timers.Pending(owner.Base().ID(), tag)
	return ok
}

// PendingCount returns the number of timers armed for owner.
func (w *World) PendingCount(owner entity.Object) int {
	return w.timers.CountFor(owner.Base().ID())
}

func (w *World) Sprites() entity.SpriteFactory { return w.sprites }
func (w *World) Audio() entity.Audio           { return w.audio }
func (w *World) Hooks() entity.GameHooks       { return w.hooks }
func (w *World) Logger() logrus.FieldLogger    { return w.log }

// Now returns the simulated time in seconds.
func (w *World) Now() float64 {
	return w.now
}

// Freeze pauses every object that is not freeze-immune.
func (w *World) Freeze(on bool) {
	w.frozen = on
}

// Frozen reports whether the world is frozen.
func (w *World) Frozen() bool {
	return w.frozen
}

// GameOver reports whether GameOver was raised on the world's own hooks.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Step advances the world by dt seconds: fire due timers, update objects
// in id order, resolve collisions, dispatch contacts, settle and finally
// drop killed objects. Timers of objects suspended by a freeze fire on the
// first step after it ends.
func (w *World) Step(dt float64) {
	w.now += dt
	w.stepping = true

	for _, t := range w.timers.Due(w.now) {
		obj, ok := w.Get(t.Owner)
		if !ok {
			continue
		}
		if !w.active(obj) {
			// Frozen owners keep their timer until they run again.
			w.timers.Schedule(t.Owner, t.Tag, t.Due)
			continue
		}
		obj.OnTimer(w, t.Tag)
	}

	objs := w.Objects()
	for _, o := range objs {
		if o.Base().Removed() || !w.active(o) {
			continue
		}
		o.Update(w, dt)
	}

	contacts := w.collision.Resolve(w.Objects(), w.active)
	w.collision.Dispatch(w, contacts)

	for _, o := range w.Objects() {
		if w.active(o) {
			o.Settle(w)
		}
	}

	w.stepping = false
	for _, o := range w.doomed {
		w.remove(o)
	}
	w.doomed = w.doomed[:0]
}

// active reports whether o runs this step.
func (w *World) active(o entity.Object) bool {
	if !w.frozen {
		return true
	}
	fi, ok := o.(entity.FreezeImmune)
	return ok && fi.FreezeImmune()
}

// selfHooks is used when no game is attached: freezing freezes the world
// and game over is only recorded.
type selfHooks struct {
	w *World
}

func (h selfHooks) Freeze(on bool) { h.w.Freeze(on) }

func (h selfHooks) GameOver() {
	h.w.gameOver = true
	h.w.log.Info("game over")
}
