package entity

import (
	"fmt"

	"github.com/younwookim/platformer/internal/domain/geom"
)

// Object is the behavior every game object exposes to the world.
//
// Entity implements all of it with neutral defaults so concrete types only
// override what they need.
type Object interface {
	// Base returns the shared entity state.
	Base() *Entity
	// Update advances the object by dt seconds before collision resolution.
	Update(ctx Context, dt float64)
	// Collision is called once per step for each contact with other. from is
	// the side of this object that was struck. The result reports whether
	// the contact was handled and never affects geometry.
	Collision(ctx Context, other Object, from Direction) bool
	// Settle runs after resolution, once grounded state is known.
	Settle(ctx Context)
	// OnTimer handles a fired timer tag.
	OnTimer(ctx Context, tag string)
	String() string
}

// FreezeImmune is implemented by objects that keep updating while the world
// is frozen.
type FreezeImmune interface {
	FreezeImmune() bool
}

// Animation is the render state of an entity.
type Animation struct {
	Sprite SpriteHandle
	FlipH  bool
	FlipV  bool
}

// Entity is the state shared by every game object.
type Entity struct {
	id    EntityID
	Kind  Kind
	Name  string
	Shape geom.RotRect
	Layer int
	Flags

	// Motion is nil for static objects.
	Motion *Motion
	Anim   Animation

	// last is the bounding box before the latest Integrate call.
	last    geom.Rect
	stepped bool
	removed bool
}

// NewBody creates a generic kinematic body occupying r.
func NewBody(r geom.Rect, flags Flags, layer int) *Entity {
	return &Entity{
		Kind:   KindBody,
		Shape:  geom.FromRect(r),
		Layer:  layer,
		Flags:  flags,
		Motion: &Motion{},
	}
}

// ID returns the id assigned by the world, or 0 before insertion.
func (e *Entity) ID() EntityID {
	return e.id
}

// Bind assigns the world id. Only the first call has an effect.
func (e *Entity) Bind(id EntityID) {
	if e.id == 0 {
		e.id = id
	}
}

// Retire marks the entity as removed from its world.
func (e *Entity) Retire() {
	e.removed = true
}

// Removed reports whether the entity left its world.
func (e *Entity) Removed() bool {
	return e.removed
}

// Bounds returns the collider's axis-aligned bounding box.
func (e *Entity) Bounds() geom.Rect {
	return e.Shape.Bounds()
}

// Pos returns the top-left corner of the bounding box.
func (e *Entity) Pos() geom.Vec2 {
	return e.Bounds().Min
}

// Vel returns the velocity, zero for static objects.
func (e *Entity) Vel() geom.Vec2 {
	if e.Motion == nil {
		return geom.Vec2{}
	}
	return e.Motion.Vel
}

// Grounded reports whether the entity rests on a solid.
func (e *Entity) Grounded() bool {
	return e.Motion != nil && e.Motion.Grounded
}

// Mover reports whether collision resolution may push the entity.
func (e *Entity) Mover() bool {
	return e.Motion != nil && !e.Motion.Anchored
}

// Integrate applies one motion step.
func (e *Entity) Integrate(dt float64) {
	if e.Motion == nil {
		return
	}
	e.last = e.Bounds()
	e.stepped = true
	e.Shape = e.Shape.Translate(e.Motion.Integrate(dt))
}

// LastBounds returns the bounding box before the latest Integrate call. ok
// is false until the entity has been integrated once.
func (e *Entity) LastBounds() (r geom.Rect, ok bool) {
	return e.last, e.stepped
}

func (e *Entity) Base() *Entity { return e }

func (e *Entity) Update(_ Context, dt float64) { e.Integrate(dt) }

func (e *Entity) Collision(Context, Object, Direction) bool { return false }

func (e *Entity) Settle(Context) {}

func (e *Entity) OnTimer(Context, string) {}

func (e *Entity) String() string {
	name := e.Name
	if name == "" {
		name = e.Kind.String()
	}
	return fmt.Sprintf("%s[%d]", name, e.id)
}
