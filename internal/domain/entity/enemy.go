package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// TimerSmash removes a smashed enemy.
const TimerSmash = "die-smash"

// EnemyTuning holds the patrol and defeat constants of an enemy.
type EnemyTuning struct {
	WalkVelMax    float64
	WalkMoveForce float64
	Gravity       float64
	YVelMax       float64

	// Stomp lets the knight smash the enemy by landing on it.
	Stomp       bool
	StompBounce float64

	SmashHop         float64
	DeathGravity     float64
	SmashRemoveDelay float64

	Sprite     string
	SmashSound string
}

// DefaultEnemyTuning returns the stock enemy constants.
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		WalkVelMax:       2,
		WalkMoveForce:    20,
		Gravity:          25,
		YVelMax:          20,
		Stomp:            true,
		StompBounce:      10,
		SmashHop:         8,
		DeathGravity:     25,
		SmashRemoveDelay: 2,
		Sprite:           "enemy_walk",
		SmashSound:       "kick",
	}
}

// Victim is implemented by objects an enemy can hurt or be smashed by.
type Victim interface {
	Object
	Invincible() bool
	Hurt(ctx Context)
	Bounce(impulse float64)
}

// Enemy patrols left and right and interacts with the knight on contact.
type Enemy struct {
	Entity
	Drive

	tune  EnemyTuning
	dying bool
}

// NewEnemy creates an enemy occupying r, initially walking left.
func NewEnemy(r geom.Rect, tune EnemyTuning, sprites SpriteFactory) *Enemy {
	e := &Enemy{
		Entity: Entity{
			Kind:  KindEnemy,
			Name:  "Enemy",
			Shape: geom.FromRect(r),
			Layer: 2,
			Flags: Flags{Collidable: true, Smashable: true},
			Motion: &Motion{
				XMoveForce:    tune.WalkMoveForce,
				XVelMax:       tune.WalkVelMax,
				XStopForce:    tune.WalkMoveForce,
				YGravityForce: tune.Gravity,
				YVelMax:       tune.YVelMax,
			},
		},
		Drive: Drive{Facing: DirLeft},
		tune:  tune,
	}
	e.Anim.Sprite = sprite(sprites, tune.Sprite)
	return e
}

// Dying reports whether the enemy was smashed.
func (e *Enemy) Dying() bool {
	return e.dying
}

// Smash defeats the enemy: it hops, falls through the level and is removed
// after a delay. Only the first call has an effect.
func (e *Enemy) Smash(ctx Context) {
	if e.dying {
		return
	}
	e.dying = true
	e.Collidable = false
	e.Motion.Intent = DirNone
	e.Motion.XStopForce = 0
	e.Motion.YGravityForce = e.tune.DeathGravity
	e.Motion.YVelMax = 0
	e.Motion.Vel = geom.V(e.Motion.Vel.X(), -e.tune.SmashHop)
	e.Anim.FlipV = true

	ctx.Audio().PlaySound(e.tune.SmashSound)
	ctx.Schedule(e, TimerSmash, e.tune.SmashRemoveDelay)
}

func (e *Enemy) Update(_ Context, dt float64) {
	if !e.dying {
		e.Motion.Intent = e.Facing
	}
	e.Integrate(dt)
}

func (e *Enemy) Collision(ctx Context, other Object, from Direction) bool {
	if e.dying {
		return false
	}
	if other.Base().Kind == KindPlayer {
		v, ok := other.(Victim)
		if !ok {
			return false
		}
		stomped := e.tune.Stomp && from == DirUp
		if e.Smashable && (v.Invincible() || stomped) {
			e.Smash(ctx)
			if stomped {
				v.Bounce(e.tune.StompBounce)
			}
			return true
		}
		v.Hurt(ctx)
		return true
	}

	o := other.Base()
	if from == e.Facing && !o.Compenetrable {
		e.Facing = e.Facing.Opposite()
		e.Motion.Vel = geom.V(0, e.Motion.Vel.Y())
		return true
	}
	return false
}

func (e *Enemy) Settle(Context) {
	e.Anim.FlipH = e.Facing == DirRight
}

func (e *Enemy) OnTimer(ctx Context, tag string) {
	if tag == TimerSmash {
		ctx.Kill(e)
	}
}
