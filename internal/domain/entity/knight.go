package entity

import (
	"github.com/younwookim/platformer/internal/domain/geom"
)

// Knight timer tags.
const (
	TimerDying  = "dying"
	TimerDie    = "die"
	TimerAttack = "attack"
)

// Knight sprite states.
const (
	SpriteStand  = "stand"
	SpriteWalk   = "walk"
	SpriteSkid   = "skid"
	SpriteJump   = "jump"
	SpriteDie    = "die"
	SpriteAttack = "attack"
)

// KnightState is the animation state derived after each step.
type KnightState int

const (
	KnightStanding KnightState = iota
	KnightWalking
	KnightJumping
	KnightSkidding
	KnightAttacking
	KnightDying
	KnightDead
)

// String returns the string representation of the knight state
func (s KnightState) String() string {
	switch s {
	case KnightStanding:
		return "Standing"
	case KnightWalking:
		return "Walking"
	case KnightJumping:
		return "Jumping"
	case KnightSkidding:
		return "Skidding"
	case KnightAttacking:
		return "Attacking"
	case KnightDying:
		return "Dying"
	case KnightDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// KnightTuning holds the knight's size and movement constants.
type KnightTuning struct {
	// Collider, relative to the spawn point.
	OffsetX, Width, Height float64

	WalkVelMax    float64
	WalkMoveForce float64
	RunVelMax     float64
	RunMoveForce  float64
	StopForce     float64
	SkidForce     float64
	Gravity       float64
	YVelMax       float64

	JumpImpulse        float64
	JumpSpeedThreshold float64
	JumpGravitySlow    float64
	JumpGravityFast    float64
	FastFallGravity    float64

	AttackDuration float64
	DyingDelay     float64
	DeadDelay      float64
	DeathGravity   float64

	// Sprites maps sprite states to sprite ids.
	Sprites map[string]string
	// Sounds
	JumpSound  string
	DeathSound string
}

// DefaultKnightTuning returns the stock knight constants.
func DefaultKnightTuning() KnightTuning {
	return KnightTuning{
		OffsetX:            1.0/16 + 0.2,
		Width:              1.8,
		Height:             2 - 1.0/16,
		WalkVelMax:         6,
		WalkMoveForce:      8,
		RunVelMax:          10,
		RunMoveForce:       13,
		StopForce:          10,
		SkidForce:          25,
		Gravity:            25,
		YVelMax:            20,
		JumpImpulse:        16,
		JumpSpeedThreshold: 9,
		JumpGravitySlow:    25,
		JumpGravityFast:    21,
		FastFallGravity:    100,
		AttackDuration:     0.3,
		DyingDelay:         0.5,
		DeadDelay:          3,
		DeathGravity:       25,
		Sprites: map[string]string{
			SpriteStand:  "knight_stand",
			SpriteWalk:   "knight_walk",
			SpriteSkid:   "knight_skid",
			SpriteJump:   "knight_jump",
			SpriteDie:    "mario_die",
			SpriteAttack: "mario_attack",
		},
		JumpSound:  "jump-small",
		DeathSound: "death",
	}
}

// Knight is the player character.
type Knight struct {
	Entity
	Drive

	tune KnightTuning

	walking    bool
	jumping    bool
	jumpHeld   bool
	invincible bool
	attacking  bool
	dying      bool
	dead       bool
	state      KnightState

	// last horizontal velocity seen while not jumping, for sprite flipping
	xLastNonZeroVel float64
}

// NewKnight creates a knight whose sprite box has its top-left corner at
// spawn.
func NewKnight(spawn geom.Vec2, tune KnightTuning, sprites SpriteFactory) *Knight {
	r := geom.NewRect(spawn.X()+tune.OffsetX, spawn.Y(), tune.Width, tune.Height)
	k := &Knight{
		Entity: Entity{
			Kind:  KindPlayer,
			Name:  "Knight",
			Shape: geom.FromRect(r),
			Layer: 3,
			Flags: Flags{Collidable: true},
			Motion: &Motion{
				XStopForce:    tune.StopForce,
				XSkidForce:    tune.SkidForce,
				YGravityForce: tune.Gravity,
				YVelMax:       tune.YVelMax,
			},
		},
		Drive: Drive{
			Facing:       DirRight,
			YJumpImpulse: tune.JumpImpulse,
			Sprites:      make(map[string]SpriteHandle, len(tune.Sprites)),
		},
		tune: tune,
	}
	for state, id := range tune.Sprites {
		k.Drive.Sprites[state] = sprite(sprites, id)
	}
	k.Run(false)
	k.Anim.Sprite = k.Drive.Sprite(SpriteStand)
	return k
}

// Move sets the horizontal intent.
func (k *Knight) Move(dir Direction) {
	if k.dying || k.dead {
		return
	}
	k.Motion.Intent = dir
}

// Jump handles the jump button. Pressing it while grounded starts a jump;
// releasing it while airborne cuts the jump short.
func (k *Knight) Jump(ctx Context, on bool) {
	if k.dying || k.dead {
		return
	}
	m := k.Motion
	if !on {
		k.jumpHeld = false
		if m.Midair {
			m.YGravityForce = k.tune.FastFallGravity
		}
		return
	}
	if k.jumpHeld {
		return
	}
	k.jumpHeld = true
	if !m.Grounded {
		return
	}

	m.Vel = m.Vel.Sub(geom.V(0, k.YJumpImpulse))
	if abs(m.Vel.X()) < k.tune.JumpSpeedThreshold {
		m.YGravityForce = k.tune.JumpGravitySlow
	} else {
		m.YGravityForce = k.tune.JumpGravityFast
	}
	k.jumping = true
	m.SetGrounded(false)
	ctx.Audio().PlaySound(k.tune.JumpSound)
}

// Run switches between the run and walk presets. Ignored while airborne.
func (k *Knight) Run(on bool) {
	if k.Motion.Midair {
		return
	}
	if on {
		k.Motion.XVelMax = k.tune.RunVelMax
		k.Motion.XMoveForce = k.tune.RunMoveForce
	} else {
		k.Motion.XVelMax = k.tune.WalkVelMax
		k.Motion.XMoveForce = k.tune.WalkMoveForce
	}
}

// Attack opens the attack window. Attacking counts as invincible.
func (k *Knight) Attack(ctx Context) {
	if k.dying || k.dead || k.attacking {
		return
	}
	k.attacking = true
	ctx.Schedule(k, TimerAttack, k.tune.AttackDuration)
}

// Die starts the death sequence. Further calls do nothing.
func (k *Knight) Die(ctx Context) {
	if k.dying || k.dead {
		return
	}
	k.dying = true
	k.attacking = false
	k.Collidable = false
	k.Motion.YGravityForce = 0
	k.Motion.Stop()
	k.Motion.Intent = DirNone

	ctx.Audio().HaltMusic()
	ctx.Audio().PlaySound(k.tune.DeathSound)
	ctx.Hooks().Freeze(true)
	ctx.Schedule(k, TimerDying, k.tune.DyingDelay)
	ctx.Logger().WithField("entity", k.String()).Debug("knight dying")
}

// Hurt kills the knight unless it is invincible.
func (k *Knight) Hurt(ctx Context) {
	if k.Invincible() {
		return
	}
	k.Die(ctx)
}

// Bounce launches the knight upward, as after stomping an enemy.
func (k *Knight) Bounce(impulse float64) {
	if k.dying || k.dead {
		return
	}
	k.Motion.Vel = geom.V(k.Motion.Vel.X(), -impulse)
	k.Motion.SetGrounded(false)
	k.jumping = true
}

// SetInvincible toggles scripted invincibility.
func (k *Knight) SetInvincible(on bool) {
	k.invincible = on
}

// Invincible reports whether enemy contact is harmless.
func (k *Knight) Invincible() bool {
	return k.invincible || k.attacking
}

func (k *Knight) Walking() bool   { return k.walking }
func (k *Knight) Jumping() bool   { return k.jumping }
func (k *Knight) Attacking() bool { return k.attacking }
func (k *Knight) Dying() bool     { return k.dying }
func (k *Knight) Dead() bool      { return k.dead }

// Skidding reports whether the knight brakes against its intent on the
// ground.
func (k *Knight) Skidding() bool {
	return !k.jumping && k.Motion.Skidding()
}

// State returns the animation state derived by the last Settle.
func (k *Knight) State() KnightState {
	return k.state
}

// FreezeImmune keeps the knight animating while the world is frozen.
func (k *Knight) FreezeImmune() bool { return true }

func (k *Knight) Update(_ Context, dt float64) {
	if k.dead {
		return
	}
	k.Integrate(dt)
}

// Settle derives the movement flags, facing and sprite once resolution has
// decided whether the knight stands on something.
func (k *Knight) Settle(_ Context) {
	m := k.Motion
	if k.jumping && m.Grounded {
		k.jumping = false
	}
	if m.Grounded && !k.dying && m.YGravityForce != k.tune.Gravity {
		m.YGravityForce = k.tune.Gravity
	}

	vx := m.Vel.X()
	if vx != 0 && !k.jumping {
		k.xLastNonZeroVel = vx
	}
	k.walking = vx != 0
	k.Track(vx)

	k.state = k.deriveState()
	k.Anim.Sprite = k.Drive.Sprite(k.spriteFor(k.state))
	k.Anim.FlipH = (vx < 0 && !k.jumping) || k.xLastNonZeroVel < 0
}

func (k *Knight) deriveState() KnightState {
	switch {
	case k.dead:
		return KnightDead
	case k.dying:
		return KnightDying
	case k.attacking:
		return KnightAttacking
	case k.jumping:
		return KnightJumping
	case k.Skidding():
		return KnightSkidding
	case k.walking:
		return KnightWalking
	default:
		return KnightStanding
	}
}

func (k *Knight) spriteFor(s KnightState) string {
	switch s {
	case KnightDead, KnightDying:
		return SpriteDie
	case KnightAttacking:
		return SpriteAttack
	case KnightJumping:
		return SpriteJump
	case KnightSkidding:
		return SpriteSkid
	case KnightWalking:
		return SpriteWalk
	default:
		return SpriteStand
	}
}

func (k *Knight) OnTimer(ctx Context, tag string) {
	switch tag {
	case TimerDying:
		k.Motion.YGravityForce = k.tune.DeathGravity
		k.Motion.Vel = k.Motion.Vel.Sub(geom.V(0, k.YJumpImpulse))
		ctx.Schedule(k, TimerDie, k.tune.DeadDelay)
	case TimerDie:
		k.dead = true
		ctx.Hooks().GameOver()
	case TimerAttack:
		k.attacking = false
	}
}
