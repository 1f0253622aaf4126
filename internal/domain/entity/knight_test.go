package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformer/internal/domain/geom"
)

func newTestKnight() *Knight {
	sprites := spriteTable{}
	for _, id := range DefaultKnightTuning().Sprites {
		sprites[id] = true
	}
	return NewKnight(geom.V(7, 49), DefaultKnightTuning(), sprites)
}

func TestNewKnight(t *testing.T) {
	k := newTestKnight()
	b := k.Bounds()

	assert.InDelta(t, 7+1.0/16+0.2, b.Left(), 1e-9)
	assert.InDelta(t, 49, b.Top(), 1e-9)
	assert.InDelta(t, 1.8, b.Width(), 1e-9)
	assert.InDelta(t, 2-1.0/16, b.Height(), 1e-9)
	assert.Equal(t, KindPlayer, k.Kind)
	assert.True(t, k.Collidable)
	assert.Equal(t, 6.0, k.Motion.XVelMax, "starts with the walk preset")
	require.NotNil(t, k.Anim.Sprite)
	assert.Equal(t, "knight_stand", k.Anim.Sprite.ID())
}

func TestKnight_Jump(t *testing.T) {
	tests := []struct {
		name        string
		vx          float64
		wantGravity float64
	}{
		{"slow jump", 3, 25},
		{"fast jump", 9.5, 21},
		{"fast jump to the left", -10, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			k := newTestKnight()
			k.Motion.SetGrounded(true)
			k.Motion.Vel = geom.V(tt.vx, 0)

			k.Jump(ctx, true)

			assert.InDelta(t, -16, k.Motion.Vel.Y(), 1e-9)
			assert.Equal(t, tt.wantGravity, k.Motion.YGravityForce)
			assert.True(t, k.Jumping())
			assert.True(t, k.Motion.Midair)
			assert.False(t, k.Motion.Grounded)
			assert.Equal(t, []string{"jump-small"}, ctx.sounds)
		})
	}
}

func TestKnight_JumpEdges(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Motion.SetGrounded(true)

	k.Jump(ctx, true)
	k.Motion.SetGrounded(true)
	k.Jump(ctx, true)
	assert.Len(t, ctx.sounds, 1, "holding the button does not jump again")

	k.Motion.SetGrounded(false)
	k.Jump(ctx, false)
	assert.Equal(t, 100.0, k.Motion.YGravityForce, "release while airborne falls fast")

	k.Jump(ctx, true)
	assert.Len(t, ctx.sounds, 1, "cannot jump while airborne")
}

func TestKnight_JumpFromAirIgnored(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Motion.SetGrounded(false)

	k.Jump(ctx, true)

	assert.False(t, k.Jumping())
	assert.Empty(t, ctx.sounds)
	assert.Zero(t, k.Motion.Vel.Y())
}

func TestKnight_Run(t *testing.T) {
	k := newTestKnight()
	k.Motion.SetGrounded(true)

	k.Run(true)
	assert.Equal(t, 10.0, k.Motion.XVelMax)
	assert.Equal(t, 13.0, k.Motion.XMoveForce)

	k.Motion.SetGrounded(false)
	k.Run(false)
	assert.Equal(t, 10.0, k.Motion.XVelMax, "presets do not change midair")

	k.Motion.SetGrounded(true)
	k.Run(false)
	assert.Equal(t, 6.0, k.Motion.XVelMax)
	assert.Equal(t, 8.0, k.Motion.XMoveForce)
}

func TestKnight_DieIsIdempotent(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Motion.Vel = geom.V(4, -3)
	k.Move(DirRight)

	k.Die(ctx)
	k.Die(ctx)

	assert.Equal(t, []string{TimerDying}, ctx.tags())
	assert.InDelta(t, 0.5, ctx.scheduled[0].delay, 1e-12)
	assert.True(t, k.Dying())
	assert.False(t, k.Collidable)
	assert.Zero(t, k.Motion.YGravityForce)
	assert.Equal(t, geom.Vec2{}, k.Motion.Vel)
	assert.Equal(t, DirNone, k.Motion.Intent)
	assert.Equal(t, 1, ctx.halted)
	assert.Equal(t, []string{"death"}, ctx.sounds)
	assert.Equal(t, []bool{true}, ctx.frozen)
}

func TestKnight_DeathSequence(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Die(ctx)

	k.OnTimer(ctx, TimerDying)
	assert.Equal(t, 25.0, k.Motion.YGravityForce)
	assert.InDelta(t, -16, k.Motion.Vel.Y(), 1e-9)
	require.Len(t, ctx.scheduled, 2)
	assert.Equal(t, TimerDie, ctx.scheduled[1].tag)
	assert.InDelta(t, 3, ctx.scheduled[1].delay, 1e-12)
	assert.False(t, k.Dead())

	k.OnTimer(ctx, TimerDie)
	assert.True(t, k.Dead())
	assert.Equal(t, 1, ctx.gameOver)

	k.Move(DirLeft)
	k.Jump(ctx, true)
	k.Attack(ctx)
	assert.Equal(t, DirNone, k.Motion.Intent)
	assert.False(t, k.Attacking())
}

func TestKnight_Attack(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()

	assert.False(t, k.Invincible())
	k.Attack(ctx)
	k.Attack(ctx)
	assert.True(t, k.Attacking())
	assert.True(t, k.Invincible())
	assert.Equal(t, []string{TimerAttack}, ctx.tags())

	k.Hurt(ctx)
	assert.False(t, k.Dying(), "attacking knight is not hurt")

	k.OnTimer(ctx, TimerAttack)
	assert.False(t, k.Invincible())
	k.Hurt(ctx)
	assert.True(t, k.Dying())
}

func TestKnight_SetInvincible(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.SetInvincible(true)

	k.Hurt(ctx)

	assert.False(t, k.Dying())
	assert.Empty(t, ctx.scheduled)
}

func TestKnight_SettleState(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(k *Knight, ctx Context)
		wantState  KnightState
		wantSprite string
	}{
		{
			name:       "standing",
			setup:      func(k *Knight, _ Context) { k.Motion.SetGrounded(true) },
			wantState:  KnightStanding,
			wantSprite: "knight_stand",
		},
		{
			name: "walking",
			setup: func(k *Knight, _ Context) {
				k.Motion.SetGrounded(true)
				k.Motion.Vel = geom.V(3, 0)
				k.Move(DirRight)
			},
			wantState:  KnightWalking,
			wantSprite: "knight_walk",
		},
		{
			name: "skidding",
			setup: func(k *Knight, _ Context) {
				k.Motion.SetGrounded(true)
				k.Motion.Vel = geom.V(3, 0)
				k.Move(DirLeft)
			},
			wantState:  KnightSkidding,
			wantSprite: "knight_skid",
		},
		{
			name: "jumping beats skidding",
			setup: func(k *Knight, ctx Context) {
				k.Motion.SetGrounded(true)
				k.Motion.Vel = geom.V(3, 0)
				k.Jump(ctx, true)
				k.Move(DirLeft)
			},
			wantState:  KnightJumping,
			wantSprite: "knight_jump",
		},
		{
			name: "attacking beats jumping",
			setup: func(k *Knight, ctx Context) {
				k.Motion.SetGrounded(true)
				k.Jump(ctx, true)
				k.Attack(ctx)
			},
			wantState:  KnightAttacking,
			wantSprite: "mario_attack",
		},
		{
			name: "dying beats everything",
			setup: func(k *Knight, ctx Context) {
				k.Attack(ctx)
				k.Die(ctx)
			},
			wantState:  KnightDying,
			wantSprite: "mario_die",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			k := newTestKnight()
			tt.setup(k, ctx)

			k.Settle(ctx)

			assert.Equal(t, tt.wantState, k.State())
			require.NotNil(t, k.Anim.Sprite)
			assert.Equal(t, tt.wantSprite, k.Anim.Sprite.ID())
		})
	}
}

func TestKnight_SettleClearsJumpOnLanding(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Motion.SetGrounded(true)
	k.Jump(ctx, true)
	k.Jump(ctx, false)
	require.Equal(t, 100.0, k.Motion.YGravityForce)

	k.Motion.SetGrounded(true)
	k.Settle(ctx)

	assert.False(t, k.Jumping())
	assert.Equal(t, 25.0, k.Motion.YGravityForce, "landing restores normal gravity")
}

func TestKnight_SettleFacing(t *testing.T) {
	ctx := newFakeContext()
	k := newTestKnight()
	k.Motion.SetGrounded(true)
	k.Motion.Vel = geom.V(-2, 0)
	k.Settle(ctx)
	assert.Equal(t, DirLeft, k.Facing)
	assert.True(t, k.Anim.FlipH)

	k.Motion.Vel = geom.Vec2{}
	k.Settle(ctx)
	assert.Equal(t, DirLeft, k.Facing)
	assert.True(t, k.Anim.FlipH, "keeps looking left after stopping")
}
