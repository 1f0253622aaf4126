package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformer/internal/domain/geom"
)

func newTestEnemy() *Enemy {
	return NewEnemy(geom.NewRect(10, 48, 2, 2), DefaultEnemyTuning(), spriteTable{"enemy_walk": true})
}

func TestEnemy_PatrolsInFacingDirection(t *testing.T) {
	ctx := newFakeContext()
	e := newTestEnemy()
	start := e.Bounds().Left()

	e.Update(ctx, 0.1)

	assert.Equal(t, DirLeft, e.Motion.Intent)
	assert.Less(t, e.Bounds().Left(), start)
	require.NotNil(t, e.Anim.Sprite)
}

func TestEnemy_TurnsAroundAtWalls(t *testing.T) {
	ctx := newFakeContext()
	e := newTestEnemy()
	wall := NewTerrain(geom.FromRect(geom.NewRect(8, 40, 2, 10)), Solid(), 1)

	assert.False(t, e.Collision(ctx, wall, DirDown), "floor contact keeps direction")
	assert.Equal(t, DirLeft, e.Facing)

	assert.True(t, e.Collision(ctx, wall, DirLeft))
	assert.Equal(t, DirRight, e.Facing)

	assert.False(t, e.Collision(ctx, wall, DirLeft), "wall behind does not turn")
	assert.Equal(t, DirRight, e.Facing)
}

func TestEnemy_KnightContact(t *testing.T) {
	tests := []struct {
		name       string
		from       Direction
		invincible bool
		stomp      bool
		wantSmash  bool
		wantDying  bool
	}{
		{"side contact hurts the knight", DirLeft, false, true, false, true},
		{"stomp smashes", DirUp, false, true, true, false},
		{"stomp disabled hurts", DirUp, false, false, false, true},
		{"invincible knight smashes", DirRight, true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			tune := DefaultEnemyTuning()
			tune.Stomp = tt.stomp
			e := NewEnemy(geom.NewRect(10, 48, 2, 2), tune, nil)
			k := newTestKnight()
			k.SetInvincible(tt.invincible)

			assert.True(t, e.Collision(ctx, k, tt.from))

			assert.Equal(t, tt.wantSmash, e.Dying())
			assert.Equal(t, tt.wantSmash, !e.Collidable)
			assert.Equal(t, tt.wantDying, k.Dying())
		})
	}
}

func TestEnemy_StompBouncesKnight(t *testing.T) {
	ctx := newFakeContext()
	e := newTestEnemy()
	k := newTestKnight()
	k.Motion.Vel = geom.V(1, 5)

	e.Collision(ctx, k, DirUp)

	assert.InDelta(t, -10, k.Motion.Vel.Y(), 1e-9)
	assert.True(t, k.Jumping())
}

func TestEnemy_Smash(t *testing.T) {
	ctx := newFakeContext()
	e := newTestEnemy()

	e.Smash(ctx)
	e.Smash(ctx)

	assert.False(t, e.Collidable)
	assert.True(t, e.Anim.FlipV)
	assert.InDelta(t, -8, e.Motion.Vel.Y(), 1e-9)
	assert.Equal(t, 25.0, e.Motion.YGravityForce)
	assert.Equal(t, []string{"kick"}, ctx.sounds)
	require.Equal(t, []string{TimerSmash}, ctx.tags())
	assert.InDelta(t, 2, ctx.scheduled[0].delay, 1e-12)

	assert.False(t, e.Collision(ctx, newTestKnight(), DirLeft), "smashed enemies ignore contacts")

	e.OnTimer(ctx, TimerSmash)
	require.Len(t, ctx.killed, 1)
	assert.Same(t, e, ctx.killed[0])
}
