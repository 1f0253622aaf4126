package level

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// KnightTuning builds the knight constants from configuration.
func KnightTuning(p *config.PhysicsConfig, e *config.EntitiesConfig) entity.KnightTuning {
	k := p.Knight
	t := entity.KnightTuning{
		OffsetX:            k.OffsetX,
		Width:              k.Width,
		Height:             k.Height,
		WalkVelMax:         k.WalkVelMax,
		WalkMoveForce:      k.WalkMoveForce,
		RunVelMax:          k.RunVelMax,
		RunMoveForce:       k.RunMoveForce,
		StopForce:          k.StopForce,
		SkidForce:          k.SkidForce,
		Gravity:            k.Gravity,
		YVelMax:            k.MaxFallSpeed,
		JumpImpulse:        k.Jump.Impulse,
		JumpSpeedThreshold: k.Jump.SpeedThreshold,
		JumpGravitySlow:    k.Jump.GravitySlow,
		JumpGravityFast:    k.Jump.GravityFast,
		FastFallGravity:    k.Jump.FastFallGravity,
		AttackDuration:     k.AttackDuration,
		DyingDelay:         k.Death.DyingDelay,
		DeadDelay:          k.Death.DeadDelay,
		DeathGravity:       k.Death.Gravity,
		Sprites:            entity.DefaultKnightTuning().Sprites,
		JumpSound:          entity.DefaultKnightTuning().JumpSound,
		DeathSound:         entity.DefaultKnightTuning().DeathSound,
	}
	if e != nil {
		if len(e.Knight.Sprites) > 0 {
			t.Sprites = e.Knight.Sprites
		}
		if e.Knight.JumpSound != "" {
			t.JumpSound = e.Knight.JumpSound
		}
		if e.Knight.DeathSound != "" {
			t.DeathSound = e.Knight.DeathSound
		}
	}
	return t
}

// EnemyTuning builds the enemy constants from configuration.
func EnemyTuning(p *config.PhysicsConfig, e *config.EntitiesConfig) entity.EnemyTuning {
	c := p.Enemy
	t := entity.EnemyTuning{
		WalkVelMax:       c.WalkVelMax,
		WalkMoveForce:    c.WalkMoveForce,
		Gravity:          c.Gravity,
		YVelMax:          c.MaxFallSpeed,
		Stomp:            c.Stomp,
		StompBounce:      c.StompBounce,
		SmashHop:         c.SmashHop,
		DeathGravity:     c.DeathGravity,
		SmashRemoveDelay: c.SmashRemoveDelay,
		Sprite:           entity.DefaultEnemyTuning().Sprite,
		SmashSound:       entity.DefaultEnemyTuning().SmashSound,
	}
	if e != nil {
		if e.Enemy.Sprite != "" {
			t.Sprite = e.Enemy.Sprite
		}
		if e.Enemy.SmashSound != "" {
			t.SmashSound = e.Enemy.SmashSound
		}
	}
	return t
}
