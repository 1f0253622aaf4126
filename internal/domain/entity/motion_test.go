package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/platformer/internal/domain/geom"
)

func TestMotion_Integrate(t *testing.T) {
	tests := []struct {
		name    string
		motion  Motion
		dt      float64
		wantVel geom.Vec2
	}{
		{
			name:    "gravity accelerates down",
			motion:  Motion{YGravityForce: 10},
			dt:      0.5,
			wantVel: geom.V(0, 5),
		},
		{
			name:    "fall speed is capped",
			motion:  Motion{Vel: geom.V(0, 19), YGravityForce: 10, YVelMax: 20},
			dt:      0.5,
			wantVel: geom.V(0, 20),
		},
		{
			name:    "intent accelerates and clamps",
			motion:  Motion{Vel: geom.V(5.5, 0), Intent: DirRight, XMoveForce: 8, XVelMax: 6},
			dt:      0.5,
			wantVel: geom.V(6, 0),
		},
		{
			name:    "no intent decelerates without overshoot",
			motion:  Motion{Vel: geom.V(1, 0), XStopForce: 10},
			dt:      0.5,
			wantVel: geom.V(0, 0),
		},
		{
			name:    "no intent decelerates partially",
			motion:  Motion{Vel: geom.V(-6, 0), XStopForce: 4},
			dt:      0.5,
			wantVel: geom.V(-4, 0),
		},
		{
			name:    "skid force when intent opposes velocity",
			motion:  Motion{Vel: geom.V(6, 0), Intent: DirLeft, XMoveForce: 8, XSkidForce: 20, XVelMax: 6},
			dt:      0.1,
			wantVel: geom.V(4, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.motion
			d := m.Integrate(tt.dt)
			assert.InDelta(t, tt.wantVel.X(), m.Vel.X(), 1e-9)
			assert.InDelta(t, tt.wantVel.Y(), m.Vel.Y(), 1e-9)
			assert.True(t, geom.Near(m.Vel.Mul(tt.dt), d))
		})
	}
}

func TestMotion_Block(t *testing.T) {
	m := Motion{Vel: geom.V(3, 4)}
	m.Block(DirDown)
	assert.Equal(t, geom.V(3, 0), m.Vel)

	m.Vel = geom.V(3, -4)
	m.Block(DirDown)
	assert.Equal(t, geom.V(3, -4), m.Vel, "moving away from the floor is kept")

	m.Block(DirRight)
	assert.Equal(t, geom.V(0, -4), m.Vel)

	m.Block(DirUp)
	assert.Equal(t, geom.V(0, 0), m.Vel)
}

func TestMotion_SetGrounded(t *testing.T) {
	var m Motion
	m.SetGrounded(true)
	assert.True(t, m.Grounded)
	assert.False(t, m.Midair)

	m.SetGrounded(false)
	assert.False(t, m.Grounded)
	assert.True(t, m.Midair)
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, DirDown, DirectionOf(geom.V(0, -1)))
	assert.Equal(t, DirUp, DirectionOf(geom.V(0, 1)))
	assert.Equal(t, DirRight, DirectionOf(geom.V(-1, 0)))
	assert.Equal(t, DirLeft, DirectionOf(geom.V(1, 0)))
	assert.Equal(t, DirDown, DirectionOf(geom.V(0.5, -0.866)), "walkable slope")
}

func TestDrive_Track(t *testing.T) {
	d := Drive{Facing: DirRight}
	d.Track(-2)
	assert.Equal(t, DirLeft, d.Facing)
	d.Track(0)
	assert.Equal(t, DirLeft, d.Facing, "facing is sticky")
}

func TestEntity_LastBounds(t *testing.T) {
	e := NewBody(geom.NewRect(1, 2, 1, 1), Flags{Collidable: true}, 0)
	_, ok := e.LastBounds()
	assert.False(t, ok, "nothing before the first integration")

	e.Motion.Vel = geom.V(6, 0)
	e.Integrate(0.5)

	last, ok := e.LastBounds()
	assert.True(t, ok)
	assert.InDelta(t, 1, last.Left(), 1e-9)
	assert.InDelta(t, 2, last.Top(), 1e-9)
	assert.InDelta(t, 1, last.Width(), 1e-9)
	assert.InDelta(t, 4, e.Bounds().Left(), 1e-9)
}
