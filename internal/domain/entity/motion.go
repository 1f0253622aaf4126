package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// Motion is the kinematic capability: velocity, forces and contact state.
// Positive Y points down, so a positive YGravityForce pulls toward the floor.
type Motion struct {
	Vel geom.Vec2

	XMoveForce float64
	XVelMax    float64
	// XStopForce decelerates the body when there is no intent.
	XStopForce float64
	// XSkidForce decelerates the body when the intent opposes the velocity.
	XSkidForce float64

	YGravityForce float64
	YVelMax       float64

	Intent   Direction
	Grounded bool
	Midair   bool
	// Anchored bodies move on their own but are never pushed by resolution.
	Anchored bool
}

// Integrate updates the velocity for dt seconds and returns the
// displacement. Large steps are not subdivided.
func (m *Motion) Integrate(dt float64) geom.Vec2 {
	vx, vy := m.Vel.X(), m.Vel.Y()

	vy += m.YGravityForce * dt
	if m.YVelMax > 0 {
		vy = math.Min(vy, m.YVelMax)
	}

	dir := m.Intent.Sign()
	switch {
	case dir != 0 && m.Skidding():
		vx += dir * m.XSkidForce * dt
	case dir != 0:
		vx += dir * m.XMoveForce * dt
		if m.XVelMax > 0 {
			vx = mgl64.Clamp(vx, -m.XVelMax, m.XVelMax)
		}
	default:
		vx = approachZero(vx, m.XStopForce*dt)
	}

	m.Vel = geom.V(vx, vy)
	return m.Vel.Mul(dt)
}

// Skidding reports whether the intent opposes the current horizontal
// velocity.
func (m *Motion) Skidding() bool {
	dir := m.Intent.Sign()
	return dir != 0 && m.Vel.X() != 0 && geom.Sign(m.Vel.X()) != dir
}

// SetGrounded updates the contact state, keeping Midair its negation.
func (m *Motion) SetGrounded(on bool) {
	m.Grounded = on
	m.Midair = !on
}

// Stop zeroes the velocity.
func (m *Motion) Stop() {
	m.Vel = geom.Vec2{}
}

// Block zeroes the velocity component driving into a surface struck on
// side from.
func (m *Motion) Block(from Direction) {
	vx, vy := m.Vel.X(), m.Vel.Y()
	switch from {
	case DirDown:
		vy = math.Min(vy, 0)
	case DirUp:
		vy = math.Max(vy, 0)
	case DirLeft:
		vx = math.Max(vx, 0)
	case DirRight:
		vx = math.Min(vx, 0)
	}
	m.Vel = geom.V(vx, vy)
}

func approachZero(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	if math.Abs(v) <= step {
		return 0
	}
	return v - geom.Sign(v)*step
}
