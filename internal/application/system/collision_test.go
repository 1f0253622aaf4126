package system

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// recorder is a collider that remembers every contact it receives.
type recorder struct {
	*entity.Entity
	hits []entity.Direction
	with []entity.EntityID
}

func (r *recorder) Collision(_ entity.Context, other entity.Object, from entity.Direction) bool {
	r.hits = append(r.hits, from)
	r.with = append(r.with, other.Base().ID())
	return true
}

func newStatic(id entity.EntityID, r geom.Rect) *recorder {
	e := &entity.Entity{Kind: entity.KindTerrain, Shape: geom.FromRect(r), Flags: entity.Solid()}
	e.Bind(id)
	return &recorder{Entity: e}
}

func newMover(id entity.EntityID, r geom.Rect, gravity float64) *recorder {
	e := entity.NewBody(r, entity.Flags{Collidable: true}, 0)
	e.Motion.YGravityForce = gravity
	e.Bind(id)
	return &recorder{Entity: e}
}

func newSystem(broad BroadPhase) *CollisionSystem {
	log, _ := test.NewNullLogger()
	return NewCollisionSystem(DefaultCollisionConfig(), broad, log)
}

func TestResolve_RestingBodyIsGrounded(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 8, 1, 2), 25)
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))
	objs := []entity.Object{body, floor}

	body.Integrate(1.0 / 60)
	contacts := newSystem(nil).Resolve(objs, nil)

	assert.True(t, body.Motion.Grounded)
	assert.False(t, body.Motion.Midair)
	assert.Zero(t, body.Motion.Vel.Y(), "falling velocity into the floor is cancelled")
	assert.InDelta(t, 10, body.Bounds().Bottom(), 1e-9)
	require.Len(t, contacts, 1)
	assert.Equal(t, entity.DirDown, contacts[0].Dir)
}

func TestResolve_GroundProbeWithoutPenetration(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 8, 1, 2), 0)
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))

	contacts := newSystem(nil).Resolve([]entity.Object{body, floor}, nil)

	assert.Empty(t, contacts, "touching is not overlapping")
	assert.True(t, body.Motion.Grounded)
}

func TestResolve_RisingBodySkipsProbe(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 8, 1, 2), 0)
	body.Motion.Vel = geom.V(0, -5)
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))

	newSystem(nil).Resolve([]entity.Object{body, floor}, nil)

	assert.False(t, body.Motion.Grounded)
	assert.True(t, body.Motion.Midair)
}

func TestResolve_WallBlocksHorizontalVelocity(t *testing.T) {
	body := newMover(1, geom.NewRect(4.2, 0, 1, 1), 0)
	body.Motion.Vel = geom.V(6, 0)
	wall := newStatic(2, geom.NewRect(5, -5, 1, 10))

	contacts := newSystem(nil).Resolve([]entity.Object{body, wall}, nil)

	assert.InDelta(t, 5, body.Bounds().Right(), 1e-9)
	assert.Zero(t, body.Motion.Vel.X())
	require.Len(t, contacts, 1)
	assert.Equal(t, entity.DirRight, contacts[0].Dir)
}

func TestResolve_CompenetrableIsNotPushed(t *testing.T) {
	ghost := newMover(1, geom.NewRect(2, 9.5, 1, 1), 0)
	ghost.Compenetrable = true
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))
	before := ghost.Bounds()

	sys := newSystem(nil)
	contacts := sys.Resolve([]entity.Object{ghost, floor}, nil)
	sys.Dispatch(nil, contacts)

	assert.Equal(t, before, ghost.Bounds())
	assert.Equal(t, []entity.Direction{entity.DirDown}, ghost.hits)
	assert.Equal(t, []entity.Direction{entity.DirUp}, floor.hits)
	assert.False(t, ghost.Motion.Grounded)
}

func TestResolve_CompenetrableObstacle(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 9.5, 1, 1), 0)
	coin := newStatic(2, geom.NewRect(2, 9.5, 1, 1))
	coin.Compenetrable = true
	before := body.Bounds()

	sys := newSystem(nil)
	sys.Dispatch(nil, sys.Resolve([]entity.Object{body, coin}, nil))

	assert.Equal(t, before, body.Bounds())
	assert.Len(t, body.hits, 1)
	assert.Len(t, coin.hits, 1)
}

func TestResolve_TwoMoversSplitPush(t *testing.T) {
	a := newMover(1, geom.NewRect(0, 0, 2, 2), 0)
	b := newMover(2, geom.NewRect(1.5, 0, 2, 2), 0)

	newSystem(nil).Resolve([]entity.Object{a, b}, nil)

	assert.InDelta(t, -0.25, a.Bounds().Left(), 1e-9)
	assert.InDelta(t, 1.75, b.Bounds().Left(), 1e-9)
	assert.False(t, geom.Overlap(a.Shape, b.Shape))
}

func TestResolve_AnchoredObstacleIsNotPushed(t *testing.T) {
	body := newMover(1, geom.NewRect(0, 0, 2, 2), 0)
	block := newMover(2, geom.NewRect(1.5, 0, 2, 2), 0)
	block.Motion.Anchored = true

	newSystem(nil).Resolve([]entity.Object{body, block}, nil)

	assert.InDelta(t, -0.5, body.Bounds().Left(), 1e-9)
	assert.InDelta(t, 1.5, block.Bounds().Left(), 1e-9)
}

func TestResolve_CornerInTwoTiles(t *testing.T) {
	body := newMover(1, geom.NewRect(0.5, 8.2, 1, 2), 25)
	body.Motion.Vel = geom.V(3, 4)
	left := newStatic(2, geom.NewRect(0, 10, 1, 1))
	right := newStatic(3, geom.NewRect(1, 10, 1, 1))

	contacts := newSystem(nil).Resolve([]entity.Object{body, left, right}, nil)

	assert.InDelta(t, 10, body.Bounds().Bottom(), 1e-9)
	assert.InDelta(t, 0.5, body.Bounds().Left(), 1e-9, "no snag on the tile seam")
	assert.InDelta(t, 3, body.Motion.Vel.X(), 1e-9)
	assert.True(t, body.Motion.Grounded)
	require.Len(t, contacts, 2)
	assert.Equal(t, entity.EntityID(2), contacts[0].B.Base().ID())
	assert.Equal(t, entity.EntityID(3), contacts[1].B.Base().ID())
}

func TestResolve_SeamIsNotAWall(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		vx   float64
	}{
		{name: "leading edge on the seam", x: 0.3, vx: 0.12},
		{name: "slow crawl over the seam", x: 0.3, vx: 0.01},
		{name: "moving left onto the seam", x: 1.0, vx: -0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newMover(1, geom.NewRect(tt.x, 9, 0.7, 1), 25)
			body.Motion.Vel = geom.V(tt.vx, 0)
			left := newStatic(2, geom.NewRect(0, 10, 1, 1))
			right := newStatic(3, geom.NewRect(1, 10, 1, 1))

			body.Integrate(1.0 / 60)
			x := body.Bounds().Left()
			contacts := newSystem(nil).Resolve([]entity.Object{body, left, right}, nil)

			assert.InDelta(t, x, body.Bounds().Left(), 1e-12, "no sideways push")
			assert.InDelta(t, 10, body.Bounds().Bottom(), 1e-9)
			assert.Equal(t, tt.vx, body.Motion.Vel.X())
			assert.True(t, body.Motion.Grounded)
			for _, c := range contacts {
				assert.Equal(t, entity.DirDown, c.Dir)
			}
		})
	}
}

func TestResolve_WallOfStackedTiles(t *testing.T) {
	body := newMover(1, geom.NewRect(0, 4, 1, 1), 25)
	body.Motion.Vel = geom.V(3, 0)
	lower := newStatic(2, geom.NewRect(1.02, 5, 1, 1))
	upper := newStatic(3, geom.NewRect(1.02, 4, 1, 1))

	body.Integrate(1.0 / 60)
	contacts := newSystem(nil).Resolve([]entity.Object{body, lower, upper}, nil)

	assert.InDelta(t, 0.02, body.Bounds().Left(), 1e-9, "pushed back out of the wall")
	assert.Zero(t, body.Motion.Vel.X())
	assert.Greater(t, body.Motion.Vel.Y(), 0.0, "still falling along the wall")
	require.NotEmpty(t, contacts)
	for _, c := range contacts {
		assert.Equal(t, entity.DirRight, c.Dir)
	}
}

func TestResolve_WalkableSlopePushesVertically(t *testing.T) {
	ramp := &entity.Entity{
		Kind:  entity.KindTerrain,
		Shape: geom.FromSegment(geom.Line{A: geom.V(0, 10), B: geom.V(10, 5)}, 0.1),
		Flags: entity.Solid(),
	}
	ramp.Bind(2)
	body := newMover(1, geom.NewRect(4.5, 6.2, 1, 1.2), 0)
	x := body.Bounds().Left()

	newSystem(nil).Resolve([]entity.Object{body, ramp}, nil)

	assert.InDelta(t, x, body.Bounds().Left(), 1e-9, "no sideways slide")
	assert.True(t, body.Motion.Grounded)
	assert.False(t, geom.Overlap(body.Shape, ramp.Shape))
}

func TestResolve_InactiveMoversAreSkipped(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 9, 1, 2), 0)
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))
	before := body.Bounds()

	contacts := newSystem(nil).Resolve([]entity.Object{body, floor}, func(entity.Object) bool { return false })

	assert.Empty(t, contacts)
	assert.Equal(t, before, body.Bounds())
}

func TestDispatch_SkipsDisabledParticipants(t *testing.T) {
	body := newMover(1, geom.NewRect(2, 9.5, 1, 1), 0)
	floor := newStatic(2, geom.NewRect(0, 10, 10, 1))
	wall := newStatic(3, geom.NewRect(2.5, 9, 1, 1))

	sys := newSystem(nil)
	contacts := sys.Resolve([]entity.Object{body, floor, wall}, nil)
	require.Len(t, contacts, 2)

	body.Collidable = false
	sys.Dispatch(nil, contacts)

	assert.Empty(t, body.hits)
	assert.Empty(t, floor.hits)
	assert.Empty(t, wall.hits)
}

func TestDispatch_OncePerPair(t *testing.T) {
	a := newMover(1, geom.NewRect(0, 0, 2, 2), 0)
	b := newMover(2, geom.NewRect(1.5, 0, 2, 2), 0)
	b.Compenetrable = true

	sys := newSystem(nil)
	sys.Dispatch(nil, sys.Resolve([]entity.Object{a, b}, nil))

	assert.Equal(t, []entity.Direction{entity.DirRight}, a.hits)
	assert.Equal(t, []entity.Direction{entity.DirLeft}, b.hits)
	assert.Equal(t, []entity.EntityID{2}, a.with)
}
