package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// buildScene returns a small level: a floor, a wall, a ledge far away, a
// falling body, a body leaning into the wall and one outside the grid.
func buildScene() []entity.Object {
	falling := newMover(1, geom.NewRect(3, 8.1, 1, 2), 25)
	leaning := newMover(2, geom.NewRect(8.7, 8, 1, 2), 0)
	leaning.Motion.Vel = geom.V(4, 0)
	outside := newMover(3, geom.NewRect(-4, 8.2, 1, 2), 25)

	return []entity.Object{
		falling,
		leaning,
		outside,
		newStatic(4, geom.NewRect(-6, 10, 26, 1)),
		newStatic(5, geom.NewRect(9.5, 4, 1, 6)),
		newStatic(6, geom.NewRect(16, 3, 3, 1)),
	}
}

func TestGrid_MatchesPairwise(t *testing.T) {
	pairObjs := buildScene()
	gridObjs := buildScene()

	pairContacts := newSystem(NewPairwise()).Resolve(pairObjs, nil)
	grid := NewGrid(geom.NewRect(0, 0, 20, 12), 2, 16)
	gridContacts := newSystem(grid).Resolve(gridObjs, nil)

	require.Len(t, gridContacts, len(pairContacts))
	for i := range pairContacts {
		assert.Equal(t, pairContacts[i].A.Base().ID(), gridContacts[i].A.Base().ID())
		assert.Equal(t, pairContacts[i].B.Base().ID(), gridContacts[i].B.Base().ID())
		assert.Equal(t, pairContacts[i].Dir, gridContacts[i].Dir)
	}
	for i := range pairObjs {
		assert.True(t, geom.Near(pairObjs[i].Base().Shape.Center, gridObjs[i].Base().Shape.Center),
			"object %d diverged", i)
		assert.Equal(t, pairObjs[i].Base().Grounded(), gridObjs[i].Base().Grounded())
	}
	assert.True(t, gridObjs[0].Base().Grounded())
	assert.True(t, gridObjs[2].Base().Grounded(), "objects outside the grid still collide")
}

func TestGrid_CandidatesAreLocal(t *testing.T) {
	objs := buildScene()
	grid := NewGrid(geom.NewRect(0, 0, 20, 12), 2, 16)
	grid.Sync(objs)

	ids := func(list []entity.Object) []entity.EntityID {
		out := make([]entity.EntityID, 0, len(list))
		for _, o := range list {
			out = append(out, o.Base().ID())
		}
		return out
	}

	got := ids(grid.Candidates(objs[0], objs[0].Base().Bounds()))
	assert.Contains(t, got, entity.EntityID(4))
	assert.NotContains(t, got, entity.EntityID(6), "far ledge is not a candidate")
	assert.NotContains(t, got, entity.EntityID(1))
	assert.IsIncreasing(t, got)
}

func TestGrid_DropsRemovedObjects(t *testing.T) {
	objs := buildScene()
	grid := NewGrid(geom.NewRect(0, 0, 20, 12), 2, 16)
	grid.Sync(objs)

	objs[3].Base().Retire()
	grid.Sync(objs)

	for _, o := range grid.Candidates(objs[0], objs[0].Base().Bounds()) {
		assert.NotEqual(t, entity.EntityID(4), o.Base().ID())
	}
}

func TestPairwise_Candidates(t *testing.T) {
	objs := buildScene()
	objs[5].Base().Collidable = false
	p := NewPairwise()
	p.Sync(objs)

	got := p.Candidates(objs[0], geom.Rect{})

	assert.Len(t, got, 4)
	for _, o := range got {
		assert.NotEqual(t, entity.EntityID(1), o.Base().ID())
		assert.NotEqual(t, entity.EntityID(6), o.Base().ID())
	}
}
