package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_Rect(t *testing.T) {
	f := Frame{Height: 80}

	assert.Equal(t, NewRect(3, 4, 2, 1), f.Rect(3, 4, 2, 1, false))
	assert.Equal(t, NewRect(3, 75, 2, 1), f.Rect(3, 4, 2, 1, true))
}

func TestFrame_RotRect(t *testing.T) {
	f := Frame{Height: 80}

	down := f.RotRect(10, 20, 4, 2, 30, false)
	assert.True(t, Near(V(10, 20), down.Center))
	assert.InDelta(t, math.Pi/6, down.Angle, 1e-12)

	up := f.RotRect(10, 20, 4, 2, 30, true)
	assert.True(t, Near(V(10, 60), up.Center))
	assert.InDelta(t, -math.Pi/6, up.Angle, 1e-12)
}
