// Package geom holds the collision geometry shared by every game object.
//
// The world is y-down: positive Y points toward the bottom of the screen.
// Level data authored y-up is converted once through a Frame at load time.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector in world units.
type Vec2 = mgl64.Vec2

// Epsilon is the tolerance used for contact and clock comparisons.
const Epsilon = 1e-9

// MinExtent is the smallest width or height a collider may have.
const MinExtent = 1e-6

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Near reports whether a and b are equal within Epsilon on both axes.
func Near(a, b Vec2) bool {
	return mgl64.FloatEqualThreshold(a.X(), b.X(), Epsilon) &&
		mgl64.FloatEqualThreshold(a.Y(), b.Y(), Epsilon)
}

// Sign returns -1, 0 or +1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func clampExtent(v float64) float64 {
	v = math.Abs(v)
	if v < MinExtent || math.IsNaN(v) {
		return MinExtent
	}
	return v
}
