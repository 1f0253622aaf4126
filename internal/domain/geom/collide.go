package geom

import "math"

// Contact describes how deep two shapes intersect.
type Contact struct {
	// MTV is the minimum translation that moves the first shape out of the
	// second one.
	MTV    Vec2
	Normal Vec2
	Depth  float64
}

// Collide runs a separating-axis test between a and b. Shapes whose
// overlap is within Epsilon are treated as touching and do not collide.
func Collide(a, b RotRect) (Contact, bool) {
	aa, ba := a.Axes(), b.Axes()
	axes := [4]Vec2{aa[0], aa[1], ba[0], ba[1]}
	d := a.Center.Sub(b.Center)

	best := math.Inf(1)
	var normal Vec2
	for _, axis := range axes {
		dist := d.Dot(axis)
		overlap := a.radius(axis) + b.radius(axis) - math.Abs(dist)
		if overlap <= Epsilon {
			return Contact{}, false
		}
		if overlap < best-Epsilon {
			best = overlap
			normal = axis
			if dist < 0 {
				normal = axis.Mul(-1)
			}
		}
	}
	return Contact{MTV: normal.Mul(best), Normal: normal, Depth: best}, true
}

// Overlap reports whether a and b intersect.
func Overlap(a, b RotRect) bool {
	_, ok := Collide(a, b)
	return ok
}
