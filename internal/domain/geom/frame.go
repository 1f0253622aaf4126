package geom

import "github.com/go-gl/mathgl/mgl64"

// Frame converts level coordinates into the y-down world. Coordinates
// flagged y-up have their origin at the bottom of a frame Height tall.
type Frame struct {
	Height float64
}

// Point converts a point.
func (f Frame) Point(x, y float64, yUp bool) Vec2 {
	if yUp {
		return V(x, f.Height-y)
	}
	return V(x, y)
}

// Rect converts a rectangle given by its corner and size. For y-up input
// the corner is the bottom-left one.
func (f Frame) Rect(x, y, w, h float64, yUp bool) Rect {
	r := NewRect(x, y, w, h)
	if yUp {
		r.Min = V(r.Left(), f.Height-r.Top()-r.Height())
	}
	return r
}

// RotRect converts a rotated rectangle given by its center, size and angle
// in degrees. y-up angles are counter-clockwise and get negated.
func (f Frame) RotRect(cx, cy, w, h, angleDeg float64, yUp bool) RotRect {
	angle := mgl64.DegToRad(angleDeg)
	if yUp {
		angle = -angle
	}
	return NewRotRect(f.Point(cx, cy, yUp), w, h, angle)
}
