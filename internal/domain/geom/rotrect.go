package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotRect is a rectangle rotated by Angle radians around its center.
// Angle 0 is axis-aligned; in the y-down world a positive angle turns
// clockwise on screen.
type RotRect struct {
	Center Vec2
	Half   Vec2
	Angle  float64
}

// NewRotRect builds a rotated rectangle from its center, full size and angle.
func NewRotRect(center Vec2, w, h, angle float64) RotRect {
	return RotRect{
		Center: center,
		Half:   V(clampExtent(w)/2, clampExtent(h)/2),
		Angle:  angle,
	}
}

// FromRect converts an axis-aligned rectangle.
func FromRect(r Rect) RotRect {
	return RotRect{Center: r.Center(), Half: r.Size.Mul(0.5)}
}

// FromSegment builds a thin rectangle of the given thickness covering l.
// A degenerate segment becomes a square of side thickness.
func FromSegment(l Line, thickness float64) RotRect {
	d := l.B.Sub(l.A)
	return NewRotRect(l.Mid(), d.Len(), thickness, math.Atan2(d.Y(), d.X()))
}

func (r RotRect) Width() float64  { return r.Half.X() * 2 }
func (r RotRect) Height() float64 { return r.Half.Y() * 2 }

// Axes returns the rectangle's local x and y unit axes.
func (r RotRect) Axes() [2]Vec2 {
	m := mgl64.Rotate2D(r.Angle)
	return [2]Vec2{m.Mul2x1(V(1, 0)), m.Mul2x1(V(0, 1))}
}

// Corners returns the four corners, clockwise on screen from the local
// top-left one.
func (r RotRect) Corners() [4]Vec2 {
	m := mgl64.Rotate2D(r.Angle)
	hx, hy := r.Half.X(), r.Half.Y()
	return [4]Vec2{
		r.Center.Add(m.Mul2x1(V(-hx, -hy))),
		r.Center.Add(m.Mul2x1(V(hx, -hy))),
		r.Center.Add(m.Mul2x1(V(hx, hy))),
		r.Center.Add(m.Mul2x1(V(-hx, hy))),
	}
}

// Bounds returns the axis-aligned bounding box.
func (r RotRect) Bounds() Rect {
	c, s := math.Abs(math.Cos(r.Angle)), math.Abs(math.Sin(r.Angle))
	ex := c*r.Half.X() + s*r.Half.Y()
	ey := s*r.Half.X() + c*r.Half.Y()
	return Rect{Min: r.Center.Sub(V(ex, ey)), Size: V(2*ex, 2*ey)}
}

// Translate returns r moved by d.
func (r RotRect) Translate(d Vec2) RotRect {
	r.Center = r.Center.Add(d)
	return r
}

// MoveTo returns r centered on c.
func (r RotRect) MoveTo(c Vec2) RotRect {
	r.Center = c
	return r
}

// Resize returns r with a new full size, keeping its top edge and
// horizontal center.
func (r RotRect) Resize(w, h float64) RotRect {
	top := r.Center.Y() - r.Half.Y()
	r.Half = V(clampExtent(w)/2, clampExtent(h)/2)
	r.Center = V(r.Center.X(), top+r.Half.Y())
	return r
}

// radius projects the half extents onto axis.
func (r RotRect) radius(axis Vec2) float64 {
	ax := r.Axes()
	return r.Half.X()*math.Abs(ax[0].Dot(axis)) + r.Half.Y()*math.Abs(ax[1].Dot(axis))
}
