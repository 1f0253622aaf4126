package geom

import "math"

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// NewRect builds a rectangle from its top-left corner and size.
// Negative sizes are flipped around the corner, zero sizes clamp to MinExtent.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{Min: V(x, y), Size: V(clampExtent(w), clampExtent(h))}
}

func (r Rect) Left() float64   { return r.Min.X() }
func (r Rect) Top() float64    { return r.Min.Y() }
func (r Rect) Right() float64  { return r.Min.X() + r.Size.X() }
func (r Rect) Bottom() float64 { return r.Min.Y() + r.Size.Y() }
func (r Rect) Width() float64  { return r.Size.X() }
func (r Rect) Height() float64 { return r.Size.Y() }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// Center returns the rectangle center.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Size.Mul(0.5))
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}

// Adjust grows or shrinks each edge: left by dx1, top by dy1, width by dx2
// and height by dy2.
func (r Rect) Adjust(dx1, dy1, dx2, dy2 float64) Rect {
	return NewRect(r.Left()+dx1, r.Top()+dy1, r.Width()+dx2, r.Height()+dy2)
}

// Overlaps reports whether the interiors intersect. Rectangles that only
// share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether p lies inside r. The test is closed on the
// top-left edges and open on the bottom-right ones, so a point on the
// shared edge of two adjacent tiles belongs to exactly one of them.
func (r Rect) Contains(p Vec2) bool {
	return p.X() >= r.Left() && p.X() < r.Right() &&
		p.Y() >= r.Top() && p.Y() < r.Bottom()
}

// Penetration returns the per-axis overlap depth of r and o.
func (r Rect) Penetration(o Rect) (Vec2, bool) {
	dx := math.Min(r.Right(), o.Right()) - math.Max(r.Left(), o.Left())
	dy := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Top(), o.Top())
	if dx <= 0 || dy <= 0 {
		return Vec2{}, false
	}
	return V(dx, dy), true
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left(), o.Left())
	top := math.Min(r.Top(), o.Top())
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return NewRect(left, top, right-left, bottom-top)
}
