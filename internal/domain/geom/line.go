package geom

// Line is a segment from A to B.
type Line struct {
	A, B Vec2
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.B.Sub(l.A).Len()
}

// Mid returns the segment midpoint.
func (l Line) Mid() Vec2 {
	return l.A.Add(l.B).Mul(0.5)
}

// Chain splits a polyline into consecutive segments. Fewer than two points
// yield no segments.
func Chain(points []Vec2) []Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		lines = append(lines, Line{A: points[i-1], B: points[i]})
	}
	return lines
}
