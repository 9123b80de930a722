package arcfit

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the midpoint of the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. The second return value is false if the lines are parallel.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// PerpendicularBisector returns a line through the midpoint of l,
// perpendicular to it. Its length equals that of l.
func (l Line) PerpendicularBisector() Line {
	m := l.Midpoint()
	return Line{
		P0: m,
		P1: m.Translate(l.P1.Sub(l.P0).Perp()),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
