package arcfit

import (
	"errors"
	"math"
)

// ErrCollinear is returned when three points that should define a circle lie
// on a single line (within a numerical tolerance).
var ErrCollinear = errors.New("points are collinear")

type Circle struct {
	Center Point
	Radius float64
}

// collinearEpsilon bounds the triangle area, relative to the product of the
// side lengths, below which three points are considered collinear.
const collinearEpsilon = 1e-12

// CircleThroughPoints returns the circumcircle of p0, p1, and p2, found by
// intersecting the perpendicular bisectors of two of the triangle's sides.
//
// It returns [ErrCollinear] if the points lie on a single line and no
// finite circle passes through them.
func CircleThroughPoints(p0, p1, p2 Point) (Circle, error) {
	v01 := p1.Sub(p0)
	v02 := p2.Sub(p0)
	if math.Abs(v01.Cross(v02)) <= collinearEpsilon*v01.Hypot()*v02.Hypot() {
		return Circle{}, ErrCollinear
	}
	center, ok := Line{p0, p1}.PerpendicularBisector().
		CrossingPoint(Line{p1, p2}.PerpendicularBisector())
	if !ok {
		// The bisectors of a non-degenerate triangle always cross; this
		// only trips when the cross product underflowed.
		return Circle{}, ErrCollinear
	}
	return Circle{
		Center: center,
		Radius: center.Distance(p0),
	}, nil
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

// Eval returns the point on the circle at the given angle, expressed in
// radians, with θ = 0 in the positive x direction from the center.
func (c Circle) Eval(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return c.Center.Translate(Vec2{
		X: cos * c.Radius,
		Y: sin * c.Radius,
	})
}
