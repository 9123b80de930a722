package arcfit

import "math"

// CubicBez is a cubic Bézier segment, defined by its four control points and
// parametrized over t ∈ [0, 1].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Chord returns the line segment connecting the curve's endpoints.
func (c CubicBez) Chord() Line {
	return Line{c.P0, c.P3}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative (the tangent vector) at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3.0 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6.0 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return d01.Add(d12).Add(d23)
}

// Deriv2 evaluates the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	dd1 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2))
	dd2 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3))
	return dd1.Mul(6.0 * (1.0 - t)).Add(dd2.Mul(6.0 * t))
}

// Curvature returns the signed curvature at t, which is
// (x′y″ − y′x″) / |(x′, y′)|³.
func (c CubicBez) Curvature(t float64) float64 {
	d := c.Deriv(t)
	d2 := c.Deriv2(t)
	l := d.Hypot()
	return d.Cross(d2) / (l * l * l)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment extracts the part of the curve covering the parameter range
// [t0, t1] as a new cubic. This is an exact reparametrization, not an
// approximation: the new curve traces the same points.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// OsculatingCircle returns the circle matching the curve's position and
// curvature at t. It returns [ErrCollinear] if the curvature at t vanishes,
// as the osculating circle degenerates into the tangent line.
func (c CubicBez) OsculatingCircle(t float64) (Circle, error) {
	d := c.Deriv(t)
	d2 := c.Deriv2(t)
	l := d.Hypot()
	cross := d.Cross(d2)
	if cross == 0 || l == 0 {
		return Circle{}, ErrCollinear
	}
	curvature := cross / (l * l * l)
	radius := 1.0 / curvature
	if math.IsInf(radius, 0) {
		return Circle{}, ErrCollinear
	}
	return Circle{
		Center: c.Eval(t).Translate(d.Perp().Normalize().Mul(radius)),
		Radius: math.Abs(radius),
	}, nil
}
