package arcfit

import "math"

// Arc is a circular arc, described by its two endpoints and a bulge
// parameter d.
//
// d is the tangent of a quarter of the angle subtended by the arc: the
// maximum distance between the arc and its chord equals |d|/2 times the
// chord length. Its sign selects the side of the chord the arc bulges
// towards, and thereby the sweep orientation. An arc with d == 0 is the
// straight chord itself; this degenerate form is used as the fallback for
// collinear fits.
type Arc struct {
	P0 Point
	P1 Point
	D  float64
}

// arcLineEpsilon is the bulge magnitude below which an arc is flattened to
// its chord. Smaller bulges put the center so far away that evaluating
// points on the circle loses all precision.
const arcLineEpsilon = 1e-9

// ArcThroughPoints returns the arc from p0 to p1 passing through pm, using
// the inscribed angle of pm to determine bulge and orientation. Collinear
// input degenerates to the chord (d == 0).
func ArcThroughPoints(p0, p1, pm Point) Arc {
	if p0 == pm || p1 == pm {
		return Arc{P0: p0, P1: p1}
	}
	d := math.Tan((p1.Sub(pm).Angle()-p0.Sub(pm).Angle())/2 - math.Pi/2)
	if math.Abs(d) < arcLineEpsilon {
		d = 0
	}
	return Arc{P0: p0, P1: p1, D: d}
}

// IsLine reports whether the arc is degenerate, i.e. a straight chord.
func (a Arc) IsLine() bool {
	return a.D == 0
}

// Sweep returns the signed angle subtended by the arc. Positive values
// sweep in the direction of increasing angle.
func (a Arc) Sweep() float64 {
	return 4 * math.Atan(a.D)
}

// CCW reports whether the arc sweeps in the direction of increasing angle.
func (a Arc) CCW() bool {
	return a.D > 0
}

// Radius returns the radius of the arc's circle.
// It is infinite for degenerate arcs.
func (a Arc) Radius() float64 {
	return math.Abs(a.P1.Sub(a.P0).Hypot() * (a.D*a.D + 1) / (4 * a.D))
}

// Circle returns the circle the arc lies on, or [ErrCollinear] for a
// degenerate arc, which lies on no finite circle.
func (a Arc) Circle() (Circle, error) {
	if a.IsLine() {
		return Circle{}, ErrCollinear
	}
	center := a.P0.Midpoint(a.P1).
		Translate(a.P1.Sub(a.P0).Perp().Mul((1 - a.D*a.D) / (4 * a.D)))
	return Circle{
		Center: center,
		Radius: a.Radius(),
	}, nil
}

// Angles returns the angular positions of the arc's endpoints relative to
// its center. The end angle is start + sweep, so it is not normalized into
// (−π, π]. For degenerate arcs it returns [ErrCollinear].
func (a Arc) Angles() (start, end float64, err error) {
	c, err := a.Circle()
	if err != nil {
		return 0, 0, err
	}
	start = a.P0.Sub(c.Center).Angle()
	return start, start + a.Sweep(), nil
}

// ApproxBezier returns the canonical cubic Bézier approximation of the arc,
// along with the approximation's intrinsic maximum error. The cubic shares
// the arc's endpoints and endpoint tangents.
func (a Arc) ApproxBezier() (CubicBez, float64) {
	dp := a.P1.Sub(a.P0)
	pp := dp.Perp()
	err := dp.Hypot() * (8.0 / 27.0) * math.Pow(math.Abs(a.D), 5) / (1 + a.D*a.D)
	dp = dp.Mul((1 - a.D*a.D) / 3)
	pp = pp.Mul(2 * a.D / 3)
	return CubicBez{
		P0: a.P0,
		P1: a.P0.Translate(dp).Translate(pp.Negate()),
		P2: a.P1.Translate(dp.Negate()).Translate(pp.Negate()),
		P3: a.P1,
	}, err
}
