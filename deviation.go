package arcfit

import "math"

// MaxDeviationApprox is a fast upper bound for [MaxDeviation].
//
// It overestimates by at most a third and needs no square root.
func MaxDeviationApprox(d0, d1 float64) float64 {
	d0 = math.Abs(d0)
	d1 = math.Abs(d1)
	e0 := 3.0 / 4.0 * max(d0, d1)
	e1 := 4.0 / 9.0 * (d0 + d1)
	return min(e0, e1)
}

// MaxDeviation returns the maximum of |3 (d0 t (1−t)² + d1 t² (1−t))| over
// t ∈ [0, 1].
//
// This cubic is the shape of the pointwise difference between two cubic
// Béziers that share their endpoints, per coordinate, with d0 and d1 the
// offsets of the two interior control points. The maximum is found in closed
// form from the roots of the derivative.
func MaxDeviation(d0, d1 float64) float64 {
	var candidates [4]float64
	candidates[1] = 1
	n := 2
	if d0 == d1 {
		candidates[n] = 0.5
		n++
	} else {
		delta := d0*d0 - d0*d1 + d1*d1
		t2 := 1.0 / (3.0 * (d0 - d1))
		t0 := (2.0*d0 - d1) * t2
		if delta == 0 {
			candidates[n] = t0
			n++
		} else if delta > 0 {
			t1 := math.Sqrt(delta) * t2
			candidates[n] = t0 - t1
			n++
			candidates[n] = t0 + t1
			n++
		}
	}

	e := 0.0
	for _, t := range candidates[:n] {
		if t < 0.0 || t > 1.0 {
			continue
		}
		ee := math.Abs(3.0 * t * (1.0 - t) * (d0*(1.0-t) + d1*t))
		e = max(e, ee)
	}
	return e
}

// controlDeviation bounds the pointwise distance between two cubics sharing
// endpoints, decomposed in the orthonormal frame (basis, basis.Perp()).
// v0 and v1 are the offsets of the interior control points.
func controlDeviation(v0, v1, basis Vec2) Vec2 {
	v0 = v0.Rebase(basis)
	v1 = v1.Rebase(basis)
	return Vec2{
		X: MaxDeviation(v0.X, v1.X),
		Y: MaxDeviation(v0.Y, v1.Y),
	}
}

// radialDeviation turns a deviation bound u, expressed in a frame whose x
// axis points radially outward, into a bound on the distance from the circle
// of radius r.
func radialDeviation(u Vec2, r float64) float64 {
	return math.Sqrt((r+u.X)*(r+u.X)+u.Y*u.Y) - r
}

// BezierArcError bounds the maximum distance between the cubic b and the arc
// a. The two must share their endpoints.
//
// The bound is the arc's intrinsic Bézier approximation error plus the
// deviation between b and that approximation, decomposed first in a frame
// aligned to the chord and then in a frame aligned to the radial direction
// at the endpoint.
func BezierArcError(b CubicBez, a Arc) float64 {
	ba, ea := a.ApproxBezier()

	v0 := ba.P1.Sub(b.P1)
	v1 := ba.P2.Sub(b.P2)
	basis := b.P3.Sub(b.P0).Perp().Normalize()
	v := controlDeviation(v0, v1, basis)
	if a.IsLine() {
		// No finite radius; the perpendicular component is the distance
		// from the chord.
		return ea + v.X
	}
	radial := ba.P3.Sub(ba.P2).Rebase(basis).Perp().Normalize()
	return ea + radialDeviation(v.Rebase(radial), a.Radius())
}

// ArcBezierError bounds the maximum distance between the cubic b and the arc
// of the circle c subtended by b's endpoints.
//
// The circle's arc is converted to its canonical cubic via the
// 4/3·tan(θ/4) construction; the intrinsic error of that conversion is
// accounted for in the bound.
func ArcBezierError(b CubicBez, c Circle) float64 {
	a0 := b.P0.Sub(c.Center).Angle()
	a1 := b.P3.Sub(c.Center).Angle()
	am := b.Eval(0.5).Sub(c.Center).Angle()
	// The subtended arc is the one containing the curve. Summing the two
	// half-sweeps around the curve's midpoint picks that branch even when
	// the raw Atan2 angles straddle the ±π seam; a0 and a1 alone cannot
	// tell a near-zero sweep from a near-full one.
	sweep := wrapAngle(am-a0) + wrapAngle(a1-am)
	a4 := sweep / 4
	arm := 4.0 / 3.0 * math.Tan(a4)
	p1s := b.P0.Translate(b.P0.Sub(c.Center).Perp().Mul(arm))
	p2s := b.P3.Translate(c.Center.Sub(b.P3).Perp().Mul(arm))

	sin := math.Sin(a4)
	cos := math.Cos(a4)
	ea := 2.0 / 27.0 * c.Radius * math.Pow(sin, 6) / ((cos / 4) * (cos / 4))

	basis := b.P0.Sub(c.Center).Add(b.P3.Sub(c.Center)).Normalize()
	v := controlDeviation(p1s.Sub(b.P1), p2s.Sub(b.P2), basis)
	radial := b.P3.Sub(c.Center).Rebase(basis).Normalize()
	eb := radialDeviation(v.Rebase(radial), c.Radius)
	return ea + eb
}

// ArcFitError bounds the maximum distance between the cubic b and the single
// arc fitted through b's endpoints and parameter midpoint.
//
// The curve is halved before measuring and the bound is the larger half's,
// both against the one circle. Fitting and measuring over the full span in
// one go systematically underestimates the error of asymmetric curves; this
// is the metric all cut searching and refinement uses.
//
// If the three fit points are collinear the segment is treated as a straight
// chord and the bound is the control points' perpendicular deviation from it.
func ArcFitError(b CubicBez) float64 {
	left, right := b.Subdivide()
	c, err := CircleThroughPoints(b.P0, right.P0, b.P3)
	if err != nil {
		return chordError(b)
	}
	return max(ArcBezierError(left, c), ArcBezierError(right, c))
}

// wrapAngle normalizes an angular difference into (−π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// chordError bounds the maximum perpendicular distance between the cubic b
// and its chord.
func chordError(b CubicBez) float64 {
	chord := b.P3.Sub(b.P0)
	if chord.Hypot2() == 0 {
		return max(b.P1.Sub(b.P0).Hypot(), b.P2.Sub(b.P0).Hypot())
	}
	v0 := b.P1.Sub(b.P0.Lerp(b.P3, 1.0/3.0))
	v1 := b.P2.Sub(b.P0.Lerp(b.P3, 2.0/3.0))
	basis := chord.Perp().Normalize()
	return controlDeviation(v0, v1, basis).X
}
