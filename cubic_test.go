package arcfit

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("t=%g: got difference of %g, want at most %g", ts, l, delta*2)
		}
	}
}

func TestCubicBezDeriv2(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 40), Pt(60, -10), Pt(100, 0)}

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		dApprox := c.Deriv(ts + delta).Sub(c.Deriv(ts)).Mul(1.0 / delta)
		d2 := c.Deriv2(ts)
		if l := d2.Sub(dApprox).Hypot(); l >= 1e-3 {
			t.Errorf("t=%g: got difference of %g", ts, l)
		}
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	// A subsegment is an exact reparametrization: evaluating it anywhere
	// must land on the original curve.
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	t0, t1 := 0.2, 0.7
	sub := c.Subsegment(t0, t1)

	const n = 16
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		want := c.Eval(t0 + ts*(t1-t0))
		got := sub.Eval(ts)
		if d := got.Distance(want); d > 1e-9 {
			t.Errorf("t=%g: subsegment point %v deviates from curve point %v by %g", ts, got, want, d)
		}
	}
}

func TestCubicBezSubdivideMatchesSubsegment(t *testing.T) {
	c := CubicBez{Pt(3, 1), Pt(-4, 10), Pt(5, 5), Pt(10, -2)}
	left, right := c.Subdivide()

	const n = 8
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		if d := left.Eval(ts).Distance(c.Subsegment(0, 0.5).Eval(ts)); d > 1e-9 {
			t.Errorf("left half deviates by %g at t=%g", d, ts)
		}
		if d := right.Eval(ts).Distance(c.Subsegment(0.5, 1).Eval(ts)); d > 1e-9 {
			t.Errorf("right half deviates by %g at t=%g", d, ts)
		}
	}
}

func TestCubicBezCurvature(t *testing.T) {
	// The canonical cubic approximation of a quarter circle of radius r has
	// curvature close to 1/r along its whole extent.
	circle := Circle{Center: Pt(0, 0), Radius: 10}
	a := ArcThroughPoints(circle.Eval(0), circle.Eval(math.Pi/2), circle.Eval(math.Pi/4))
	b, _ := a.ApproxBezier()
	for _, ts := range []float64{0, 0.25, 0.5, 0.75, 1} {
		k := math.Abs(b.Curvature(ts))
		if math.Abs(k-0.1) > 0.005 {
			t.Errorf("t=%g: curvature %g, want about 0.1", ts, k)
		}
	}
}

func TestCubicBezOsculatingCircle(t *testing.T) {
	circle := Circle{Center: Pt(5, 5), Radius: 2}
	a := ArcThroughPoints(circle.Eval(0), circle.Eval(1), circle.Eval(0.5))
	b, _ := a.ApproxBezier()
	oc, err := b.OsculatingCircle(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(oc.Radius-2) > 0.01 {
		t.Errorf("got radius %g, want about 2", oc.Radius)
	}
	if oc.Center.Distance(circle.Center) > 0.05 {
		t.Errorf("got center %v, want about %v", oc.Center, circle.Center)
	}

	line := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	if _, err := line.OsculatingCircle(0.5); err == nil {
		t.Error("expected an error for a straight segment")
	}
}
