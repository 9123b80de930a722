package arcfit

import (
	"math"
	"testing"
)

func TestArcThroughPointsRoundTrip(t *testing.T) {
	want := Circle{Center: Pt(-3, 8), Radius: 12}
	for _, angles := range [][3]float64{
		{0, 1, 0.5},
		{1, 2.5, 1.2},
		{-0.5, 0.5, 0},
		{2, -2, 3}, // passes through the far side
	} {
		a := ArcThroughPoints(
			want.Eval(angles[0]),
			want.Eval(angles[1]),
			want.Eval(angles[2]),
		)
		c, err := a.Circle()
		if err != nil {
			t.Fatalf("angles %v: %v", angles, err)
		}
		if math.Abs(c.Radius-want.Radius) > 1e-9 {
			t.Errorf("angles %v: radius %g, want %g", angles, c.Radius, want.Radius)
		}
		if c.Center.Distance(want.Center) > 1e-9 {
			t.Errorf("angles %v: center %v, want %v", angles, c.Center, want.Center)
		}
	}
}

func TestArcThroughPointsCollinear(t *testing.T) {
	a := ArcThroughPoints(Pt(0, 0), Pt(4, 0), Pt(2, 0))
	if !a.IsLine() {
		t.Errorf("collinear input produced bulge %g, want 0", a.D)
	}
	if _, err := a.Circle(); err == nil {
		t.Error("expected an error for the circle of a degenerate arc")
	}
	if _, _, err := a.Angles(); err == nil {
		t.Error("expected an error for the angles of a degenerate arc")
	}
}

func TestArcOrientation(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 1}

	ccw := ArcThroughPoints(c.Eval(0), c.Eval(1), c.Eval(0.5))
	if !ccw.CCW() {
		t.Errorf("arc through increasing angles has sweep %g, want positive", ccw.Sweep())
	}
	cw := ArcThroughPoints(c.Eval(1), c.Eval(0), c.Eval(0.5))
	if cw.CCW() {
		t.Errorf("arc through decreasing angles has sweep %g, want negative", cw.Sweep())
	}
	if math.Abs(ccw.Sweep()-1) > 1e-9 || math.Abs(cw.Sweep()+1) > 1e-9 {
		t.Errorf("got sweeps %g and %g, want 1 and -1", ccw.Sweep(), cw.Sweep())
	}
}

func TestArcAngles(t *testing.T) {
	c := Circle{Center: Pt(2, 2), Radius: 3}
	a := ArcThroughPoints(c.Eval(0.5), c.Eval(2), c.Eval(1.3))
	start, end, err := a.Angles()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(start-0.5) > 1e-9 || math.Abs(end-2) > 1e-9 {
		t.Errorf("got angles %g to %g, want 0.5 to 2", start, end)
	}
}

func TestArcApproxBezier(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 10}
	a := ArcThroughPoints(c.Eval(0), c.Eval(math.Pi/2), c.Eval(math.Pi/4))
	b, selfErr := a.ApproxBezier()

	if b.P0 != a.P0 || b.P3 != a.P1 {
		t.Errorf("approximation endpoints %v, %v do not match arc endpoints %v, %v",
			b.P0, b.P3, a.P0, a.P1)
	}
	if selfErr <= 0 {
		t.Errorf("got self error %g, want positive", selfErr)
	}

	// The cubic must stay within the reported self error of the circle.
	if actual := sampledArcError(b, c, 1000); actual > selfErr {
		t.Errorf("sampled deviation %g exceeds reported self error %g", actual, selfErr)
	}
}

func TestArcLineApproxBezier(t *testing.T) {
	a := Arc{P0: Pt(0, 0), P1: Pt(10, 0)}
	b, selfErr := a.ApproxBezier()
	if selfErr != 0 {
		t.Errorf("got self error %g, want 0", selfErr)
	}
	for _, ts := range []float64{0, 0.5, 1} {
		if p := b.Eval(ts); math.Abs(p.Y) > 1e-12 || p.X < 0 || p.X > 10 {
			t.Errorf("t=%g: point %v is off the chord", ts, p)
		}
	}
}
