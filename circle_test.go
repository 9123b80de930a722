package arcfit

import (
	"errors"
	"math"
	"testing"
)

func TestCircleThroughPoints(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	// Any three points of a known circle must reproduce it.
	want := Circle{Center: Pt(3, -2), Radius: 7.5}
	for _, angles := range [][3]float64{
		{0, 1, 2},
		{-3, 0.1, 3},
		{0.5, 0.6, 0.7},
	} {
		c, err := CircleThroughPoints(
			want.Eval(angles[0]),
			want.Eval(angles[1]),
			want.Eval(angles[2]),
		)
		if err != nil {
			t.Fatalf("angles %v: unexpected error %v", angles, err)
		}
		if !approxEqual(c.Center.X, want.Center.X) ||
			!approxEqual(c.Center.Y, want.Center.Y) ||
			!approxEqual(c.Radius, want.Radius) {
			t.Errorf("angles %v: got %v r=%g, want %v r=%g",
				angles, c.Center, c.Radius, want.Center, want.Radius)
		}
	}
}

func TestCircleThroughPointsCollinear(t *testing.T) {
	cases := [][3]Point{
		{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		{Pt(0, 0), Pt(0, 5), Pt(0, -3)},
		{Pt(1, 1), Pt(1, 1), Pt(2, 3)},
		{Pt(-1e9, 0), Pt(0, 0), Pt(1e9, 0)},
	}
	for _, ps := range cases {
		c, err := CircleThroughPoints(ps[0], ps[1], ps[2])
		if !errors.Is(err, ErrCollinear) {
			t.Errorf("CircleThroughPoints(%v, %v, %v) = %v, %v; want ErrCollinear",
				ps[0], ps[1], ps[2], c, err)
		}
		if c.IsInf() || c.IsNaN() {
			t.Errorf("degenerate input produced non-finite circle %v", c)
		}
	}
}

func TestCircleEval(t *testing.T) {
	c := Circle{Center: Pt(10, 20), Radius: 5}
	if got, want := c.Eval(0), Pt(15, 20); got.Distance(want) > 1e-12 {
		t.Errorf("Eval(0) = %v, want %v", got, want)
	}
	if got, want := c.Eval(math.Pi/2), Pt(10, 25); got.Distance(want) > 1e-12 {
		t.Errorf("Eval(π/2) = %v, want %v", got, want)
	}
}
