package arcfit

import (
	"math"
	"testing"
)

func TestPerp(t *testing.T) {
	v := Vec(3, -4)
	p := v.Perp()
	if p.Dot(v) != 0 {
		t.Errorf("%v is not perpendicular to %v", p, v)
	}
	if v.Cross(p) <= 0 {
		t.Errorf("%v is rotated in the negative y direction from %v", p, v)
	}
	if got := p.Perp().Perp().Perp(); got != v {
		t.Errorf("four quarter turns of %v got %v", v, got)
	}
}

func TestRebase(t *testing.T) {
	b := VecFromAngle(0.7)
	v := Vec(5, -2)
	r := v.Rebase(b)
	if d := math.Abs(r.Hypot() - v.Hypot()); d > 1e-12 {
		t.Errorf("rebasing changed the magnitude by %g", d)
	}
	if d := math.Abs(r.Angle() - (v.Angle() - 0.7)); d > 1e-12 {
		t.Errorf("rebasing changed the angle relative to the basis by %g", d)
	}

	// Rebasing onto the x axis is the identity.
	if got := v.Rebase(Vec(1, 0)); got != v {
		t.Errorf("got %v, want %v", got, v)
	}
}
