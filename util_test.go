package arcfit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sampledArcError measures the actual maximum distance between the curve and
// the circle by brute-force sampling. It is the ground truth the closed-form
// bounds are checked against.
func sampledArcError(b CubicBez, c Circle, steps int) float64 {
	e := 0.0
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := b.Eval(t)
		e = max(e, abs(c.Center.Distance(p)-c.Radius))
	}
	return e
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
