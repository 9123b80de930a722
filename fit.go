package arcfit

import (
	"fmt"
	"math"
)

const (
	defaultBisectionSteps = 20
	defaultRefinePasses   = 9

	// maxResplitDepth bounds how often an over-tolerance segment is halved
	// after refinement.
	maxResplitDepth = 4
)

// Options configures [FitArcs].
//
// The zero value is not usable; Tolerance must be positive.
type Options struct {
	// Tolerance is the maximum distance allowed between the curve and the
	// fitted arcs. Required.
	Tolerance float64

	// MaxOvershoot is the accepted slack above Tolerance. The bounded
	// bisection search can converge to cuts whose segment error lies
	// slightly above Tolerance; segments still exceeding
	// Tolerance+MaxOvershoot after refinement are split at their parameter
	// midpoint. If zero, Tolerance/20 is used.
	MaxOvershoot float64

	// BisectionSteps is the number of bisection steps spent per cut-point
	// search. If zero, 20 is used.
	BisectionSteps int

	// RefinePasses is the number of rebalancing passes over the interior
	// cut points. If zero, 9 is used. Negative values disable refinement.
	RefinePasses int
}

func (opts Options) withDefaults() Options {
	if opts.Tolerance <= 0 || math.IsNaN(opts.Tolerance) {
		panic(fmt.Sprintf("arcfit: tolerance must be positive, got %g", opts.Tolerance))
	}
	if opts.MaxOvershoot == 0 {
		opts.MaxOvershoot = opts.Tolerance / 20
	}
	if opts.BisectionSteps == 0 {
		opts.BisectionSteps = defaultBisectionSteps
	}
	if opts.RefinePasses == 0 {
		opts.RefinePasses = defaultRefinePasses
	}
	return opts
}

// Segment is one arc of a fitted arc sequence.
type Segment struct {
	// T0 and T1 are the parameter range of the source curve this segment
	// covers.
	T0 float64
	T1 float64
	// Arc approximates the source curve over [T0, T1]. It may be a
	// straight chord (see [Arc.IsLine]) where the curve is locally flat.
	Arc Arc
	// Err is the realized error bound ([ArcFitError]) of this segment.
	Err float64
}

// FitArcs approximates the cubic b by a minimal sequence of circular arcs
// whose deviation from the curve stays within opts.Tolerance (plus the
// configured overshoot).
//
// The search assumes that a sub-segment's fit error grows with its length.
// This holds for well-behaved curves; for highly irregular ones the cuts
// found are locally consistent but not optimal, and the per-segment Err
// values are the caller's means of judging the result.
//
// The result is deterministic: the same curve and options yield the same
// segments.
func FitArcs(b CubicBez, opts Options) []Segment {
	opts = opts.withDefaults()

	lefts := cutPointsLeft(b, opts.Tolerance, opts.BisectionSteps)
	cuts := lefts[1 : len(lefts)-1] // interior cuts only
	if len(cuts) > 0 && opts.RefinePasses > 0 {
		rights := cutPointsRight(b, opts.Tolerance, opts.BisectionSteps)
		if len(rights) == len(lefts) {
			// The right-anchored walk found the same number of segments,
			// so each interior cut is bracketed by its two estimates.
			low := rights[1 : len(rights)-1]
			cuts = refineCuts(b, low, cuts, opts)
		}
		// A differing segment count means the error is not monotonic in
		// the cut distance for this curve; the left-anchored cuts are kept
		// as they are.
	}

	var segments []Segment
	t0 := 0.0
	for _, t1 := range cuts {
		segments = appendSegment(segments, b, t0, t1, opts, 0)
		t0 = t1
	}
	return appendSegment(segments, b, t0, 1, opts, 0)
}

// CutPoints partitions the curve into maximal sub-segments whose
// [ArcFitError] stays within tolerance, walking from t=0 towards t=1. The
// returned parameters are strictly increasing, starting at 0 and ending at
// exactly 1.
//
// The underlying search assumes segment error is monotonic in the segment's
// length; see [FitArcs].
func CutPoints(b CubicBez, tolerance float64) []float64 {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		panic(fmt.Sprintf("arcfit: tolerance must be positive, got %g", tolerance))
	}
	return cutPointsLeft(b, tolerance, defaultBisectionSteps)
}

// cutPointsLeft returns the left-anchored cut sequence 0 < t₁ < … < 1.
func cutPointsLeft(b CubicBez, tolerance float64, steps int) []float64 {
	cuts := []float64{0}
	t := 0.0
	for t < 1 {
		t, _ = findCutLeft(b, t, tolerance, steps)
		cuts = append(cuts, t)
	}
	return cuts
}

// cutPointsRight returns the right-anchored cut sequence, stored in
// increasing order 0 < … < tₙ < 1.
func cutPointsRight(b CubicBez, tolerance float64, steps int) []float64 {
	cuts := []float64{1}
	t := 1.0
	for t > 0 {
		t, _ = findCutRight(b, t, tolerance, steps)
		cuts = append(cuts, t)
	}
	// Reverse into increasing order.
	for i, j := 0, len(cuts)-1; i < j; i, j = i+1, j-1 {
		cuts[i], cuts[j] = cuts[j], cuts[i]
	}
	return cuts
}

// findCutLeft finds the largest cut in [anchor, 1] such that the segment
// [anchor, cut] stays within tolerance, along with the segment's error.
// After the fixed bisection budget the returned error may lie slightly above
// tolerance.
func findCutLeft(b CubicBez, anchor, tolerance float64, steps int) (float64, float64) {
	e := ArcFitError(b.Subsegment(anchor, 1))
	if e < tolerance {
		return 1, e
	}

	low, high := anchor, 1.0
	cut := high
	for i := 0; i < steps; i++ {
		cut = (low + high) / 2
		e = ArcFitError(b.Subsegment(anchor, cut))
		if e == tolerance {
			return cut, e
		}
		if e < tolerance {
			low = cut
		} else {
			high = cut
		}
	}
	return cut, e
}

// findCutRight is the mirror image of findCutLeft, extending leftward from
// anchor towards 0.
func findCutRight(b CubicBez, anchor, tolerance float64, steps int) (float64, float64) {
	e := ArcFitError(b.Subsegment(0, anchor))
	if e < tolerance {
		return 0, e
	}

	low, high := 0.0, anchor
	cut := low
	for i := 0; i < steps; i++ {
		cut = (low + high) / 2
		e = ArcFitError(b.Subsegment(cut, anchor))
		if e == tolerance {
			return cut, e
		}
		if e < tolerance {
			high = cut
		} else {
			low = cut
		}
	}
	return cut, e
}

// refineCuts rebalances the interior cut points between their brackets so
// that no segment's error dominates its neighbor's. low and high hold, per
// interior cut, the right-anchored and left-anchored estimates bracketing
// the balanced cut. The function operates on its own buffers and does not
// modify its arguments.
//
// Each pass walks the cuts in order, moving each towards the bracket bound
// on the side of the larger neighboring error, scaled by the error imbalance
// and damped by the curve's local curvature; a move never overshoots the
// bound. A moved cut immediately updates
// its left segment's error, so later cuts in the same pass see the already
// rebalanced state.
func refineCuts(b CubicBez, low, high []float64, opts Options) []float64 {
	n := len(high)
	cuts := make([]float64, n)
	for k := range cuts {
		cuts[k] = (low[k] + high[k]) / 2
	}

	// errs[k] is the error of the segment between cuts k-1 and k.
	errs := make([]float64, n+1)
	bounds := func(k int) (float64, float64) {
		t0 := 0.0
		if k > 0 {
			t0 = cuts[k-1]
		}
		t1 := 1.0
		if k < n {
			t1 = cuts[k]
		}
		return t0, t1
	}
	for k := range errs {
		t0, t1 := bounds(k)
		errs[k] = ArcFitError(b.Subsegment(t0, t1))
	}

	for i := 0; i < opts.RefinePasses; i++ {
		for k := range cuts {
			curvature := b.Curvature(cuts[k])
			step := math.Abs(errs[k+1]-errs[k]) /
				(math.Pow(2, 1+curvature) * opts.Tolerance)
			// A full step lands on the bracket bound; anything larger
			// would leave the bracket.
			if step > 1 {
				step = 1
			}
			if errs[k+1] > errs[k] {
				cuts[k] -= step * (cuts[k] - low[k])
			} else {
				cuts[k] += step * (high[k] - cuts[k])
			}
			t0, t1 := bounds(k)
			errs[k] = ArcFitError(b.Subsegment(t0, t1))
		}
	}
	return cuts
}

// appendSegment extracts the arc for [t0, t1] and appends it to out,
// splitting the range at its midpoint while the realized error exceeds the
// accepted overshoot.
func appendSegment(out []Segment, b CubicBez, t0, t1 float64, opts Options, depth int) []Segment {
	seg := b.Subsegment(t0, t1)
	e := ArcFitError(seg)
	if e > opts.Tolerance+opts.MaxOvershoot && depth < maxResplitDepth {
		tm := (t0 + t1) / 2
		out = appendSegment(out, b, t0, tm, opts, depth+1)
		return appendSegment(out, b, tm, t1, opts, depth+1)
	}

	_, right := seg.Subdivide()
	return append(out, Segment{
		T0:  t0,
		T1:  t1,
		Arc: ArcThroughPoints(seg.P0, seg.P3, right.P0),
		Err: e,
	})
}
