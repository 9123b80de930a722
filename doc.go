// Package arcfit approximates cubic Bézier curves by minimal sequences of
// circular arcs.
//
// Given a cubic Bézier segment and a positive tolerance, [FitArcs] partitions
// the curve into maximal sub-segments that can each be replaced by a single
// circular arc without deviating from the curve by more than the tolerance,
// and returns the fitted arcs together with their realized error bounds.
// [CutPoints] exposes the partitioning step on its own.
//
// # Error metric
//
// The distance between a curve segment and a candidate arc is bounded in
// closed form, without sampling. The segment and the arc's own cubic
// approximation share endpoints, so their pointwise difference is a cubic
// polynomial in the interior control point offsets; [MaxDeviation] maximizes
// it exactly. Decomposing the offsets into components parallel and
// perpendicular to the chord, and recombining perpendicular to the fitted
// circle, yields the bound computed by [BezierArcError] and [ArcBezierError].
// The production metric, [ArcFitError], halves the segment before measuring,
// which keeps the bound honest for asymmetric curves.
//
// # Searching and refinement
//
// Cut points are found by fixed-budget bisection on the error metric,
// walking the curve from both ends. The two walks bracket each interior cut;
// a fixed number of rebalancing passes then moves each cut within its
// bracket towards the neighbor with the larger error, weighted by the
// curve's local curvature. The whole pipeline is deterministic: the same
// curve and options always produce the same arcs.
//
// The bisection assumes a segment's error grows with its length. This holds
// for the well-behaved curves this package targets; see [FitArcs] for how
// violations are contained.
//
// # Geometric primitives
//
// The package also exports the small set of value types the fitter is built
// from: [Point], [Vec2], [Line], [Circle], [CubicBez], and [Arc]. An [Arc]
// is stored as its two endpoints plus a bulge parameter, a form that is
// closed under degeneration: an arc with zero bulge is a straight chord,
// which is also the fallback wherever a circle fit encounters collinear
// points ([ErrCollinear]).
package arcfit
