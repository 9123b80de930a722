package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcfit/arcfit"
	"github.com/spf13/cobra"
)

var (
	fitTolerance float64
	fitPoints    []float64
)

var fitCmd = &cobra.Command{
	Use:   "fit [sample]",
	Short: "Fit arcs to a curve and print the segments",
	Long: `Fit a sequence of circular arcs to the named sample curve, or to the curve
given via --points, and print, per segment, its parameter range, arc geometry
and realized error bound.

Available samples: ` + strings.Join(sampleNames(), ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFit,
}

func init() {
	fitCmd.Flags().Float64VarP(&fitTolerance, "tolerance", "t", 1.0,
		"maximum allowed deviation between curve and arcs")
	fitCmd.Flags().Float64SliceVarP(&fitPoints, "points", "p", nil,
		"control points as x0,y0,x1,y1,x2,y2,x3,y3 (overrides the sample)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) {
	curves, err := selectCurves(args, fitPoints)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for i, b := range curves {
		segs := arcfit.FitArcs(b, arcfit.Options{Tolerance: fitTolerance})
		total += len(segs)

		fmt.Printf("Curve %d: %v %v %v %v\n", i+1, b.P0, b.P1, b.P2, b.P3)
		for _, s := range segs {
			var geom string
			if s.Arc.IsLine() {
				geom = "straight chord"
			} else {
				c, err := s.Arc.Circle()
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				geom = fmt.Sprintf("center %v, radius %.4g, sweep %.4g rad",
					c.Center, c.Radius, s.Arc.Sweep())
			}
			fmt.Printf("  [%.6g, %.6g]  %v to %v  %s  err %.4g\n",
				s.T0, s.T1, s.Arc.P0, s.Arc.P1, geom, s.Err)
		}
	}
	fmt.Printf("%d arcs at tolerance %g\n", total, fitTolerance)
}

// selectCurves resolves the curves to work on from a sample name argument or
// an explicit control point list. The two are mutually exclusive.
func selectCurves(args []string, points []float64) ([]arcfit.CubicBez, error) {
	if len(points) > 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine a sample name with --points")
		}
		if len(points) != 8 {
			return nil, fmt.Errorf("--points needs 8 values, got %d", len(points))
		}
		return []arcfit.CubicBez{{
			P0: arcfit.Pt(points[0], points[1]),
			P1: arcfit.Pt(points[2], points[3]),
			P2: arcfit.Pt(points[4], points[5]),
			P3: arcfit.Pt(points[6], points[7]),
		}}, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a sample name or --points (available samples: %s)",
			strings.Join(sampleNames(), ", "))
	}
	curves, ok := samples[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (available: %s)",
			args[0], strings.Join(sampleNames(), ", "))
	}
	return curves, nil
}
