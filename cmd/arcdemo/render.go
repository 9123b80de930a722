package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/arcfit/arcfit"
	"github.com/spf13/cobra"
	"golang.org/x/image/vector"
)

var (
	renderTolerance float64
	renderOutput    string
	renderPoints    []float64
	renderWidth     int
	renderHeight    int
)

var renderCmd = &cobra.Command{
	Use:   "render [sample]",
	Short: "Render a curve and its fitted arcs to a PNG image",
	Long: `Fit arcs to the named sample curve, or to the curve given via --points, and
render both onto a white canvas: the curve as a wide gray stroke, the fitted
arcs as thin green strokes on top, with a dot at every cut point.

Available samples: ` + strings.Join(sampleNames(), ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().Float64VarP(&renderTolerance, "tolerance", "t", 1.0,
		"maximum allowed deviation between curve and arcs")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"output file (default <sample>.png)")
	renderCmd.Flags().Float64SliceVarP(&renderPoints, "points", "p", nil,
		"control points as x0,y0,x1,y1,x2,y2,x3,y3 (overrides the sample)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1400, "canvas width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 1000, "canvas height in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	curves, err := selectCurves(args, renderPoints)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	output := renderOutput
	if output == "" {
		if len(args) > 0 {
			output = args[0] + ".png"
		} else {
			output = "curve.png"
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, renderWidth, renderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	curveColor := color.RGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 0xff}
	arcColor := color.RGBA{G: 0xb4, A: 0xff}
	cutColor := color.RGBA{R: 0xcc, A: 0xff}

	for _, b := range curves {
		strokePolyline(img, flattenCurve(b, 256), 5, curveColor)

		segs := arcfit.FitArcs(b, arcfit.Options{Tolerance: renderTolerance})
		for _, s := range segs {
			strokePolyline(img, flattenArc(s.Arc), 2.5, arcColor)
		}
		for _, s := range segs {
			fillDot(img, s.Arc.P0, 4, cutColor)
		}
		fillDot(img, segs[len(segs)-1].Arc.P1, 4, cutColor)
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", output)
}

func flattenCurve(b arcfit.CubicBez, steps int) []arcfit.Point {
	pts := make([]arcfit.Point, steps+1)
	for i := range pts {
		pts[i] = b.Eval(float64(i) / float64(steps))
	}
	return pts
}

// flattenArc converts an arc into a polyline, stepping the angle from the
// start point by the arc's sweep. The step count scales with the arc length
// so that the sagitta per step stays well below a pixel.
func flattenArc(a arcfit.Arc) []arcfit.Point {
	c, err := a.Circle()
	if err != nil {
		return []arcfit.Point{a.P0, a.P1}
	}
	start, end, _ := a.Angles()
	steps := int(math.Abs(end-start)*c.Radius/2) + 2
	if steps > 512 {
		steps = 512
	}
	pts := make([]arcfit.Point, steps+1)
	for i := range pts {
		t := float64(i) / float64(steps)
		pts[i] = c.Eval(start + (end-start)*t)
	}
	// Snap the ends to the exact arc endpoints.
	pts[0] = a.P0
	pts[steps] = a.P1
	return pts
}

// strokePolyline rasterizes the polyline as a ribbon of the given width, one
// quad per segment with a disc at each joint to fill the gaps.
func strokePolyline(img *image.RGBA, pts []arcfit.Point, width float64, col color.Color) {
	size := img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	h := width / 2
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		if d.Hypot() == 0 {
			continue
		}
		n := d.Perp().Normalize().Mul(h)
		moveTo(ras, pts[i-1].Translate(n))
		lineTo(ras, pts[i].Translate(n))
		lineTo(ras, pts[i].Translate(n.Negate()))
		lineTo(ras, pts[i-1].Translate(n.Negate()))
		ras.ClosePath()
	}
	for _, p := range pts[1 : len(pts)-1] {
		discPath(ras, p, h)
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

func fillDot(img *image.RGBA, p arcfit.Point, radius float64, col color.Color) {
	size := img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	discPath(ras, p, radius)
	ras.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// discPath adds a 16-gon approximating a disc around p. At stroke-width
// radii the deviation from a true circle is invisible.
func discPath(ras *vector.Rasterizer, p arcfit.Point, radius float64) {
	const sides = 16
	moveTo(ras, p.Translate(arcfit.Vec(radius, 0)))
	for i := 1; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / sides
		lineTo(ras, p.Translate(arcfit.VecFromAngle(angle).Mul(radius)))
	}
	ras.ClosePath()
}

func moveTo(ras *vector.Rasterizer, p arcfit.Point) {
	ras.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(ras *vector.Rasterizer, p arcfit.Point) {
	ras.LineTo(float32(p.X), float32(p.Y))
}
