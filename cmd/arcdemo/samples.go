package main

import (
	"sort"

	"github.com/arcfit/arcfit"
)

// The sample curves live on a 1400×1000 canvas. "dream" is a smooth
// two-curve squiggle, the "inflected" pair contain an inflection point, and
// "skewed" has strongly asymmetric control arms.
var samples = map[string][]arcfit.CubicBez{
	"dream": {
		{
			P0: arcfit.Pt(300, 700),
			P1: arcfit.Pt(550, 750),
			P2: arcfit.Pt(900, 650),
			P3: arcfit.Pt(900, 450),
		},
		{
			P0: arcfit.Pt(900, 450),
			P1: arcfit.Pt(900, 50),
			P2: arcfit.Pt(600, 350),
			P3: arcfit.Pt(100, 150),
		},
	},
	"simple": {
		{
			P0: arcfit.Pt(95.06, 551.58),
			P1: arcfit.Pt(344.06, 255.24),
			P2: arcfit.Pt(918.78, 219.66),
			P3: arcfit.Pt(1332.86, 377.04),
		},
	},
	"inflected": {
		{
			P0: arcfit.Pt(254.15, 409.97),
			P1: arcfit.Pt(347.78, 115.52),
			P2: arcfit.Pt(740.37, 591.09),
			P3: arcfit.Pt(756.30, 422.18),
		},
	},
	"inflected2": {
		{
			P0: arcfit.Pt(347.78, 115.52),
			P1: arcfit.Pt(254.15, 409.97),
			P2: arcfit.Pt(756.30, 422.18),
			P3: arcfit.Pt(740.37, 591.09),
		},
	},
	"skewed": {
		{
			P0: arcfit.Pt(50, 380),
			P1: arcfit.Pt(50, 180),
			P2: arcfit.Pt(550, 280),
			P3: arcfit.Pt(710, 400),
		},
	},
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
