// Package scatter renders density-colored scatter plots in the style of the
// TOPCAT astronomy tool.
//
// # Overview
//
// Given 2D scattered data, scatter estimates a per-point density with a
// bivariate Gaussian kernel, truncates a color gradient so its washed-out
// extremes are never used, and draws the points densest-last onto a
// gogpu/gg canvas so that crowded regions sit visually on top.
//
// # Quick Start
//
//	import "github.com/AnnaOG/topcat-scatter-go"
//
//	// x, y are equal-length []float64 with at least 2 points.
//	sc, err := scatter.Plot(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc.Surface.SavePNG("density.png")
//
// By default Plot uses the "Reds" colormap truncated to [0.40, 0.90],
// borderless markers, and an automatically chosen kernel bandwidth
// (Scott's rule). All of these are configurable:
//
//	sc, err := scatter.Plot(x, y,
//	    scatter.WithColormap(scatter.Named("viridis")),
//	    scatter.WithColormapRange(0.2, 0.8),
//	    scatter.WithBandwidth(0.3),
//	)
//
// # Building Blocks
//
// The two halves of Plot are usable on their own for finer control:
// [CalculateDensity] returns the coordinates and densities sorted ascending
// by density, and [Truncate] builds a sub-range colormap from any registered
// or caller-supplied gradient.
//
// # Surfaces
//
// Drawing targets are *gg.Context values. Pass one with [WithSurface], or
// let Plot fall back to a lazily created process-wide default surface
// (see [DefaultSurface] and [SetDefaultSurface]). The library never creates
// or destroys caller-supplied surfaces, and callers invoking Plot
// concurrently against a shared surface must synchronize it themselves.
package scatter
