package scatter

import (
	"log/slog"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/floats"
)

// Scatter is the handle returned by Plot. It records the surface that was
// drawn on, the density-sorted data, and the truncated colormap, so callers
// can add further layers, build a matching ColorBar, or save the result.
type Scatter struct {
	// Surface is the context the scatter layer was drawn on.
	Surface *gg.Context

	// X, Y and Density are the plotted points sorted ascending by density.
	X, Y    []float64
	Density []float64

	// Colormap is the truncated colormap that colored the points.
	Colormap *Colormap

	// MinDensity and MaxDensity are the bounds used to normalize Density
	// into the colormap's [0, 1] domain.
	MinDensity, MaxDensity float64
}

// Plot draws a density scatter plot in the TOPCAT style: point density is
// estimated with a Gaussian kernel, the points are drawn densest-last, and
// each marker is colored by its density through a truncated colormap.
//
// Plot is a convenience wrapper combining CalculateDensity and Truncate;
// use those directly for more control. Defaults match the TOPCAT look:
// colormap "Reds" truncated to [0.40, 0.90] in 256 steps, borderless
// markers of radius 3, full opacity, automatic bandwidth.
//
// The surface is taken from WithSurface, or from the process default
// (DefaultSurface) when none is given. Data coordinates are fitted to the
// surface with a 5% margin; the y axis points up.
//
// Validation failures from either stage are reported as *ValidationError;
// collaborator failures (unknown colormap name, degenerate point
// configurations) propagate unchanged. Warnings about dropped non-finite
// points are emitted through the package logger.
func Plot(x, y []float64, opts ...Option) (*Scatter, error) {
	cfg := applyOptions(opts)

	xs, ys, density, err := CalculateDensity(x, y, opts...)
	if err != nil {
		return nil, err
	}

	cmap, err := Truncate(cfg.cmap, cfg.minval, cfg.maxval, cfg.steps)
	if err != nil {
		return nil, err
	}

	dc := cfg.surface
	if dc == nil {
		dc = DefaultSurface()
	}

	vp := fitViewport(xs, ys, dc.Width(), dc.Height())
	Logger().Debug("drawing density scatter",
		slog.Int("points", len(xs)),
		slog.String("colormap", cmap.Name()))

	// density is sorted ascending, so the bounds are its ends.
	lo := density[0]
	hi := density[len(density)-1]
	span := hi - lo

	for i := range xs {
		t := 0.0
		if span > 0 {
			t = (density[i] - lo) / span
		}
		col := cmap.At(t)
		px, py := vp.apply(xs[i], ys[i])

		dc.SetRGBA(col.R, col.G, col.B, col.A*cfg.alpha)
		dc.DrawCircle(px, py, cfg.markerSize)
		if !cfg.edgeSet {
			if err := dc.Fill(); err != nil {
				return nil, err
			}
			continue
		}
		if err := dc.FillPreserve(); err != nil {
			return nil, err
		}
		e := cfg.edgeColor
		dc.SetRGBA(e.R, e.G, e.B, e.A*cfg.alpha)
		dc.SetLineWidth(cfg.edgeWidth)
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}

	return &Scatter{
		Surface:    dc,
		X:          xs,
		Y:          ys,
		Density:    density,
		Colormap:   cmap,
		MinDensity: lo,
		MaxDensity: hi,
	}, nil
}

// viewport is a linear map from data coordinates to surface pixels with the
// y axis flipped (data y grows up, pixel y grows down).
type viewport struct {
	minX, minY float64
	scaleX     float64
	scaleY     float64
	marginX    float64
	marginY    float64
	pixelH     float64
}

// margin fraction kept clear on every side of the surface.
const viewportMargin = 0.05

// fitViewport fits the data bounds into the surface with a proportional
// margin. A degenerate range (all points sharing a coordinate) is padded by
// one unit on each side so the points land mid-surface.
func fitViewport(xs, ys []float64, width, height int) viewport {
	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	if maxX == minX {
		minX--
		maxX++
	}
	if maxY == minY {
		minY--
		maxY++
	}

	w := float64(width)
	h := float64(height)
	mx := viewportMargin * w
	my := viewportMargin * h

	return viewport{
		minX:    minX,
		minY:    minY,
		scaleX:  (w - 2*mx) / (maxX - minX),
		scaleY:  (h - 2*my) / (maxY - minY),
		marginX: mx,
		marginY: my,
		pixelH:  h,
	}
}

func (v viewport) apply(x, y float64) (px, py float64) {
	px = v.marginX + (x-v.minX)*v.scaleX
	py = v.pixelH - v.marginY - (y-v.minY)*v.scaleY
	return px, py
}
