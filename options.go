package scatter

import "github.com/gogpu/gg"

// Option configures CalculateDensity and Plot.
// Use functional options to override the TOPCAT-style defaults.
//
// Example:
//
//	// Default style: Reds truncated to [0.40, 0.90], borderless markers.
//	sc, err := scatter.Plot(x, y)
//
//	// Custom colormap and explicit bandwidth.
//	sc, err := scatter.Plot(x, y,
//	    scatter.WithColormap(scatter.Named("viridis")),
//	    scatter.WithBandwidth(0.25),
//	)
//
// CalculateDensity consults only WithBandwidth; the rendering options are
// inert there.
type Option func(*config)

// config holds the resolved settings for a density or plot call.
type config struct {
	bandwidth    float64
	bandwidthSet bool

	cmap       ColormapRef
	minval     float64
	maxval     float64
	steps      int
	surface    *gg.Context
	markerSize float64
	alpha      float64
	edgeColor  gg.RGBA
	edgeSet    bool
	edgeWidth  float64
}

// defaultConfig returns the settings matching the TOPCAT plotting style.
func defaultConfig() config {
	return config{
		cmap:       Named("Reds"),
		minval:     0.4,
		maxval:     0.9,
		steps:      256,
		markerSize: 3,
		alpha:      1,
		edgeWidth:  1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBandwidth sets an explicit kernel bandwidth factor for the density
// estimate. The factor scales the data covariance of the Gaussian kernel;
// it must be positive. Without this option the bandwidth is chosen
// automatically by Scott's rule.
func WithBandwidth(bw float64) Option {
	return func(c *config) {
		c.bandwidth = bw
		c.bandwidthSet = true
	}
}

// WithColormap selects the colormap driving the density coloring.
// Accepts a registered name or a caller-built colormap:
//
//	scatter.WithColormap(scatter.Named("plasma"))
//	scatter.WithColormap(myColormap)
func WithColormap(ref ColormapRef) Option {
	return func(c *config) { c.cmap = ref }
}

// WithColormapRange sets the [minval, maxval] sub-range of the colormap to
// use, both within [0, 1] with minval < maxval. Narrowing the range avoids
// the too-light and too-dark extremes of most gradients.
func WithColormapRange(minval, maxval float64) Option {
	return func(c *config) {
		c.minval = minval
		c.maxval = maxval
	}
}

// WithColormapSteps sets the number of discrete colors sampled when
// truncating the colormap. Must be at least 1.
func WithColormapSteps(n int) Option {
	return func(c *config) { c.steps = n }
}

// WithSurface sets the drawing surface for Plot. Without this option the
// process-wide default surface is used (see DefaultSurface).
func WithSurface(dc *gg.Context) Option {
	return func(c *config) { c.surface = dc }
}

// WithMarkerSize sets the marker radius in pixels.
func WithMarkerSize(r float64) Option {
	return func(c *config) { c.markerSize = r }
}

// WithAlpha sets the marker opacity in [0, 1]. It multiplies the alpha of
// the colormap color.
func WithAlpha(a float64) Option {
	return func(c *config) { c.alpha = a }
}

// WithEdgeColor gives markers a stroked outline in the given color.
// Markers are borderless unless this option is supplied.
func WithEdgeColor(col gg.RGBA) Option {
	return func(c *config) {
		c.edgeColor = col
		c.edgeSet = true
	}
}

// WithEdgeWidth sets the outline width used with WithEdgeColor.
func WithEdgeWidth(w float64) Option {
	return func(c *config) { c.edgeWidth = w }
}
