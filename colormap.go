package scatter

import (
	"fmt"
	"image"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/gg"
)

// ColorStop represents a color at a specific position in a colormap.
type ColorStop struct {
	Offset float64 // Position in the colormap, 0.0 to 1.0
	Color  gg.RGBA // Color at this position
}

// Colormap maps a scalar in [0, 1] to a color by linear interpolation
// between its stops. Values outside [0, 1] clamp to the edge colors.
// A Colormap is immutable after construction and safe for concurrent use.
type Colormap struct {
	name  string
	stops []ColorStop
}

// NewColormap builds a colormap from at least one stop. Stops are copied
// and sorted by offset; offsets must lie in [0, 1].
func NewColormap(name string, stops []ColorStop) (*Colormap, error) {
	if name == "" {
		return nil, fmt.Errorf("scatter: colormap name must not be empty")
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("scatter: colormap %q needs at least one color stop", name)
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	if sorted[0].Offset < 0 || sorted[len(sorted)-1].Offset > 1 {
		return nil, fmt.Errorf("scatter: colormap %q has stop offsets outside [0, 1]", name)
	}
	return &Colormap{name: name, stops: sorted}, nil
}

// Name returns the colormap's registered or constructed name.
func (c *Colormap) Name() string { return c.name }

// Stops returns a copy of the colormap's stops.
func (c *Colormap) Stops() []ColorStop {
	out := make([]ColorStop, len(c.stops))
	copy(out, c.stops)
	return out
}

// At returns the interpolated color at position t, clamping t to [0, 1].
func (c *Colormap) At(t float64) gg.RGBA {
	if len(c.stops) == 0 {
		return gg.Transparent
	}
	if len(c.stops) == 1 {
		return c.stops[0].Color
	}
	t = clamp01(t)

	idx := sort.Search(len(c.stops), func(i int) bool {
		return c.stops[i].Offset >= t
	})
	if idx == 0 {
		return c.stops[0].Color
	}
	if idx >= len(c.stops) {
		return c.stops[len(c.stops)-1].Color
	}

	lo, hi := c.stops[idx-1], c.stops[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	local := (t - lo.Offset) / (hi.Offset - lo.Offset)
	return lo.Color.Lerp(hi.Color, local)
}

// Reversed returns the colormap with its direction flipped, named with the
// conventional "_r" suffix.
func (c *Colormap) Reversed() *Colormap {
	stops := make([]ColorStop, len(c.stops))
	for i, s := range c.stops {
		stops[len(c.stops)-1-i] = ColorStop{Offset: 1 - s.Offset, Color: s.Color}
	}
	return &Colormap{name: c.name + "_r", stops: stops}
}

// Resolve lets a *Colormap act as its own ColormapRef.
func (c *Colormap) Resolve() (*Colormap, error) {
	if c == nil {
		return nil, fmt.Errorf("scatter: nil colormap")
	}
	return c, nil
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ColormapRef identifies a colormap either by registered name or directly
// as an object. Named and *Colormap are the two implementations.
type ColormapRef interface {
	Resolve() (*Colormap, error)
}

// Named refers to a colormap in the package registry, looked up
// case-insensitively. A trailing "_r" resolves the base colormap reversed.
type Named string

// Resolve looks the name up in the registry.
func (n Named) Resolve() (*Colormap, error) {
	return LookupColormap(string(n))
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Colormap)
)

// RegisterColormap adds a colormap to the package registry, replacing any
// existing entry with the same name. Lookup is case-insensitive.
func RegisterColormap(c *Colormap) error {
	if c == nil || c.name == "" {
		return fmt.Errorf("scatter: cannot register a nil or unnamed colormap")
	}
	registryMu.Lock()
	registry[strings.ToLower(c.name)] = c
	registryMu.Unlock()
	return nil
}

// LookupColormap resolves a colormap name case-insensitively. Names ending
// in "_r" resolve to the reversed form of the base colormap.
func LookupColormap(name string) (*Colormap, error) {
	key := strings.ToLower(name)
	registryMu.RLock()
	c, ok := registry[key]
	registryMu.RUnlock()
	if ok {
		return c, nil
	}
	if base, found := strings.CutSuffix(key, "_r"); found {
		registryMu.RLock()
		c, ok = registry[base]
		registryMu.RUnlock()
		if ok {
			return c.Reversed(), nil
		}
	}
	return nil, fmt.Errorf("scatter: unknown colormap %q", name)
}

// ColormapNames returns the sorted names of all registered colormaps.
func ColormapNames() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for _, c := range registry {
		names = append(names, c.name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

// Truncate builds a new colormap from the [minval, maxval] sub-range of an
// existing one, discretized into n evenly spaced colors. Narrowing the range
// avoids the light and dark extremes of a gradient, which better emulates
// the TOPCAT density style.
//
// minval must be less than maxval and both must lie in [0, 1]; n must be at
// least 1. The result is named "truncated(<name>,<minval>,<maxval>)" with
// the bounds formatted to two decimal places, and reproduces at each
// relative position in its own [0, 1] domain the source color at the
// corresponding position within [minval, maxval].
//
// Example:
//
//	tc, err := scatter.Truncate(scatter.Named("viridis"), 0.2, 0.8, 256)
func Truncate(ref ColormapRef, minval, maxval float64, n int) (*Colormap, error) {
	if ref == nil {
		return nil, fmt.Errorf("scatter: nil colormap reference")
	}
	src, err := ref.Resolve()
	if err != nil {
		return nil, err
	}

	if minval >= maxval {
		return nil, validationErrorf("minval must be less than maxval, got minval=%v, maxval=%v", minval, maxval)
	}
	if minval < 0 || minval > 1 || maxval < 0 || maxval > 1 {
		return nil, validationErrorf("minval and maxval must be between 0 and 1, got minval=%v, maxval=%v", minval, maxval)
	}
	if n < 1 {
		return nil, validationErrorf("n must be at least 1, got %d", n)
	}

	name := fmt.Sprintf("truncated(%s,%.2f,%.2f)", src.Name(), minval, maxval)
	stops := make([]ColorStop, n)
	for i := 0; i < n; i++ {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		stops[i] = ColorStop{
			Offset: frac,
			Color:  src.At(minval + frac*(maxval-minval)),
		}
	}
	return &Colormap{name: name, stops: stops}, nil
}

// ColorBar renders a horizontal strip of a colormap, low values on the
// left, for use as a standalone legend image.
func ColorBar(ref ColormapRef, width, height int) (image.Image, error) {
	if ref == nil {
		return nil, fmt.Errorf("scatter: nil colormap reference")
	}
	cm, err := ref.Resolve()
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, validationErrorf("color bar dimensions must be positive, got %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	denom := float64(width - 1)
	if denom == 0 {
		denom = 1
	}
	for i := 0; i < width; i++ {
		col := cm.At(float64(i) / denom)
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		dc.DrawRectangle(float64(i), 0, 1, float64(height))
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}
