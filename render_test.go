package scatter

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func testData() (x, y []float64) {
	return []float64{0, 1, 2, 0.5, 1.5, 1, 0.9, 1.1},
		[]float64{0, 1, 0, 1.5, 0.5, 0.9, 1, 1.1}
}

func TestPlotReturnsHandle(t *testing.T) {
	x, y := testData()
	dc := gg.NewContext(120, 90)

	sc, err := Plot(x, y, WithSurface(dc))
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if sc == nil {
		t.Fatal("Plot returned a nil handle")
	}
	if sc.Surface != dc {
		t.Error("handle does not reference the supplied surface")
	}
	if len(sc.X) != len(x) || len(sc.Y) != len(x) || len(sc.Density) != len(x) {
		t.Fatalf("handle holds %d/%d/%d points, want %d", len(sc.X), len(sc.Y), len(sc.Density), len(x))
	}
	for i := 1; i < len(sc.Density); i++ {
		if sc.Density[i] < sc.Density[i-1] {
			t.Fatalf("handle density not sorted at %d", i)
		}
	}
	if sc.MinDensity != sc.Density[0] || sc.MaxDensity != sc.Density[len(sc.Density)-1] {
		t.Errorf("density bounds [%v, %v] disagree with sorted densities [%v, %v]",
			sc.MinDensity, sc.MaxDensity, sc.Density[0], sc.Density[len(sc.Density)-1])
	}
	if sc.Colormap == nil || sc.Colormap.Name() != "truncated(Reds,0.40,0.90)" {
		t.Errorf("handle colormap = %v, want default truncated Reds", sc.Colormap)
	}
}

func TestPlotDrawsOnSurface(t *testing.T) {
	x, y := testData()
	dc := gg.NewContext(80, 80)
	dc.ClearWithColor(gg.White)

	if _, err := Plot(x, y, WithSurface(dc), WithMarkerSize(5)); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	img := dc.Image()
	b := img.Bounds()
	touched := 0
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			r, g, bl, _ := img.At(px, py).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				touched++
			}
		}
	}
	if touched == 0 {
		t.Fatal("surface is still blank after Plot")
	}
}

func TestPlotDefaultSurface(t *testing.T) {
	SetDefaultSurface(nil)
	defer SetDefaultSurface(nil)

	x, y := testData()
	sc, err := Plot(x, y)
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if sc.Surface != DefaultSurface() {
		t.Error("Plot without WithSurface should draw on the default surface")
	}
	if sc.Surface.Width() != defaultSurfaceWidth || sc.Surface.Height() != defaultSurfaceHeight {
		t.Errorf("default surface is %dx%d, want %dx%d",
			sc.Surface.Width(), sc.Surface.Height(), defaultSurfaceWidth, defaultSurfaceHeight)
	}
}

func TestPlotWithSurfaceSkipsDefault(t *testing.T) {
	sentinel := gg.NewContext(10, 10)
	SetDefaultSurface(sentinel)
	defer SetDefaultSurface(nil)

	x, y := testData()
	own := gg.NewContext(60, 60)
	sc, err := Plot(x, y, WithSurface(own))
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if sc.Surface != own {
		t.Error("Plot ignored the supplied surface")
	}
	if DefaultSurface() != sentinel {
		t.Error("Plot replaced the default surface it should not have touched")
	}
}

func TestPlotPropagatesValidation(t *testing.T) {
	dc := gg.NewContext(40, 40)
	x, y := testData()

	tests := []struct {
		name string
		x, y []float64
		opts []Option
	}{
		{"mismatched lengths", []float64{1, 2}, []float64{1}, nil},
		{"too few points", []float64{1}, []float64{1}, nil},
		{"bad bandwidth", x, y, []Option{WithBandwidth(-1)}},
		{"bad colormap range", x, y, []Option{WithColormapRange(0.9, 0.4)}},
		{"bad step count", x, y, []Option{WithColormapSteps(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithSurface(dc)}, tt.opts...)
			_, err := Plot(tt.x, tt.y, opts...)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a *ValidationError", err)
			}
		})
	}
}

func TestPlotUnknownColormap(t *testing.T) {
	x, y := testData()
	dc := gg.NewContext(40, 40)

	_, err := Plot(x, y, WithSurface(dc), WithColormap(Named("no-such-map")))
	if err == nil {
		t.Fatal("unknown colormap should fail")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("registry failure %v should not be a ValidationError", err)
	}
}

func TestPlotEdgeColor(t *testing.T) {
	x, y := testData()
	dc := gg.NewContext(80, 80)
	dc.ClearWithColor(gg.White)

	_, err := Plot(x, y,
		WithSurface(dc),
		WithMarkerSize(6),
		WithEdgeColor(gg.Black),
		WithEdgeWidth(2),
	)
	if err != nil {
		t.Fatalf("Plot with edge color failed: %v", err)
	}

	// Edged markers must leave some dark outline pixels behind.
	img := dc.Image()
	b := img.Bounds()
	dark := 0
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			if c.R < 80 && c.G < 80 && c.B < 80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("no outline pixels found for edged markers")
	}
}

func TestFitViewport(t *testing.T) {
	xs := []float64{0, 10}
	ys := []float64{0, 20}
	vp := fitViewport(xs, ys, 200, 100)

	// Data min lands on the lower-left margin, data max on the upper-right.
	px, py := vp.apply(0, 0)
	if math.Abs(px-10) > 1e-9 || math.Abs(py-95) > 1e-9 {
		t.Errorf("min corner maps to (%v, %v), want (10, 95)", px, py)
	}
	px, py = vp.apply(10, 20)
	if math.Abs(px-190) > 1e-9 || math.Abs(py-5) > 1e-9 {
		t.Errorf("max corner maps to (%v, %v), want (190, 5)", px, py)
	}
}

func TestFitViewportDegenerate(t *testing.T) {
	// All points identical: the padded viewport must still be finite and
	// put the point mid-surface.
	xs := []float64{4, 4, 4}
	ys := []float64{7, 7, 7}
	vp := fitViewport(xs, ys, 100, 100)

	px, py := vp.apply(4, 7)
	if math.Abs(px-50) > 1e-9 || math.Abs(py-50) > 1e-9 {
		t.Errorf("degenerate data maps to (%v, %v), want surface center (50, 50)", px, py)
	}
}
