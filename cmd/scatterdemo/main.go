// Command scatterdemo renders a TOPCAT-style density scatter plot of
// synthetic Gaussian clusters.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/stat/distuv"

	scatter "github.com/AnnaOG/topcat-scatter-go"
)

func main() {
	var (
		points    = flag.Int("points", 2000, "number of sample points")
		width     = flag.Int("width", 800, "surface width")
		height    = flag.Int("height", 600, "surface height")
		cmap      = flag.String("cmap", "Reds", "colormap name")
		minval    = flag.Float64("min", 0.4, "colormap truncation lower bound")
		maxval    = flag.Float64("max", 0.9, "colormap truncation upper bound")
		bandwidth = flag.Float64("bandwidth", 0, "kernel bandwidth factor (0 = automatic)")
		marker    = flag.Float64("marker", 3, "marker radius in pixels")
		scale     = flag.Int("scale", 0, "output width to resize to (0 = no resize)")
		output    = flag.String("output", "scatter.png", "output file")
		verbose   = flag.Bool("v", false, "enable logging")
	)
	flag.Parse()

	if *verbose {
		scatter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	x, y := sampleClusters(*points)

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)

	opts := []scatter.Option{
		scatter.WithSurface(dc),
		scatter.WithColormap(scatter.Named(*cmap)),
		scatter.WithColormapRange(*minval, *maxval),
		scatter.WithMarkerSize(*marker),
	}
	if *bandwidth > 0 {
		opts = append(opts, scatter.WithBandwidth(*bandwidth))
	}

	sc, err := scatter.Plot(x, y, opts...)
	if err != nil {
		log.Fatalf("plot failed: %v", err)
	}

	img := sc.Surface.Image()
	if *scale > 0 {
		img = imaging.Resize(img, *scale, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, *output); err != nil {
		log.Fatalf("save failed: %v", err)
	}

	log.Printf("density scatter of %d points saved to %s", len(sc.X), *output)
}

// sampleClusters draws points from two overlapping Gaussian blobs, a dense
// core and a broad halo, so the density gradient is visible.
func sampleClusters(n int) (x, y []float64) {
	core := distuv.Normal{Mu: 0, Sigma: 0.5}
	halo := distuv.Normal{Mu: 0, Sigma: 2}

	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			x[i] = halo.Rand()
			y[i] = halo.Rand()
		} else {
			x[i] = core.Rand() + 1
			y[i] = core.Rand() - 0.5
		}
	}
	return x, y
}
