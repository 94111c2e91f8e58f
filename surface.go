package scatter

import (
	"sync"

	"github.com/gogpu/gg"
)

// Dimensions of the lazily created default surface.
const (
	defaultSurfaceWidth  = 800
	defaultSurfaceHeight = 600
)

var (
	defaultSurfaceMu sync.Mutex
	defaultSurface   *gg.Context
)

// DefaultSurface returns the process-wide surface Plot draws on when no
// WithSurface option is given, creating a white 800x600 canvas on first
// use. The surface's lifecycle belongs to the caller: the library never
// clears or replaces it on its own.
//
// DefaultSurface is safe for concurrent use, but drawing on the returned
// context from multiple goroutines requires caller-side synchronization.
func DefaultSurface() *gg.Context {
	defaultSurfaceMu.Lock()
	defer defaultSurfaceMu.Unlock()
	if defaultSurface == nil {
		dc := gg.NewContext(defaultSurfaceWidth, defaultSurfaceHeight)
		dc.ClearWithColor(gg.White)
		defaultSurface = dc
	}
	return defaultSurface
}

// SetDefaultSurface replaces the process-wide default surface. Pass nil to
// discard the current one; the next DefaultSurface call then creates a
// fresh canvas.
func SetDefaultSurface(dc *gg.Context) {
	defaultSurfaceMu.Lock()
	defaultSurface = dc
	defaultSurfaceMu.Unlock()
}
