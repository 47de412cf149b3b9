package sink

import (
	"github.com/gogpu/gg"

	"github.com/quasiblob/compositionguides/pkg/guides"
)

// rasterBlend maps a composite operation to the rasterizer's blend mode. The
// boolean is false when the mode has no raster equivalent and source-over is
// used instead.
func rasterBlend(m guides.BlendMode) (gg.BlendMode, bool) {
	switch m {
	case guides.BlendSourceOver, "":
		return gg.BlendNormal, true
	case guides.BlendMultiply:
		return gg.BlendMultiply, true
	case guides.BlendScreen:
		return gg.BlendScreen, true
	case guides.BlendOverlay:
		return gg.BlendOverlay, true
	}
	return gg.BlendNormal, false
}

// svgBlend returns the CSS mix-blend-mode for m. "lighter" is plus-lighter
// in CSS; unknown modes fall back to normal.
func svgBlend(m guides.BlendMode) string {
	switch {
	case m == guides.BlendSourceOver || m == "":
		return "normal"
	case m == guides.BlendLighter:
		return "plus-lighter"
	case m.Valid():
		return string(m)
	}
	return "normal"
}

// NativeBlend reports whether PNG output composites m natively.
func NativeBlend(m guides.BlendMode) bool {
	_, ok := rasterBlend(m)
	return ok
}
