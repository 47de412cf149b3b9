package guides

import "math"

// Fit returns the largest rectangle with the given aspect ratio (width over
// height) that fits inside container, centered in it.
//
// The boolean is false when there is nothing to draw: the container is
// degenerate (see [Rect.Empty]) or the ratio is not a positive finite number.
func Fit(container Rect, imageRatio float64) (Rect, bool) {
	if container.Empty() {
		return Rect{}, false
	}
	if !(imageRatio > 0) || math.IsInf(imageRatio, 0) {
		return Rect{}, false
	}

	w, h := container.Width, container.Height
	if imageRatio > container.Ratio() {
		h = container.Width / imageRatio
	} else {
		w = container.Height * imageRatio
	}

	return Rect{
		X:      container.X + (container.Width-w)/2,
		Y:      container.Y + (container.Height-h)/2,
		Width:  w,
		Height: h,
	}, true
}

// AspectRatio returns width/height for pixel dimensions, or 0 when either
// dimension is not positive.
func AspectRatio(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return float64(width) / float64(height)
}
