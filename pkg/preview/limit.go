package preview

// Resolution limit range of the preview_resolution_limit widget.
const (
	MinLimit     = 256
	MaxLimit     = 8192
	LimitStep    = 64
	DefaultLimit = 1024
)

// Limit snaps v to the widget's grid: clamped to [MinLimit, MaxLimit] and
// rounded to the nearest LimitStep above MinLimit.
func Limit(v int) int {
	if v <= MinLimit {
		return MinLimit
	}
	if v >= MaxLimit {
		return MaxLimit
	}
	steps := (v - MinLimit + LimitStep/2) / LimitStep
	return MinLimit + steps*LimitStep
}

// Size returns the preview dimensions for a w×h source under limit.
// Images already within the limit keep their size. Otherwise the longer side
// becomes limit and the shorter side is scaled and truncated; a square image
// scales by height.
func Size(w, h, limit int) (int, int) {
	if w <= 0 || h <= 0 || max(w, h) <= limit {
		return w, h
	}
	if w > h {
		return limit, atLeastOne(int(float64(h) * (float64(limit) / float64(w))))
	}
	return atLeastOne(int(float64(w) * (float64(limit) / float64(h)))), limit
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
