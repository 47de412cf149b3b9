package guides

import (
	"math"
	"strconv"
)

func boolWidget(w map[string]any, key string, def bool) bool {
	v, ok := w[key]
	if !ok {
		return def
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func intWidget(w map[string]any, key string, def int) int {
	v, ok := w[key]
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		if n, ok := leadingInt(s); ok {
			return n
		}
		return def
	}
	f, ok := number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}

func floatWidget(w map[string]any, key string, def float64) float64 {
	v, ok := w[key]
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	}
	f, ok := number(v)
	if !ok || math.IsNaN(f) {
		return def
	}
	return f
}

func stringWidget(w map[string]any, key string, def string) string {
	v, ok := w[key]
	if !ok {
		return def
	}
	s, _ := v.(string)
	return s
}

// number widens the numeric kinds a widget map may carry after JSON or TOML
// decoding.
func number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func colorWidget(c Color) string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.Itoa(int(math.Round(c.A*255)))
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
