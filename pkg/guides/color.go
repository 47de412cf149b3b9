package guides

import (
	"strconv"
	"strings"
)

// Color is a stroke color with 8-bit channels and a fractional alpha.
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// DefaultColor is the mid-gray used for channels that fail to parse.
var DefaultColor = Color{R: 192, G: 192, B: 192, A: 1.0}

// String renders the color as a CSS rgba() value.
func (c Color) String() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(c.A, 'g', -1, 64) + ")"
}

// RGBA returns the channels scaled to [0, 1], the form rasterizers expect.
func (c Color) RGBA() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, c.A
}

// ParseColor converts a comma-separated "r,g,b" or "r,g,b,a" string into a
// Color. It never fails:
//
//   - a channel that is missing or not numeric falls back to [DefaultColor]
//     on its own, the others still parse
//   - a numeric fourth value is alpha on a 0..255 scale; otherwise alpha is 1
//   - anything that is not a string yields DefaultColor
func ParseColor(v any) Color {
	s, ok := v.(string)
	if !ok {
		return DefaultColor
	}
	return ParseColorString(s)
}

// ParseColorString is [ParseColor] for a value already known to be a string.
func ParseColorString(s string) Color {
	parts := strings.Split(s, ",")
	channel := func(i int, def uint8) uint8 {
		if i >= len(parts) {
			return def
		}
		n, ok := leadingInt(parts[i])
		if !ok {
			return def
		}
		return clampByte(n)
	}

	c := Color{
		R: channel(0, DefaultColor.R),
		G: channel(1, DefaultColor.G),
		B: channel(2, DefaultColor.B),
		A: 1.0,
	}
	if len(parts) > 3 {
		if n, ok := leadingInt(parts[3]); ok {
			c.A = clampUnit(float64(n) / 255.0)
		}
	}
	return c
}

// leadingInt reads an optionally signed run of decimal digits at the start of
// s after trimming spaces, ignoring whatever follows ("12px" is 12).
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflowing runs saturate rather than fail.
		if s[0] == '-' {
			return -1 << 31, true
		}
		return 1<<31 - 1, true
	}
	return n, true
}

func clampByte(n int) uint8 {
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}

func clampUnit(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
