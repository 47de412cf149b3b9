package guides

// PyramidMode selects which pyramid triangles are drawn.
type PyramidMode string

// Pyramid modes as offered by the host widget.
const (
	PyramidOff       PyramidMode = "Off"
	PyramidUpDown    PyramidMode = "Up / Down"
	PyramidLeftRight PyramidMode = "Left / Right"
	PyramidBoth      PyramidMode = "Both"
)

// PyramidModes lists the modes in widget order.
var PyramidModes = []PyramidMode{PyramidOff, PyramidUpDown, PyramidLeftRight, PyramidBoth}

// Valid reports whether m is one of [PyramidModes].
func (m PyramidMode) Valid() bool {
	for _, v := range PyramidModes {
		if v == m {
			return true
		}
	}
	return false
}

func (m PyramidMode) upDown() bool    { return m == PyramidUpDown || m == PyramidBoth }
func (m PyramidMode) leftRight() bool { return m == PyramidLeftRight || m == PyramidBoth }

// PyramidPolylines returns the pyramid outlines for mode, each one a two-leg
// polyline from a corner over an edge midpoint to the adjacent corner.
//
// "Up / Down" yields the upward triangle (apex top-center) and the downward
// one (apex bottom-center). "Left / Right" yields the mirrored pair with apexes
// on the right and left edges. "Both" yields all four. Any other mode,
// including unrecognized ones, yields nothing.
func PyramidPolylines(r Rect, mode PyramidMode) []Polyline {
	var out []Polyline
	if mode.upDown() {
		out = append(out,
			Polyline{Pt(r.X, r.Bottom()), Pt(r.X+r.Width/2, r.Y), Pt(r.Right(), r.Bottom())},
			Polyline{Pt(r.X, r.Y), Pt(r.X+r.Width/2, r.Bottom()), Pt(r.Right(), r.Y)},
		)
	}
	if mode.leftRight() {
		out = append(out,
			Polyline{Pt(r.X, r.Y), Pt(r.Right(), r.Y+r.Height/2), Pt(r.X, r.Bottom())},
			Polyline{Pt(r.Right(), r.Y), Pt(r.X, r.Y+r.Height/2), Pt(r.Right(), r.Bottom())},
		)
	}
	return out
}

// Pyramid returns the segments of [PyramidPolylines]. Each polyline has two
// legs, so the result holds twice as many segments as polylines: 4 for one
// direction and 8 for [PyramidBoth].
func Pyramid(r Rect, mode PyramidMode) []Segment {
	var out []Segment
	for _, pl := range PyramidPolylines(r, mode) {
		out = append(out, pl.Segments()...)
	}
	return out
}
