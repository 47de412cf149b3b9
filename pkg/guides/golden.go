package guides

import (
	"math"
	"strings"
)

// GoldenMode selects which golden-triangle sets are drawn.
type GoldenMode string

// Golden-triangle modes as offered by the host widget. Matching is by prefix,
// so labels may carry a suffix describing the diagonal.
const (
	GoldenOff  GoldenMode = "Off"
	GoldenBoth GoldenMode = "Both"
	GoldenSet1 GoldenMode = "Set 1 (TL-BR)"
	GoldenSet2 GoldenMode = "Set 2 (TR-BL)"
)

// GoldenModes lists the modes in widget order.
var GoldenModes = []GoldenMode{GoldenOff, GoldenBoth, GoldenSet1, GoldenSet2}

// Valid reports whether m is Off or selects at least one set.
func (m GoldenMode) Valid() bool {
	return m == GoldenOff || m.set1() || m.set2()
}

func (m GoldenMode) set1() bool {
	return strings.HasPrefix(string(m), "Both") || strings.HasPrefix(string(m), "Set 1")
}

func (m GoldenMode) set2() bool {
	return strings.HasPrefix(string(m), "Both") || strings.HasPrefix(string(m), "Set 2")
}

const (
	// slopeFlat and slopeSteep bound the slopes handled by general
	// intersection; beyond them a line is taken as horizontal or vertical.
	slopeFlat  = 1e-9
	slopeSteep = 1e9

	// pointEps is the distance under which two boundary hits are one point.
	pointEps = 1e-9
)

// GoldenTriangles returns, for each diagonal enabled by mode, the diagonal
// itself and the two lines perpendicular to it through the points above
// x = w/(φ+1) and x = wφ/(φ+1). The perpendiculars run from boundary to
// boundary of r; unknown modes produce nothing.
func GoldenTriangles(r Rect, mode GoldenMode) []Segment {
	w, h := r.Width, r.Height
	if w <= 0 || h <= 0 {
		return nil
	}
	origin := r.Origin()
	x1 := w / (Phi + 1)
	x2 := w * Phi / (Phi + 1)

	var out []Segment
	emit := func(pt Point, m float64) {
		ends := boundaryPoints(pt, m, w, h)
		if len(ends) >= 2 {
			out = append(out, Segment{A: ends[0].Add(origin), B: ends[1].Add(origin)})
		}
	}

	if mode.set1() {
		out = append(out, Seg(r.X, r.Y, r.Right(), r.Bottom()))
		m := h / w
		perp := -w / h
		emit(Pt(x1, m*x1), perp)
		emit(Pt(x2, m*x2), perp)
	}

	if mode.set2() {
		out = append(out, Seg(r.Right(), r.Y, r.X, r.Bottom()))
		m := -h / w
		perp := w / h
		emit(Pt(x1, m*(x1-w)), perp)
		emit(Pt(x2, m*(x2-w)), perp)
	}

	return out
}

// boundaryPoints intersects the line through p with slope m against the
// edges of the box [0,w]×[0,h] and returns the distinct hits in the order
// left, right, top, bottom. Near-flat and near-vertical slopes short-circuit
// to a full-width or full-height line.
func boundaryPoints(p Point, m, w, h float64) []Point {
	if math.Abs(m) < slopeFlat {
		return []Point{{X: 0, Y: p.Y}, {X: w, Y: p.Y}}
	}
	if math.Abs(m) > slopeSteep {
		return []Point{{X: p.X, Y: 0}, {X: p.X, Y: h}}
	}

	candidates := make([]Point, 0, 4)
	if y := m*(0-p.X) + p.Y; y >= 0 && y <= h {
		candidates = append(candidates, Point{X: 0, Y: y})
	}
	if y := m*(w-p.X) + p.Y; y >= 0 && y <= h {
		candidates = append(candidates, Point{X: w, Y: y})
	}
	if x := (0-p.Y)/m + p.X; x >= 0 && x <= w {
		candidates = append(candidates, Point{X: x, Y: 0})
	}
	if x := (h-p.Y)/m + p.X; x >= 0 && x <= w {
		candidates = append(candidates, Point{X: x, Y: h})
	}

	return dedupe(candidates, pointEps)
}

// dedupe drops points within eps of an earlier point, keeping first-seen order.
func dedupe(pts []Point, eps float64) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		seen := false
		for _, q := range out {
			if p.near(q, eps) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}
