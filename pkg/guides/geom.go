package guides

import "math"

// Point is a position in canvas coordinates (origin top-left, y down).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// near reports whether p and q coincide within eps on both axes.
func (p Point) near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Segment is a line from A to B. Direction carries no meaning.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Seg is shorthand for a segment between (x1, y1) and (x2, y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

// Polyline is an open chain of points drawn as consecutive segments.
type Polyline []Point

// Segments splits the polyline into its consecutive segments.
func (pl Polyline) Segments() []Segment {
	if len(pl) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out = append(out, Segment{A: pl[i-1], B: pl[i]})
	}
	return out
}

// Rect is an axis-aligned rectangle. Width and height are never negative for
// rectangles produced by this package.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the rectangle is too small to draw into.
// Anything narrower or shorter than one unit counts as absent.
func (r Rect) Empty() bool { return !(r.Width >= 1 && r.Height >= 1) }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Ratio returns width divided by height, or 0 for a rectangle without height.
func (r Rect) Ratio() float64 {
	if r.Height == 0 {
		return 0
	}
	return r.Width / r.Height
}

// Contains reports whether p lies inside r, edges included, within eps.
func (r Rect) Contains(p Point, eps float64) bool {
	return p.X >= r.X-eps && p.X <= r.Right()+eps &&
		p.Y >= r.Y-eps && p.Y <= r.Bottom()+eps
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
