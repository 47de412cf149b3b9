package guides

// Perspective returns a one-point perspective construction: a vertical and a
// horizontal line through the vanishing point, then for every i in
// [0, numLines] four rays from the points at fraction i/numLines along the top,
// bottom, left and right edges into the vanishing point.
//
// vx and vy place the vanishing point as fractions of the width and height.
// numLines below one is treated as one.
func Perspective(r Rect, vx, vy float64, numLines int) []Segment {
	if numLines < 1 {
		numLines = 1
	}
	cx := r.X + r.Width*vx
	cy := r.Y + r.Height*vy

	out := make([]Segment, 0, 2+4*(numLines+1))
	out = append(out,
		Seg(cx, r.Y, cx, r.Bottom()),
		Seg(r.X, cy, r.Right(), cy),
	)

	for i := 0; i <= numLines; i++ {
		t := float64(i) / float64(numLines)
		out = append(out,
			Seg(r.X+r.Width*t, r.Y, cx, cy),
			Seg(r.X+r.Width*t, r.Bottom(), cx, cy),
			Seg(r.X, r.Y+r.Height*t, cx, cy),
			Seg(r.Right(), r.Y+r.Height*t, cx, cy),
		)
	}
	return out
}
