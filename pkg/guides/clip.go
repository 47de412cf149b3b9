package guides

// ClipSegment clips s to r using the Liang–Barsky parametric test. The
// boolean is false when no part of s lies inside r.
func ClipSegment(s Segment, r Rect) (Segment, bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, s.A.X - r.X},
		{dx, r.Right() - s.A.X},
		{-dy, s.A.Y - r.Y},
		{dy, r.Bottom() - s.A.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Segment{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Segment{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Segment{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return Segment{
		A: Point{X: s.A.X + t0*dx, Y: s.A.Y + t0*dy},
		B: Point{X: s.A.X + t1*dx, Y: s.A.Y + t1*dy},
	}, true
}
