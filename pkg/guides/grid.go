package guides

// Phi is the golden ratio as used for guide placement.
const Phi = 1.61803398875

// Grid returns xLines-1 vertical and yLines-1 horizontal lines that divide r
// into equal columns and rows. Counts below two produce no lines on that axis.
func Grid(r Rect, xLines, yLines int) []Segment {
	var out []Segment
	for i := 1; i < xLines; i++ {
		x := r.X + r.Width/float64(xLines)*float64(i)
		out = append(out, Seg(x, r.Y, x, r.Bottom()))
	}
	for i := 1; i < yLines; i++ {
		y := r.Y + r.Height/float64(yLines)*float64(i)
		out = append(out, Seg(r.X, y, r.Right(), y))
	}
	return out
}

// Diagonals returns both corner-to-corner lines of r.
func Diagonals(r Rect) []Segment {
	return []Segment{
		Seg(r.X, r.Y, r.Right(), r.Bottom()),
		Seg(r.X, r.Bottom(), r.Right(), r.Y),
	}
}

// PhiGrid returns two vertical and two horizontal lines at the golden
// divisions 1/(φ+1) and φ/(φ+1) of the width and height.
func PhiGrid(r Rect) []Segment {
	shortX := r.Width / (Phi + 1)
	longX := shortX * Phi
	shortY := r.Height / (Phi + 1)
	longY := shortY * Phi

	return []Segment{
		Seg(r.X+shortX, r.Y, r.X+shortX, r.Bottom()),
		Seg(r.X+longX, r.Y, r.X+longX, r.Bottom()),
		Seg(r.X, r.Y+shortY, r.Right(), r.Y+shortY),
		Seg(r.X, r.Y+longY, r.Right(), r.Y+longY),
	}
}
