package guides

import "testing"

func TestClipSegment(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name   string
		in     Segment
		want   Segment
		wantOK bool
	}{
		{"inside", Seg(1, 1, 9, 9), Seg(1, 1, 9, 9), true},
		{"crossing horizontally", Seg(-5, 5, 15, 5), Seg(0, 5, 10, 5), true},
		{"crossing diagonally", Seg(-10, -10, 20, 20), Seg(0, 0, 10, 10), true},
		{"one end outside", Seg(5, 5, 5, 20), Seg(5, 5, 5, 10), true},
		{"outside left", Seg(-5, 0, -1, 10), Segment{}, false},
		{"outside above", Seg(0, -3, 10, -1), Segment{}, false},
		{"misses a corner", Seg(8, -5, 15, 2), Segment{}, false},
		{"on the edge", Seg(0, 0, 10, 0), Seg(0, 0, 10, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClipSegment(tt.in, r)
			if ok != tt.wantOK {
				t.Fatalf("ClipSegment() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (!got.A.near(tt.want.A, 1e-9) || !got.B.near(tt.want.B, 1e-9)) {
				t.Errorf("ClipSegment() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
