package preview

import "testing"

func TestLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 256},
		{256, 256},
		{300, 320},
		{287, 256},
		{288, 320},
		{1024, 1024},
		{1050, 1024},
		{8192, 8192},
		{10000, 8192},
	}
	for _, tt := range tests {
		if got := Limit(tt.in); got != tt.want {
			t.Errorf("Limit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, limit  int
		wantW, wantH int
	}{
		{"within limit", 800, 600, 1024, 800, 600},
		{"exactly at limit", 1024, 512, 1024, 1024, 512},
		{"landscape", 4000, 3000, 1024, 1024, 768},
		{"portrait", 3000, 4000, 1024, 768, 1024},
		{"square scales by height", 2000, 2000, 1024, 1024, 1024},
		{"truncates", 3000, 1001, 1000, 1000, 333},
		{"thin strip keeps a pixel", 100000, 10, 256, 256, 1},
		{"empty", 0, 0, 256, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Size(tt.w, tt.h, tt.limit)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size(%d, %d, %d) = %d×%d, want %d×%d", tt.w, tt.h, tt.limit, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
