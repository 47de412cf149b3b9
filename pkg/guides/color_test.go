package guides

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Color
	}{
		{"rgb", "255,0,0", Color{255, 0, 0, 1.0}},
		{"rgba", "255,0,0,128", Color{255, 0, 0, 128.0 / 255.0}},
		{"opaque rgba", "255,255,255,255", Color{255, 255, 255, 1.0}},
		{"bad first channel", "abc,0,0", Color{192, 0, 0, 1.0}},
		{"missing channels", "10,20", Color{10, 20, 192, 1.0}},
		{"empty string", "", Color{192, 192, 192, 1.0}},
		{"spaces and suffixes", " 12 , 34px, 56 ", Color{12, 34, 56, 1.0}},
		{"bad alpha keeps opaque", "1,2,3,x", Color{1, 2, 3, 1.0}},
		{"trailing comma", "1,2,3,", Color{1, 2, 3, 1.0}},
		{"out of range clamps", "300,-4,0,999", Color{255, 0, 0, 1.0}},
		{"non-string", 42, DefaultColor},
		{"nil", nil, DefaultColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.input)
			if got.R != tt.want.R || got.G != tt.want.G || got.B != tt.want.B || !approx(got.A, tt.want.A, 1e-12) {
				t.Errorf("ParseColor(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorHalfAlpha(t *testing.T) {
	got := ParseColor("255,0,0,128")
	if !approx(got.A, 0.502, 1e-3) {
		t.Errorf("alpha = %v, want ~0.502", got.A)
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{255, 0, 0, 1}, "rgba(255, 0, 0, 1)"},
		{DefaultColor, "rgba(192, 192, 192, 1)"},
		{Color{0, 0, 0, 0.5}, "rgba(0, 0, 0, 0.5)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{" -7 ", -7, true},
		{"+3", 3, true},
		{"12.9", 12, true},
		{"x1", 0, false},
		{"-", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("leadingInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
