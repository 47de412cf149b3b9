package render

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []Format
		wantErr bool
	}{
		{"png", []Format{FormatPNG}, false},
		{"svg,png", []Format{FormatSVG, FormatPNG}, false},
		{" PNG , json ,png", []Format{FormatPNG, FormatJSON}, false},
		{"png,,svg", []Format{FormatPNG, FormatSVG}, false},
		{"", nil, true},
		{"pdf", nil, true},
		{"png,gif", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %s", errors.GetCode(err))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.png", FormatPNG, true},
		{"dir.v2/out.SVG", FormatSVG, true},
		{"plan.json", FormatJSON, true},
		{"out.jpg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRender(t *testing.T) {
	plan := guides.Compute(guides.Request{
		Container:  guides.Rect{Width: 64, Height: 64},
		ImageRatio: 1,
		Params:     guides.DefaultParameters(),
		Style:      guides.DefaultStyle(),
	})

	magic := map[Format][]byte{
		FormatPNG:  []byte("\x89PNG"),
		FormatSVG:  []byte("<svg"),
		FormatJSON: []byte("{"),
	}
	for _, f := range Formats {
		data, err := Render(plan, f)
		if err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
		if !bytes.HasPrefix(data, magic[f]) {
			t.Errorf("Render(%s) starts with %q", f, data[:min(len(data), 8)])
		}
	}

	if _, err := Render(plan, "bmp"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(bmp) error = %v", err)
	}
}
