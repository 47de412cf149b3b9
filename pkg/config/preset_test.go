package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

func TestDecode(t *testing.T) {
	src := `
name = "thirds"
diagonals = true
grid_lines_x = 4
blend_mode = "screen"
grid_color_rgb = "255,200,0,128"
golden_triangles = "Set 2 (TR-BL)"

[node]
width = 480
`
	p, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Name != "thirds" || !p.Diagonals || p.GridX != 4 || p.BlendMode != "screen" {
		t.Errorf("decoded %+v", p)
	}
	// untouched keys keep defaults
	if !p.Grid || p.GridY != 3 || p.PreviewLimit != 1024 || p.Node.Height != 520 {
		t.Errorf("defaults lost: %+v", p)
	}
	if p.Node.Width != 480 {
		t.Errorf("node width = %v, want 480", p.Node.Width)
	}
}

func TestDecodeClamps(t *testing.T) {
	src := `
preview_resolution_limit = 100000
line_thickness = 0.0
grid_lines_x = 1
grid_lines_y = 500
perspective_lines = 99
perspective_x = -2.0
perspective_y = 3.0
`
	p, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.PreviewLimit != 8192 {
		t.Errorf("PreviewLimit = %d, want 8192", p.PreviewLimit)
	}
	if p.LineThickness != guides.MinLineWidth {
		t.Errorf("LineThickness = %v, want %v", p.LineThickness, guides.MinLineWidth)
	}
	if p.GridX != 2 || p.GridY != 64 || p.PerspectiveLines != 32 {
		t.Errorf("counts not clamped: %+v", p)
	}
	if p.PerspectiveX != 0 || p.PerspectiveY != 1 {
		t.Errorf("vanishing point not clamped: %v, %v", p.PerspectiveX, p.PerspectiveY)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown key", "grid_lines = 3", "grid_lines"},
		{"unknown table key", "[node]\ndepth = 1", "node.depth"},
		{"bad blend", `blend_mode = "glow"`, "glow"},
		{"bad pyramid", `pyramid = "Sideways"`, "Sideways"},
		{"bad golden", `golden_triangles = "Set 3"`, "Set 3"},
		{"syntax", "grid = ", "parse toml"},
		{"type", `grid_lines_x = "three"`, "parse toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := Default()
	p.Name = "busy"
	p.Diagonals = true
	p.PhiGrid = true
	p.Pyramid = string(guides.PyramidBoth)
	p.GoldenTriangles = string(guides.GoldenSet1)
	p.Perspective = true
	p.PerspectiveX = 0.25
	p.Color = "10,20,30,40"
	p.LineThickness = 2.5
	p.Node.Width = 640

	path := filepath.Join(t.TempDir(), "busy.toml")
	var buf bytes.Buffer
	if err := Save(&buf, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != p {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load missing = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWidgets(t *testing.T) {
	p := Default()
	p.Color = "1,2,3"
	p.Diagonals = true
	w := p.Widgets()

	for _, k := range guides.WidgetKeys {
		if _, ok := w[k]; !ok {
			t.Errorf("widget map missing %q", k)
		}
	}
	if w[guides.KeyColor] != "1,2,3" {
		t.Errorf("color widget = %v", w[guides.KeyColor])
	}

	params := guides.ParamsFromWidgets(w)
	if params != p.Params() {
		t.Errorf("ParamsFromWidgets(Widgets()) = %+v, want %+v", params, p.Params())
	}
	if FromWidgets(w) != p {
		t.Errorf("FromWidgets(Widgets()) = %+v, want %+v", FromWidgets(w), p)
	}
}

func TestFromWidgetsPartial(t *testing.T) {
	p := FromWidgets(map[string]any{
		guides.KeyGrid:         false,
		guides.KeyPyramid:      "Both",
		guides.KeyPreviewLimit: 2048.0,
	})
	if p.Grid || p.Pyramid != "Both" || p.PreviewLimit != 2048 {
		t.Errorf("FromWidgets = %+v", p)
	}
	if p.GridX != 3 || p.BlendMode != "source-over" {
		t.Errorf("defaults lost: %+v", p)
	}
}
