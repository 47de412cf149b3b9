package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to png", "", []string{"png"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "png,svg,json", []string{"png", "svg", "json"}},
		{"spaces and case", " PNG , Svg ", []string{"png", "svg"}},
		{"empty entries dropped", "png,,json", []string{"png", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatsDoesNotAliasDefaults(t *testing.T) {
	got := parseFormats("")
	got[0] = "svg"
	if pipeline.DefaultFormats[0] != "png" {
		t.Fatalf("DefaultFormats modified through parseFormats result")
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid png", []string{"png"}, false},
		{"valid svg", []string{"svg"}, false},
		{"valid json", []string{"json"}, false},
		{"valid all", []string{"png", "svg", "json"}, false},
		{"pdf not supported", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "photo.jpg", "photo.guides"},
		{"", "dir/photo.png", "dir/photo.guides"},
		{"out.png", "photo.jpg", "out"},
		{"out.svg", "photo.jpg", "out"},
		{"out", "photo.jpg", "out"},
		{"out.v2", "photo.jpg", "out.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		input   string
		output  string
		want    map[string]string
	}{
		{
			name:    "single format explicit output",
			formats: []string{"png"},
			input:   "photo.jpg",
			output:  "result.png",
			want:    map[string]string{"png": "result.png"},
		},
		{
			name:    "single format derived from input",
			formats: []string{"svg"},
			input:   "photo.jpg",
			want:    map[string]string{"svg": "photo.guides.svg"},
		},
		{
			name:    "multiple formats share base",
			formats: []string{"png", "json"},
			input:   "photo.jpg",
			output:  "out/result.png",
			want:    map[string]string{"png": "out/result.png", "json": "out/result.json"},
		},
		{
			name:    "single format output without extension",
			formats: []string{"png"},
			output:  "result",
			want:    map[string]string{"png": "result.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPaths(tt.formats, tt.input, tt.output)
			if len(got) != len(tt.want) {
				t.Fatalf("artifactPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("artifactPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestRenderCommandWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 200, 100)
	base := filepath.Join(dir, "out")

	_, err := runCLI(t, nil, "render", input, "-o", base, "-f", "png,svg,json", "--diagonals", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatalf("png artifact: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png artifact: %v", err)
	}
	// 200x100 preview in a 320-wide node: 300x150 draw area, height follows.
	if got := img.Bounds().Dx(); got != 320 {
		t.Errorf("png width = %d, want 320", got)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("svg artifact: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg artifact has no <svg> element")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json artifact: %v", err)
	}
}

func TestRenderCommandPlaceholder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.svg")
	if _, err := runCLI(t, nil, "render", "-o", out, "-f", "svg", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<text")) {
		t.Error("placeholder render should contain a <text> label")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing image", []string{"render", filepath.Join(dir, "nope.png")}, errors.ErrCodeFileNotFound},
		{"no image and no output", []string{"render"}, errors.ErrCodeInvalidInput},
		{"bad format", []string{"render", "-o", "x", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad blend mode", []string{"render", "-o", "x", "--blend-mode", "glow"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, nil, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}
