package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/quasiblob/compositionguides/pkg/config"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

func parseWidgetFlags(t *testing.T, args ...string) (*widgetFlags, *cobra.Command) {
	t.Helper()
	f := newWidgetFlags()
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f, cmd
}

func TestFlagName(t *testing.T) {
	if got := flagName(guides.KeyGridX); got != "grid-lines-x" {
		t.Errorf("flagName(%q) = %q", guides.KeyGridX, got)
	}
	if got := flagName(guides.KeyColor); got != "grid-color-rgb" {
		t.Errorf("flagName(%q) = %q", guides.KeyColor, got)
	}
}

func TestWidgetFlagsEveryWidgetHasAFlag(t *testing.T) {
	_, cmd := parseWidgetFlags(t)
	for _, key := range guides.WidgetKeys {
		if cmd.Flags().Lookup(flagName(key)) == nil {
			t.Errorf("no flag for widget %s", key)
		}
	}
}

func TestWidgetFlagsDefaults(t *testing.T) {
	f, cmd := parseWidgetFlags(t)
	p, err := f.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default()
	if p.Params() != want.Params() {
		t.Errorf("params = %+v, want %+v", p.Params(), want.Params())
	}
	if p.Node != want.Node {
		t.Errorf("node = %+v, want %+v", p.Node, want.Node)
	}
	if f.fixedSize() {
		t.Error("fixedSize() = true without --fixed or --height")
	}
}

func TestWidgetFlagsOverridePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	preset := `name = "mine"
grid_lines_x = 5
diagonals = true
pyramid = "Both"

[node]
width = 480
`
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatal(err)
	}

	f, cmd := parseWidgetFlags(t, "--preset", path, "--grid-lines-x", "7", "--phi-grid", "--height", "600")
	p, err := f.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if p.GridX != 7 {
		t.Errorf("GridX = %d, want flag value 7", p.GridX)
	}
	if !p.Diagonals || p.Pyramid != "Both" {
		t.Errorf("preset values lost: diagonals=%v pyramid=%q", p.Diagonals, p.Pyramid)
	}
	if !p.PhiGrid {
		t.Error("PhiGrid flag not applied")
	}
	if p.Name != "mine" || p.Node.Width != 480 || p.Node.Height != 600 {
		t.Errorf("name/node = %q %+v", p.Name, p.Node)
	}
	if !f.fixedSize() {
		t.Error("--height should fix the node size")
	}
}

func TestWidgetFlagsClamp(t *testing.T) {
	f, cmd := parseWidgetFlags(t, "--grid-lines-x", "500", "--perspective-x", "-3", "--preview-resolution-limit", "1000")
	p, err := f.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if p.GridX != guides.MaxGridLines {
		t.Errorf("GridX = %d, want %d", p.GridX, guides.MaxGridLines)
	}
	if p.PerspectiveX != 0 {
		t.Errorf("PerspectiveX = %g, want 0", p.PerspectiveX)
	}
	if p.PreviewLimit != 1024 {
		t.Errorf("PreviewLimit = %d, want 1024", p.PreviewLimit)
	}
}
