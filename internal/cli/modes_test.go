package cli

import (
	"strings"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/guides"
)

func TestModesTableListsEveryMode(t *testing.T) {
	out := modesTable()
	for _, m := range guides.BlendModes {
		if !strings.Contains(out, string(m)) {
			t.Errorf("modes table missing blend mode %q", m)
		}
	}
	for _, m := range guides.PyramidModes {
		if !strings.Contains(out, string(m)) {
			t.Errorf("modes table missing pyramid mode %q", m)
		}
	}
	for _, m := range guides.GoldenModes {
		if !strings.Contains(out, string(m)) {
			t.Errorf("modes table missing golden mode %q", m)
		}
	}
}

func TestModeNames(t *testing.T) {
	if got := len(blendModeNames()); got != 17 {
		t.Errorf("blendModeNames() has %d entries, want 17", got)
	}
	if got := pyramidModeNames(); got[0] != "Off" || len(got) != 4 {
		t.Errorf("pyramidModeNames() = %v", got)
	}
	if got := goldenModeNames(); got[0] != "Off" || len(got) != 4 {
		t.Errorf("goldenModeNames() = %v", got)
	}
}
