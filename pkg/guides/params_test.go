package guides

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParamsFromWidgetsDefaults(t *testing.T) {
	got := ParamsFromWidgets(map[string]any{})
	if want := DefaultParameters(); got != want {
		t.Errorf("ParamsFromWidgets({}) = %+v, want %+v", got, want)
	}
}

func TestParamsFromWidgetsJSON(t *testing.T) {
	// Values as they arrive from a JSON widget dump: numbers are float64.
	raw := `{
		"grid": false,
		"grid_lines_x": 4,
		"grid_lines_y": 2,
		"diagonals": true,
		"phi_grid": 1,
		"pyramid": "Left / Right",
		"golden_triangles": "Set 2 (TR-BL)",
		"perspective": true,
		"perspective_lines": 12,
		"perspective_x": 0.25,
		"perspective_y": "0.75"
	}`
	var w map[string]any
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatal(err)
	}

	got := ParamsFromWidgets(w)
	want := Parameters{
		GridX:            4,
		GridY:            2,
		Diagonals:        true,
		PhiGrid:          true,
		Pyramid:          PyramidLeftRight,
		GoldenTriangles:  GoldenSet2,
		Perspective:      true,
		PerspectiveLines: 12,
		PerspectiveX:     0.25,
		PerspectiveY:     0.75,
	}
	if got != want {
		t.Errorf("ParamsFromWidgets() = %+v, want %+v", got, want)
	}
}

func TestParamsFromWidgetsLooseValues(t *testing.T) {
	w := map[string]any{
		KeyGrid:      "",
		KeyGridX:     "7 lines",
		KeyGridY:     "many",
		KeyDiagonals: nil,
		KeyPyramid:   nil,
		KeyPhiGrid:   int64(0),
	}
	got := ParamsFromWidgets(w)
	if got.Grid || got.Diagonals || got.PhiGrid {
		t.Errorf("flags should be off: %+v", got)
	}
	if got.GridX != 7 {
		t.Errorf("GridX = %d, want 7", got.GridX)
	}
	if got.GridY != DefaultParameters().GridY {
		t.Errorf("GridY = %d, want default", got.GridY)
	}
	if got.Pyramid != "" {
		t.Errorf("Pyramid = %q, want empty", got.Pyramid)
	}
	for _, name := range got.Enabled() {
		if name == "pyramid" {
			t.Error("an empty pyramid mode must not enable the guide")
		}
	}
}

func TestStyleFromWidgets(t *testing.T) {
	tests := []struct {
		name string
		w    map[string]any
		want Style
	}{
		{
			name: "defaults",
			w:    map[string]any{},
			want: DefaultStyle(),
		},
		{
			name: "explicit",
			w: map[string]any{
				KeyColor:         "255,0,0,128",
				KeyLineThickness: 2.5,
				KeyBlendMode:     "multiply",
			},
			want: Style{Color: Color{255, 0, 0, 128.0 / 255.0}, LineWidth: 2.5, Blend: BlendMultiply},
		},
		{
			name: "zero thickness and empty blend fall back",
			w: map[string]any{
				KeyColor:         12,
				KeyLineThickness: 0,
				KeyBlendMode:     "",
			},
			want: Style{Color: DefaultColor, LineWidth: 1, Blend: BlendSourceOver},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleFromWidgets(tt.w); got != tt.want {
				t.Errorf("StyleFromWidgets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWidgetsRoundTrip(t *testing.T) {
	p := allOn()
	p.PerspectiveX = 0.3
	s := Style{Color: Color{10, 20, 30, 1}, LineWidth: 3, Blend: BlendScreen}

	w := Widgets(p, s)
	if got := ParamsFromWidgets(w); got != p {
		t.Errorf("params round trip = %+v, want %+v", got, p)
	}
	if got := StyleFromWidgets(w); got != s {
		t.Errorf("style round trip = %+v, want %+v", got, s)
	}
}

func TestClamp(t *testing.T) {
	p := Parameters{GridX: 1, GridY: 100, PerspectiveLines: 0, PerspectiveX: -1, PerspectiveY: 2}
	got := p.Clamp()
	want := Parameters{GridX: 2, GridY: 64, PerspectiveLines: 2, PerspectiveX: 0, PerspectiveY: 1}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestEnabled(t *testing.T) {
	got := allOn().Enabled()
	want := []string{"grid", "diagonals", "phi", "pyramid", "golden", "perspective"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Enabled() = %v, want %v", got, want)
	}
}

func TestBlendModeValid(t *testing.T) {
	if len(BlendModes) != 17 {
		t.Fatalf("len(BlendModes) = %d, want 17", len(BlendModes))
	}
	for _, m := range BlendModes {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if BlendMode("dissolve").Valid() {
		t.Error("dissolve should not be valid")
	}
}
