// Package config loads and saves guide presets.
//
// A preset is a TOML file whose keys are the node's widget names, so a preset
// can be pasted into a workflow by hand and a workflow's widget values can be
// saved as a preset:
//
//	name = "thirds and diagonals"
//	grid = true
//	grid_lines_x = 3
//	grid_lines_y = 3
//	diagonals = true
//	grid_color_rgb = "255,200,0,180"
//	blend_mode = "screen"
//
//	[node]
//	width = 480
//
// Keys left out keep the node defaults. Unknown keys are an error so that a
// misspelled widget name is not silently ignored.
package config

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/node"
	"github.com/quasiblob/compositionguides/pkg/preview"
)

// Preset is a named set of widget values.
type Preset struct {
	Name string `toml:"name,omitempty"`

	PreviewLimit  int     `toml:"preview_resolution_limit"`
	Color         string  `toml:"grid_color_rgb"`
	LineThickness float64 `toml:"line_thickness"`
	BlendMode     string  `toml:"blend_mode"`

	Grid            bool   `toml:"grid"`
	GridX           int    `toml:"grid_lines_x"`
	GridY           int    `toml:"grid_lines_y"`
	Diagonals       bool   `toml:"diagonals"`
	PhiGrid         bool   `toml:"phi_grid"`
	Pyramid         string `toml:"pyramid"`
	GoldenTriangles string `toml:"golden_triangles"`

	Perspective      bool    `toml:"perspective"`
	PerspectiveLines int     `toml:"perspective_lines"`
	PerspectiveX     float64 `toml:"perspective_x"`
	PerspectiveY     float64 `toml:"perspective_y"`

	Node NodeSize `toml:"node"`
}

// NodeSize is the canvas size a preset renders at.
type NodeSize struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the node's widget defaults.
func Default() Preset {
	p := guides.DefaultParameters()
	return Preset{
		PreviewLimit:     preview.DefaultLimit,
		Color:            "255,255,255,255",
		LineThickness:    1,
		BlendMode:        string(guides.BlendSourceOver),
		Grid:             p.Grid,
		GridX:            p.GridX,
		GridY:            p.GridY,
		Diagonals:        p.Diagonals,
		PhiGrid:          p.PhiGrid,
		Pyramid:          string(p.Pyramid),
		GoldenTriangles:  string(p.GoldenTriangles),
		Perspective:      p.Perspective,
		PerspectiveLines: p.PerspectiveLines,
		PerspectiveX:     p.PerspectiveX,
		PerspectiveY:     p.PerspectiveY,
		Node:             NodeSize{Width: node.DefaultWidth, Height: node.DefaultHeight},
	}
}

// Load reads the preset file at path.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Preset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset %s", path)
	}
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read preset %s", path)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Preset{}, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidConfig), err, "preset %s", path)
	}
	return p, nil
}

// Decode parses a preset from r on top of the defaults and normalizes it.
func Decode(r io.Reader) (Preset, error) {
	p := Default()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Preset{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := p.Normalize(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Save writes p as TOML.
func Save(w io.Writer, p Preset) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode preset")
	}
	return nil
}

// Normalize clamps numeric values to the widget ranges and rejects mode
// names the node does not offer.
func (p *Preset) Normalize() error {
	if !guides.BlendMode(p.BlendMode).Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown blend_mode %q", p.BlendMode)
	}
	if !guides.PyramidMode(p.Pyramid).Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown pyramid mode %q", p.Pyramid)
	}
	if !guides.GoldenMode(p.GoldenTriangles).Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown golden_triangles mode %q", p.GoldenTriangles)
	}

	p.PreviewLimit = preview.Limit(p.PreviewLimit)
	p.LineThickness = min(max(p.LineThickness, guides.MinLineWidth), guides.MaxLineWidth)

	params := p.Params().Clamp()
	p.GridX, p.GridY = params.GridX, params.GridY
	p.PerspectiveLines = params.PerspectiveLines
	p.PerspectiveX, p.PerspectiveY = params.PerspectiveX, params.PerspectiveY

	if p.Node.Width <= 0 {
		p.Node.Width = node.DefaultWidth
	}
	if p.Node.Height <= 0 {
		p.Node.Height = node.DefaultHeight
	}
	return nil
}

// Params returns the guide parameters of the preset.
func (p Preset) Params() guides.Parameters {
	return guides.Parameters{
		Grid:             p.Grid,
		GridX:            p.GridX,
		GridY:            p.GridY,
		Diagonals:        p.Diagonals,
		PhiGrid:          p.PhiGrid,
		Pyramid:          guides.PyramidMode(p.Pyramid),
		GoldenTriangles:  guides.GoldenMode(p.GoldenTriangles),
		Perspective:      p.Perspective,
		PerspectiveX:     p.PerspectiveX,
		PerspectiveY:     p.PerspectiveY,
		PerspectiveLines: p.PerspectiveLines,
	}
}

// Widgets returns the preset as a host widget map.
func (p Preset) Widgets() map[string]any {
	w := guides.Widgets(p.Params(), guides.DefaultStyle())
	w[guides.KeyColor] = p.Color
	w[guides.KeyLineThickness] = p.LineThickness
	w[guides.KeyBlendMode] = p.BlendMode
	w[guides.KeyPreviewLimit] = p.PreviewLimit
	return w
}

// FromWidgets builds a preset from a host widget map. Absent keys take the
// defaults; the result is not normalized.
func FromWidgets(w map[string]any) Preset {
	p := Default()
	params := guides.ParamsFromWidgets(w)
	p.Grid, p.GridX, p.GridY = params.Grid, params.GridX, params.GridY
	p.Diagonals, p.PhiGrid = params.Diagonals, params.PhiGrid
	p.Pyramid, p.GoldenTriangles = string(params.Pyramid), string(params.GoldenTriangles)
	p.Perspective, p.PerspectiveLines = params.Perspective, params.PerspectiveLines
	p.PerspectiveX, p.PerspectiveY = params.PerspectiveX, params.PerspectiveY

	if c, ok := w[guides.KeyColor].(string); ok {
		p.Color = c
	}
	p.LineThickness = guides.StyleFromWidgets(w).LineWidth
	p.BlendMode = string(guides.StyleFromWidgets(w).Blend)
	if v, ok := w[guides.KeyPreviewLimit]; ok {
		switch n := v.(type) {
		case int:
			p.PreviewLimit = n
		case int64:
			p.PreviewLimit = int(n)
		case float64:
			p.PreviewLimit = int(n)
		}
	}
	return p
}
