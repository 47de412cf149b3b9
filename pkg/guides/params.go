package guides

// Widget keys used by the host to hand over guide settings.
const (
	KeyPreviewLimit     = "preview_resolution_limit"
	KeyColor            = "grid_color_rgb"
	KeyLineThickness    = "line_thickness"
	KeyBlendMode        = "blend_mode"
	KeyGrid             = "grid"
	KeyGridX            = "grid_lines_x"
	KeyGridY            = "grid_lines_y"
	KeyDiagonals        = "diagonals"
	KeyPhiGrid          = "phi_grid"
	KeyPyramid          = "pyramid"
	KeyGoldenTriangles  = "golden_triangles"
	KeyPerspective      = "perspective"
	KeyPerspectiveLines = "perspective_lines"
	KeyPerspectiveX     = "perspective_x"
	KeyPerspectiveY     = "perspective_y"
)

// WidgetKeys lists every key in the order the node declares them.
var WidgetKeys = []string{
	KeyPreviewLimit, KeyColor, KeyLineThickness, KeyBlendMode,
	KeyGrid, KeyGridX, KeyGridY, KeyDiagonals, KeyPhiGrid, KeyPyramid,
	KeyGoldenTriangles, KeyPerspective, KeyPerspectiveLines, KeyPerspectiveX,
	KeyPerspectiveY,
}

// Widget ranges.
const (
	MinGridLines        = 2
	MaxGridLines        = 64
	MinPerspectiveLines = 2
	MaxPerspectiveLines = 32
	MinLineWidth        = 0.1
	MaxLineWidth        = 32.0
)

// Parameters holds the enabled guides and their tunables.
type Parameters struct {
	Grid  bool `json:"grid"`
	GridX int  `json:"grid_lines_x"`
	GridY int  `json:"grid_lines_y"`

	Diagonals bool `json:"diagonals"`
	PhiGrid   bool `json:"phi_grid"`

	Pyramid         PyramidMode `json:"pyramid"`
	GoldenTriangles GoldenMode  `json:"golden_triangles"`

	Perspective      bool    `json:"perspective"`
	PerspectiveX     float64 `json:"perspective_x"`
	PerspectiveY     float64 `json:"perspective_y"`
	PerspectiveLines int     `json:"perspective_lines"`
}

// DefaultParameters returns the node defaults: a 3×3 grid and nothing else.
func DefaultParameters() Parameters {
	return Parameters{
		Grid:             true,
		GridX:            3,
		GridY:            3,
		Pyramid:          PyramidOff,
		GoldenTriangles:  GoldenOff,
		PerspectiveX:     0.5,
		PerspectiveY:     0.5,
		PerspectiveLines: 8,
	}
}

// Clamp limits every tunable to the range the host widget allows. The
// generators themselves assume clamped input.
func (p Parameters) Clamp() Parameters {
	p.GridX = clampInt(p.GridX, MinGridLines, MaxGridLines)
	p.GridY = clampInt(p.GridY, MinGridLines, MaxGridLines)
	p.PerspectiveLines = clampInt(p.PerspectiveLines, MinPerspectiveLines, MaxPerspectiveLines)
	p.PerspectiveX = clampUnit(p.PerspectiveX)
	p.PerspectiveY = clampUnit(p.PerspectiveY)
	return p
}

// Enabled returns the names of the guides that would contribute segments.
func (p Parameters) Enabled() []string {
	var names []string
	if p.Grid {
		names = append(names, "grid")
	}
	if p.Diagonals {
		names = append(names, "diagonals")
	}
	if p.PhiGrid {
		names = append(names, "phi")
	}
	if p.Pyramid.upDown() || p.Pyramid.leftRight() {
		names = append(names, "pyramid")
	}
	if p.GoldenTriangles.set1() || p.GoldenTriangles.set2() {
		names = append(names, "golden")
	}
	if p.Perspective {
		names = append(names, "perspective")
	}
	return names
}

// ParamsFromWidgets reads guide parameters from a host widget map keyed by
// the Key* constants. Keys that are absent keep their node default; values
// present with an unexpected type follow the host's loose semantics (any
// non-zero value enables a flag, non-numeric counts fall back to the default).
func ParamsFromWidgets(w map[string]any) Parameters {
	d := DefaultParameters()
	return Parameters{
		Grid:             boolWidget(w, KeyGrid, d.Grid),
		GridX:            intWidget(w, KeyGridX, d.GridX),
		GridY:            intWidget(w, KeyGridY, d.GridY),
		Diagonals:        boolWidget(w, KeyDiagonals, d.Diagonals),
		PhiGrid:          boolWidget(w, KeyPhiGrid, d.PhiGrid),
		Pyramid:          PyramidMode(stringWidget(w, KeyPyramid, string(d.Pyramid))),
		GoldenTriangles:  GoldenMode(stringWidget(w, KeyGoldenTriangles, string(d.GoldenTriangles))),
		Perspective:      boolWidget(w, KeyPerspective, d.Perspective),
		PerspectiveX:     floatWidget(w, KeyPerspectiveX, d.PerspectiveX),
		PerspectiveY:     floatWidget(w, KeyPerspectiveY, d.PerspectiveY),
		PerspectiveLines: intWidget(w, KeyPerspectiveLines, d.PerspectiveLines),
	}
}

// StyleFromWidgets reads the stroke style from a host widget map. A zero line
// thickness becomes 1 and an empty blend mode becomes source-over.
func StyleFromWidgets(w map[string]any) Style {
	d := DefaultStyle()
	s := d

	if v, ok := w[KeyColor]; ok {
		s.Color = ParseColor(v)
	}
	if lw := floatWidget(w, KeyLineThickness, d.LineWidth); lw > 0 {
		s.LineWidth = lw
	}
	if b := stringWidget(w, KeyBlendMode, ""); b != "" {
		s.Blend = BlendMode(b)
	}
	return s
}

// Widgets is the inverse of [ParamsFromWidgets] and [StyleFromWidgets] for
// the keys they read.
func Widgets(p Parameters, s Style) map[string]any {
	return map[string]any{
		KeyColor:            colorWidget(s.Color),
		KeyLineThickness:    s.LineWidth,
		KeyBlendMode:        string(s.Blend),
		KeyGrid:             p.Grid,
		KeyGridX:            p.GridX,
		KeyGridY:            p.GridY,
		KeyDiagonals:        p.Diagonals,
		KeyPhiGrid:          p.PhiGrid,
		KeyPyramid:          string(p.Pyramid),
		KeyGoldenTriangles:  string(p.GoldenTriangles),
		KeyPerspective:      p.Perspective,
		KeyPerspectiveLines: p.PerspectiveLines,
		KeyPerspectiveX:     p.PerspectiveX,
		KeyPerspectiveY:     p.PerspectiveY,
	}
}
