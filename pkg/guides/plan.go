package guides

// Placeholder is the label shown in place of guides while no image is loaded.
const Placeholder = "Connect Image and run workflow"

// Request is the input to one render pass.
type Request struct {
	// Container is the area available for drawing.
	Container Rect `json:"container"`

	// ImageRatio is the natural width/height of the image. Zero (or any
	// non-positive value) means there is no image yet.
	ImageRatio float64 `json:"image_ratio"`

	Params Parameters `json:"params"`
	Style  Style      `json:"style"`
}

// Plan is the fully resolved output of a render pass. Sinks draw it in a fixed
// order: the image into Placement, then Segments clipped to Placement, then a
// Frame-styled border around Placement.
type Plan struct {
	// Drawable is false when the container is degenerate; nothing is drawn.
	Drawable bool `json:"drawable"`

	// HasImage is false when the request carried no image. The sink then
	// draws Placeholder centered in Container instead of guides.
	HasImage bool `json:"has_image"`

	Container   Rect      `json:"container"`
	Placement   Rect      `json:"placement"`
	Segments    []Segment `json:"segments"`
	Style       Style     `json:"style"`
	Frame       Style     `json:"frame"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Compute resolves a request into a plan. It is a pure function: equal
// requests give equal plans.
func Compute(req Request) Plan {
	plan := Plan{
		Container: req.Container,
		Style:     req.Style,
		Frame:     FrameStyle,
	}
	if req.Container.Empty() {
		return plan
	}
	plan.Drawable = true

	placement, ok := Fit(req.Container, req.ImageRatio)
	if !ok {
		plan.Placeholder = Placeholder
		return plan
	}
	plan.HasImage = true
	plan.Placement = placement
	plan.Segments = Segments(placement, req.Params)
	return plan
}

// Segments runs every enabled generator over r in drawing order: grid,
// diagonals, phi grid, pyramid, golden triangles, perspective.
func Segments(r Rect, p Parameters) []Segment {
	var out []Segment
	if p.Grid {
		out = append(out, Grid(r, p.GridX, p.GridY)...)
	}
	if p.Diagonals {
		out = append(out, Diagonals(r)...)
	}
	if p.PhiGrid {
		out = append(out, PhiGrid(r)...)
	}
	if p.Pyramid != PyramidOff {
		out = append(out, Pyramid(r, p.Pyramid)...)
	}
	if p.GoldenTriangles != GoldenOff {
		out = append(out, GoldenTriangles(r, p.GoldenTriangles)...)
	}
	if p.Perspective {
		out = append(out, Perspective(r, p.PerspectiveX, p.PerspectiveY, p.PerspectiveLines)...)
	}
	return out
}

// Clipped returns the plan's segments clipped to the placement, dropping those
// that fall entirely outside it.
func (p Plan) Clipped() []Segment {
	out := make([]Segment, 0, len(p.Segments))
	for _, s := range p.Segments {
		if c, ok := ClipSegment(s, p.Placement); ok {
			out = append(out, c)
		}
	}
	return out
}
