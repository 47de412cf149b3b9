package guides

// BlendMode is a canvas composite operation name.
type BlendMode string

// Blend modes accepted by the host widget, in widget order.
const (
	BlendSourceOver BlendMode = "source-over"
	BlendLighter    BlendMode = "lighter"
	BlendScreen     BlendMode = "screen"
	BlendMultiply   BlendMode = "multiply"
	BlendOverlay    BlendMode = "overlay"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendColorDodge BlendMode = "color-dodge"
	BlendColorBurn  BlendMode = "color-burn"
	BlendHardLight  BlendMode = "hard-light"
	BlendSoftLight  BlendMode = "soft-light"
	BlendDifference BlendMode = "difference"
	BlendExclusion  BlendMode = "exclusion"
	BlendHue        BlendMode = "hue"
	BlendSaturation BlendMode = "saturation"
	BlendColor      BlendMode = "color"
	BlendLuminosity BlendMode = "luminosity"
)

// BlendModes lists every supported mode.
var BlendModes = []BlendMode{
	BlendSourceOver, BlendLighter, BlendScreen, BlendMultiply, BlendOverlay,
	BlendDarken, BlendLighten, BlendColorDodge, BlendColorBurn, BlendHardLight,
	BlendSoftLight, BlendDifference, BlendExclusion, BlendHue, BlendSaturation,
	BlendColor, BlendLuminosity,
}

// Valid reports whether m is one of [BlendModes].
func (m BlendMode) Valid() bool {
	for _, b := range BlendModes {
		if b == m {
			return true
		}
	}
	return false
}

// Style is the single stroke style shared by every guide segment.
type Style struct {
	Color     Color     `json:"color"`
	LineWidth float64   `json:"line_width"`
	Blend     BlendMode `json:"blend"`
}

// DefaultStyle returns the node's default stroke: opaque white, 1px, source-over.
func DefaultStyle() Style {
	return Style{
		Color:     Color{R: 255, G: 255, B: 255, A: 1},
		LineWidth: 1,
		Blend:     BlendSourceOver,
	}
}

// FrameStyle is the border drawn around the placed image, above the guides.
var FrameStyle = Style{
	Color:     Color{R: 40, G: 40, B: 40, A: 1},
	LineWidth: 1,
	Blend:     BlendSourceOver,
}
