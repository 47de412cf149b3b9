package sink

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/quasiblob/compositionguides/pkg/guides"
)

// Placeholder label style.
const (
	PlaceholderSize  = 14.0
	PlaceholderColor = "#CCCCCC"
)

// margin is added around the container when no canvas size is given.
const margin = 10

// Option configures a sink.
type Option func(*config)

type config struct {
	img        image.Image
	size       image.Point
	background color.Color
	logger     *log.Logger
	indent     bool
}

// WithImage sets the image drawn into the placement.
func WithImage(img image.Image) Option { return func(c *config) { c.img = img } }

// WithCanvasSize sets the output size in pixels.
func WithCanvasSize(size image.Point) Option { return func(c *config) { c.size = size } }

// WithBackground fills the canvas before drawing. The default is transparent.
func WithBackground(bg color.Color) Option { return func(c *config) { c.background = bg } }

// WithLogger sets the logger for render diagnostics. Nil keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIndent pretty-prints JSON output.
func WithIndent() Option { return func(c *config) { c.indent = true } }

func newConfig(plan guides.Plan, opts []Option) config {
	c := config{logger: log.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.size.X <= 0 || c.size.Y <= 0 {
		c.size = defaultSize(plan.Container)
	}
	return c
}

func defaultSize(r guides.Rect) image.Point {
	w := int(r.Right() + margin + 0.5)
	h := int(r.Bottom() + margin + 0.5)
	return image.Pt(max(w, 1), max(h, 1))
}
