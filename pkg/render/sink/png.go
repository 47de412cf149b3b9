package sink

import (
	"bytes"

	"github.com/gogpu/gg"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

// RenderPNG rasterizes the plan. A plan that is not drawable yields an empty
// (or background-filled) canvas of the requested size.
func RenderPNG(plan guides.Plan, opts ...Option) ([]byte, error) {
	c := newConfig(plan, opts)
	dc := gg.NewContext(c.size.X, c.size.Y)
	defer dc.Close()

	if c.background != nil {
		dc.SetColor(c.background)
		dc.DrawRectangle(0, 0, float64(c.size.X), float64(c.size.Y))
		if err := dc.Fill(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "fill background")
		}
	}

	if plan.Drawable {
		var err error
		if plan.HasImage {
			err = drawScene(dc, plan, c)
		} else {
			err = drawPlaceholder(dc, plan)
		}
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode png")
	}
	return buf.Bytes(), nil
}

func drawScene(dc *gg.Context, plan guides.Plan, c config) error {
	p := plan.Placement

	if c.img != nil {
		dc.DrawImageEx(gg.ImageBufFromImage(c.img), gg.DrawImageOptions{
			X:             p.X,
			Y:             p.Y,
			DstWidth:      p.Width,
			DstHeight:     p.Height,
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
	}

	if segs := plan.Clipped(); len(segs) > 0 {
		mode, ok := rasterBlend(plan.Style.Blend)
		if !ok {
			c.logger.Debug("blend mode not supported by rasterizer, using source-over", "blend", plan.Style.Blend)
		}
		r, g, b, a := plan.Style.Color.RGBA()

		dc.Push()
		dc.ClipRect(p.X, p.Y, p.Width, p.Height)
		// The whole guide path goes onto one layer so overlapping lines do
		// not accumulate alpha, and the layer carries the blend mode.
		dc.PushLayer(mode, a)
		dc.SetRGBA(r, g, b, 1)
		dc.SetLineWidth(plan.Style.LineWidth)
		for _, s := range segs {
			dc.MoveTo(s.A.X, s.A.Y)
			dc.LineTo(s.B.X, s.B.Y)
		}
		err := dc.Stroke()
		dc.PopLayer()
		dc.Pop()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "stroke guides")
		}
	}

	r, g, b, a := plan.Frame.Color.RGBA()
	dc.SetRGBA(r, g, b, a)
	dc.SetLineWidth(plan.Frame.LineWidth)
	dc.DrawRectangle(p.X, p.Y, p.Width, p.Height)
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "stroke frame")
	}
	return nil
}

func drawPlaceholder(dc *gg.Context, plan guides.Plan) error {
	src, err := labelFont()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "load placeholder font")
	}
	center := plan.Container.Center()
	dc.Push()
	dc.ClipRect(plan.Container.X, plan.Container.Y, plan.Container.Width, plan.Container.Height)
	dc.SetFont(src.Face(PlaceholderSize))
	dc.SetHexColor(PlaceholderColor)
	dc.DrawStringAnchored(plan.Placeholder, center.X, center.Y, 0.5, 0.5)
	dc.Pop()
	return nil
}
