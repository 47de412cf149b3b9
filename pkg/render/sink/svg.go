package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image/png"
	"math"
	"strconv"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

// RenderSVG renders the plan as a standalone SVG document. Guides are
// clipped by a clipPath on the placement, matching the raster output.
func RenderSVG(plan guides.Plan, opts ...Option) ([]byte, error) {
	c := newConfig(plan, opts)
	w, h := c.size.X, c.size.Y

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)

	if c.background != nil {
		r, g, b, a := c.background.RGBA()
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="rgb(%d,%d,%d)" fill-opacity="%s"/>`+"\n",
			r>>8, g>>8, b>>8, num(float64(a)/0xffff))
	}

	if plan.Drawable {
		if plan.HasImage {
			if err := renderSVGScene(&buf, plan, c); err != nil {
				return nil, err
			}
		} else {
			renderSVGPlaceholder(&buf, plan)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderSVGScene(buf *bytes.Buffer, plan guides.Plan, c config) error {
	p := plan.Placement

	fmt.Fprintf(buf, `  <defs><clipPath id="placement"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath></defs>`+"\n",
		num(p.X), num(p.Y), num(p.Width), num(p.Height))

	if c.img != nil {
		var img bytes.Buffer
		if err := png.Encode(&img, c.img); err != nil {
			return errors.Wrap(errors.ErrCodeEncode, err, "embed image")
		}
		fmt.Fprintf(buf, `  <image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="none" href="data:image/png;base64,%s"/>`+"\n",
			num(p.X), num(p.Y), num(p.Width), num(p.Height), base64.StdEncoding.EncodeToString(img.Bytes()))
	}

	if len(plan.Segments) > 0 {
		s := plan.Style
		fmt.Fprintf(buf, `  <g clip-path="url(#placement)" style="mix-blend-mode:%s">`+"\n", svgBlend(s.Blend))
		fmt.Fprintf(buf, `    <path fill="none" stroke="rgb(%d,%d,%d)" stroke-opacity="%s" stroke-width="%s" d="`,
			s.Color.R, s.Color.G, s.Color.B, num(s.Color.A), num(s.LineWidth))
		for i, seg := range plan.Segments {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "M%s %sL%s %s", num(seg.A.X), num(seg.A.Y), num(seg.B.X), num(seg.B.Y))
		}
		buf.WriteString(`"/>` + "\n  </g>\n")
	}

	f := plan.Frame
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="rgb(%d,%d,%d)" stroke-opacity="%s" stroke-width="%s"/>`+"\n",
		num(p.X), num(p.Y), num(p.Width), num(p.Height),
		f.Color.R, f.Color.G, f.Color.B, num(f.Color.A), num(f.LineWidth))
	return nil
}

func renderSVGPlaceholder(buf *bytes.Buffer, plan guides.Plan) {
	center := plan.Container.Center()
	fmt.Fprintf(buf, `  <text x="%s" y="%s" fill="%s" font-family="Go, Arial, sans-serif" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		num(center.X), num(center.Y), PlaceholderColor, num(PlaceholderSize), html.EscapeString(plan.Placeholder))
}

// num formats a coordinate with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
