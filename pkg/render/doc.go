// Package render turns a guide plan into output artifacts.
//
// # Overview
//
// A [guides.Plan] is format-neutral: a placement rectangle, the segments to
// stroke and the styles to stroke them with. This package draws it. The
// formats live in the [sink] subpackage:
//
//   - PNG: rasterized with github.com/gogpu/gg, the preview image drawn
//     under the guides
//   - SVG: the same scene as vector markup with the image embedded
//   - JSON: the plan and its stroke commands, for other renderers
//
// Every sink draws in the same order: image, guides clipped to the image,
// frame. Without an image the placeholder label is drawn instead.
//
// # Usage
//
//	formats, err := render.ParseFormats("png,svg")
//	for _, f := range formats {
//	    data, err := render.Render(plan, f, sink.WithImage(img), sink.WithCanvasSize(size))
//	    ...
//	}
//
// [sink]: github.com/quasiblob/compositionguides/pkg/render/sink
package render
