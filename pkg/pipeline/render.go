package pipeline

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/render"
	"github.com/quasiblob/compositionguides/pkg/render/sink"
)

// Render draws plan over img in every requested format, keyed by format name.
func Render(plan guides.Plan, img image.Image, size image.Point, formats []string, bg color.Color, logger *log.Logger) (map[string][]byte, error) {
	opts := []sink.Option{
		sink.WithImage(img),
		sink.WithCanvasSize(size),
		sink.WithLogger(logger),
	}
	if bg != nil {
		opts = append(opts, sink.WithBackground(bg))
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, name := range formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		data, err := render.Render(plan, f, opts...)
		if err != nil {
			return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInternal), err, "render %s", f)
		}
		artifacts[string(f)] = data
	}
	return artifacts, nil
}
