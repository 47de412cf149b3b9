package render

import (
	"slices"
	"strings"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/render/sink"
)

// Format is an output format name.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPNG, FormatSVG, FormatJSON}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ParseFormat validates a single format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want png, svg or json)", s)
	}
	return f, nil
}

// ParseFormats parses a comma-separated list, dropping duplicates and keeping
// the first occurrence order.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", false
	}
	f, err := ParseFormat(path[i+1:])
	return f, err == nil
}

// Render draws plan in format f.
func Render(plan guides.Plan, f Format, opts ...sink.Option) ([]byte, error) {
	switch f {
	case FormatPNG:
		return sink.RenderPNG(plan, opts...)
	case FormatSVG:
		return sink.RenderSVG(plan, opts...)
	case FormatJSON:
		return sink.RenderJSON(plan, opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}
