// Package pipeline runs the whole guides flow for one image.
//
// This package implements the prepare → plan → render pipeline used by every
// CLI command that produces artifacts. By centralizing it, render, preview
// and tune all size nodes, compute plans and cache artifacts the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Prepare: decode the source and downscale it to the preview limit
//  2. Plan: place the preview in a node and compute the guide plan
//  3. Render: draw the plan in each requested format
//
// Preview images and artifacts are cached by content hash, so re-running
// with the same image and widgets costs one cache lookup per format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ImageData: data,
//	    Widgets:   preset.Widgets(),
//	    Formats:   []string{"png", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
	"github.com/quasiblob/compositionguides/pkg/node"
	"github.com/quasiblob/compositionguides/pkg/preview"
	"github.com/quasiblob/compositionguides/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultNodeWidth is the node width used when none is given.
	DefaultNodeWidth = float64(node.DefaultWidth)

	// DefaultNodeHeight is the node height used when none is given.
	DefaultNodeHeight = float64(node.DefaultHeight)

	// DefaultNodeID names the node when the caller does not.
	DefaultNodeID = "1"
)

// DefaultFormats are rendered when Options.Formats is empty.
var DefaultFormats = []string{string(render.FormatPNG)}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Source image. ImageData (encoded file bytes) takes precedence over
	// Image; with neither, the placeholder is rendered.
	ImageData []byte      `json:"-"`
	Image     image.Image `json:"-"`

	// Widgets holds the node's widget values keyed by widget name.
	Widgets map[string]any `json:"widgets,omitempty"`

	// NodeID names the node in logs and scopes nothing else.
	NodeID string `json:"node_id,omitempty"`

	// Node size. When FixedSize is false the height follows the preview's
	// aspect ratio like a node that was never resized by hand.
	NodeWidth  float64 `json:"node_width,omitempty"`
	NodeHeight float64 `json:"node_height,omitempty"`
	FixedSize  bool    `json:"fixed_size,omitempty"`

	// Render options
	Formats    []string    `json:"formats,omitempty"`
	Background color.Color `json:"-"`
	Refresh    bool        `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// OnStage, when set, is called as each stage starts with the stats
	// gathered so far. It runs on the goroutine calling Execute.
	OnStage func(stage Stage, stats Stats) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Stage names a pipeline stage reported through Options.OnStage.
type Stage string

const (
	StagePrepare Stage = "prepare"
	StagePlan    Stage = "plan"
	StageRender  Stage = "render"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// Preview is the downscaled image the guides were drawn over, nil when
	// no source was given.
	Preview image.Image

	// ImageHash is the content hash of the preview PNG.
	ImageHash string

	// Node is the node state after the preview was applied.
	Node node.Node

	// Plan is the computed guide plan.
	Plan guides.Plan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SourceSize  image.Point
	PreviewSize image.Point
	Segments    int
	PrepareTime time.Duration
	PlanTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PreviewHit bool // Whether the downscaled preview came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.NodeID == "" {
		o.NodeID = DefaultNodeID
	}
	if err := errors.ValidateNodeID(o.NodeID); err != nil {
		return err
	}
	if o.NodeWidth == 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodeHeight == 0 {
		o.NodeHeight = DefaultNodeHeight
	}
	if o.NodeWidth < 0 || o.NodeHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "node size %gx%g is negative", o.NodeWidth, o.NodeHeight)
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Widgets == nil {
		o.Widgets = map[string]any{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// PreviewLimit returns the snapped preview_resolution_limit widget value.
func (o *Options) PreviewLimit() int {
	limit := preview.DefaultLimit
	switch v := o.Widgets[guides.KeyPreviewLimit].(type) {
	case int:
		limit = v
	case int64:
		limit = int(v)
	case float64:
		limit = int(v)
	}
	return preview.Limit(limit)
}

// HasSource reports whether a source image was given.
func (o *Options) HasSource() bool {
	return len(o.ImageData) > 0 || o.Image != nil
}
