package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quasiblob/compositionguides/pkg/cache"
	"github.com/quasiblob/compositionguides/pkg/node"
	"github.com/quasiblob/compositionguides/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete prepare → plan → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger.With("node", opts.NodeID)

	result := &Result{}

	// Stage 1: Prepare
	opts.stage(StagePrepare, result.Stats)
	prepareStart := time.Now()
	p, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	result.Preview = p.img
	result.Stats.PrepareTime = time.Since(prepareStart)
	result.Stats.SourceSize = p.source
	result.CacheInfo.PreviewHit = p.hit
	result.ImageHash = "none"
	if p.img != nil {
		result.ImageHash = cache.Hash(p.png)
		result.Stats.PreviewSize = p.img.Bounds().Size()
		logger.Info("prepared preview",
			"source", p.source,
			"preview", result.Stats.PreviewSize,
			"cached", p.hit,
			"duration", result.Stats.PrepareTime)
	}

	// Stage 2: Plan
	opts.stage(StagePlan, result.Stats)
	planStart := time.Now()
	n := node.New(opts.NodeID)
	n.Size = [2]float64{opts.NodeWidth, opts.NodeHeight}
	if opts.FixedSize {
		n.OnResize(opts.NodeWidth, opts.NodeHeight)
	}
	n.SetPreview(p.img)
	plan := n.Plan(opts.Widgets)
	result.Node = *n
	result.Plan = plan
	result.Stats.Segments = len(plan.Segments)
	result.Stats.PlanTime = time.Since(planStart)
	observability.Pipeline().OnPlanComplete(ctx, len(plan.Segments), plan.Drawable)

	logger.Info("computed plan",
		"segments", len(plan.Segments),
		"size", fmt.Sprintf("%gx%g", n.Size[0], n.Size[1]),
		"drawable", plan.Drawable)

	// Stage 3: Render
	opts.stage(StageRender, result.Stats)
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders the artifacts for a prepared result, reusing
// cached artifacts when every requested format is present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *Result, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	size := res.Node.CanvasSize()
	planKey := r.Keyer.PlanKey(res.ImageHash, cache.PlanKeyOpts{
		NodeWidth:  res.Node.Size[0],
		NodeHeight: res.Node.Size[1],
		Widgets:    opts.Widgets,
	})
	if opts.Background != nil {
		rr, g, b, a := opts.Background.RGBA()
		planKey = cache.Hash(fmt.Appendf(nil, "%s:bg:%d,%d,%d,%d", planKey, rr, g, b, a))
	}

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(planKey, cache.ArtifactKeyOpts{Format: format})
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := Render(res.Plan, res.Preview, size, opts.Formats, opts.Background, opts.Logger)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, len(res.Plan.Segments), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(planKey, cache.ArtifactKeyOpts{Format: format})
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// stage reports s to the OnStage callback, if any.
func (o *Options) stage(s Stage, stats Stats) {
	if o.OnStage != nil {
		o.OnStage(s, stats)
	}
}
