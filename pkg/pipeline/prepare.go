package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/quasiblob/compositionguides/pkg/cache"
	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/observability"
	"github.com/quasiblob/compositionguides/pkg/preview"
)

// prepared is the output of the prepare stage.
type prepared struct {
	img    image.Image
	png    []byte
	source image.Point
	hit    bool
}

// PrepareWithCacheInfo decodes and downscales the source image, caching the
// encoded preview under the hash of the source bytes.
func (r *Runner) PrepareWithCacheInfo(ctx context.Context, opts Options) (image.Image, bool, error) {
	p, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	return p.img, p.hit, nil
}

func (r *Runner) prepare(ctx context.Context, opts Options) (prepared, error) {
	limit := opts.PreviewLimit()

	if len(opts.ImageData) == 0 {
		if opts.Image == nil {
			return prepared{}, nil
		}
		return r.downscale(ctx, opts.Image, limit)
	}

	key := r.Keyer.PreviewKey(cache.Hash(opts.ImageData), limit)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			img, err := png.Decode(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "preview")
				return prepared{img: img, png: data, source: img.Bounds().Size(), hit: true}, nil
			}
			opts.Logger.Debug("discarding unreadable cached preview", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "preview")
	}

	src, format, err := preview.Decode(bytes.NewReader(opts.ImageData))
	if err != nil {
		return prepared{}, err
	}
	opts.Logger.Debug("decoded source", "format", format, "size", src.Bounds().Size())

	p, err := r.downscale(ctx, src, limit)
	if err != nil {
		return prepared{}, err
	}
	if err := r.Cache.Set(ctx, key, p.png, cache.TTLPreview); err == nil {
		observability.Cache().OnCacheSet(ctx, "preview", len(p.png))
	}
	return p, nil
}

func (r *Runner) downscale(ctx context.Context, src image.Image, limit int) (prepared, error) {
	from := src.Bounds().Size()
	img := preview.Downscale(src, limit)
	to := img.Bounds().Size()
	if to != from {
		observability.Pipeline().OnDownscale(ctx, [2]int{from.X, from.Y}, [2]int{to.X, to.Y})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return prepared{}, errors.Wrap(errors.ErrCodeEncode, err, "encode preview")
	}
	return prepared{img: img, png: buf.Bytes(), source: from}, nil
}
