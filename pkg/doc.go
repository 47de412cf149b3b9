// Package pkg provides the libraries behind the guides composition-guide tool.
//
// # Overview
//
// Guides draws composition guides (rule-of-thirds grids, diagonals, phi grids,
// pyramids, golden triangles and perspective rays) over an image that is
// letterboxed into a node canvas. The pkg directory is organized into three
// areas:
//
//  1. [guides] - Pure geometry (layout, generators, clipping, colour parsing)
//  2. [node], [preview] - The node adapter and the preview message path
//  3. [pipeline] - Orchestration (prepare → plan → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	Source image
//	     ↓
//	[preview] package (downscale, encode as a message)
//	     ↓
//	[node] package (hub delivery, auto-resize, request building)
//	     ↓
//	[guides] package (placement + guide segments)
//	     ↓
//	[render] package (PNG/SVG/JSON sinks)
//
// # Quick Start
//
// Compute a plan and draw it:
//
//	n := node.New("17")
//	n.SetPreview(img)
//	plan := n.Plan(preset.Widgets())
//	png, _ := render.Render(plan, render.FormatPNG,
//	    sink.WithImage(img), sink.WithCanvasSize(n.CanvasSize()))
//
// # Main Packages
//
// [guides] - Letterbox layout, the six guide generators and Liang–Barsky
// clipping. Every function is total and allocation-light.
//
// [node] - Explicit node state (size, preview, manual-resize flag) and the
// Hub that routes preview deliveries to registered nodes on one goroutine.
//
// [preview] - Bilinear downscaling, base64 PNG payloads and the preview
// message wire form.
//
// [render] - Output formats. [render/sink] holds the PNG rasterizer, the SVG
// writer and the JSON command list.
//
// [config] - TOML presets keyed by the node's widget names.
//
// [pipeline] - The prepare → plan → render pipeline shared by every CLI
// command that produces artifacts.
//
// [cache] - Content-addressed file cache for previews and artifacts.
//
// [errors] - Structured errors with codes, plus input validation.
//
// [observability] - Hooks for pipeline, cache and delivery events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/guides/...    # Specific package
//	go test -run Example        # Examples only
//
// [guides]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/guides
// [node]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/node
// [preview]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/preview
// [pipeline]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/render/sink
// [config]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/config
// [cache]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/cache
// [errors]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/errors
// [observability]: https://pkg.go.dev/github.com/quasiblob/compositionguides/pkg/observability
package pkg
