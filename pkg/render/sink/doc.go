// Package sink renders guide plans to PNG, SVG and JSON.
//
// All sinks take the same [Option]s. The canvas defaults to the plan's
// container grown by the node padding; pass [WithCanvasSize] to render at the
// node's full size instead.
//
// # Blend Modes
//
// Plans may name any of the 17 canvas composite operations. SVG output keeps
// every one as a mix-blend-mode. The rasterizer knows source-over, multiply,
// screen and overlay; PNG output draws the rest with source-over and logs the
// substitution at debug level.
package sink
