// Package guides computes composition guide overlays for a preview image.
//
// Given the rectangle a host has available for drawing, the natural aspect
// ratio of an image and a set of enabled guides, the package resolves the
// letterboxed placement of the image and produces the line segments to stroke
// on top of it. Everything here is a pure function of its inputs: nothing is
// cached between calls and no drawing surface is ever touched.
//
// # Guides
//
//   - Grid: evenly spaced vertical and horizontal lines
//   - Diagonals: corner to opposite corner, both ways
//   - Phi grid: lines at the golden-ratio divisions of width and height
//   - Pyramid: triangles with their apex on an edge midpoint
//   - Golden triangles: a diagonal plus two perpendiculars through its golden points
//   - Perspective: rays from a vanishing point to evenly spaced edge points
//
// # Usage
//
//	req := guides.Request{
//	    Container:  guides.Rect{X: 10, Y: 410, Width: 300, Height: 100},
//	    ImageRatio: 16.0 / 9.0,
//	    Params:     guides.DefaultParameters(),
//	    Style:      guides.DefaultStyle(),
//	}
//	plan := guides.Compute(req)
//	for _, s := range plan.Segments {
//	    // stroke s.A -> s.B, clipped to plan.Placement
//	}
//
// Generators never clip. Some of them (golden triangles in particular) may
// return endpoints outside the placement; callers clip at drawing time, either
// with their rasterizer's clip region or with [ClipSegment].
package guides
