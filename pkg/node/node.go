// Package node holds the display-side state of a guides node and the hub
// that routes preview images to it.
//
// A [Node] owns what the host would otherwise keep in globals: its size, the
// last preview image, and whether the user resized it by hand. A [Hub] is the
// single owner of all registered nodes; producers hand it decoded images over
// a channel and it repaints the matching node.
package node

import (
	"image"

	"github.com/quasiblob/compositionguides/pkg/guides"
)

// Node geometry, in canvas pixels.
const (
	Padding      = 10
	HeaderHeight = 410

	DefaultWidth  = 320
	DefaultHeight = 520
)

// Node is one guides node on the canvas.
type Node struct {
	ID   string
	Size [2]float64

	// Preview is the last image delivered to the node, nil until the
	// workflow has run once.
	Preview image.Image

	// ManuallyResized is set once the user resizes the node. From then on
	// new previews no longer change its height.
	ManuallyResized bool
}

// New returns a node with the default size and no preview.
func New(id string) *Node {
	return &Node{ID: id, Size: [2]float64{DefaultWidth, DefaultHeight}}
}

// DrawArea is the region below the widgets where the preview is drawn.
// It may be empty, in which case nothing is painted.
func (n *Node) DrawArea() guides.Rect {
	return guides.Rect{
		X:      Padding,
		Y:      HeaderHeight,
		Width:  n.Size[0] - 2*Padding,
		Height: n.Size[1] - HeaderHeight - Padding,
	}
}

// OnResize records a user resize.
func (n *Node) OnResize(w, h float64) {
	n.Size = [2]float64{w, h}
	n.ManuallyResized = true
}

// SetPreview stores img and, unless the node was resized by hand, grows or
// shrinks the node so the draw area matches the image's aspect ratio at the
// current width.
func (n *Node) SetPreview(img image.Image) {
	n.Preview = img
	if n.ManuallyResized || img == nil {
		return
	}
	ratio := n.imageRatio()
	if ratio <= 0 {
		return
	}
	n.Size[1] = HeaderHeight + (n.Size[0]-2*Padding)/ratio + Padding
}

// Request builds the render request for the node's current state from the
// host's widget values.
func (n *Node) Request(widgets map[string]any) guides.Request {
	return guides.Request{
		Container:  n.DrawArea(),
		ImageRatio: n.imageRatio(),
		Params:     guides.ParamsFromWidgets(widgets),
		Style:      guides.StyleFromWidgets(widgets),
	}
}

// Plan is shorthand for guides.Compute(n.Request(widgets)).
func (n *Node) Plan(widgets map[string]any) guides.Plan {
	return guides.Compute(n.Request(widgets))
}

// CanvasSize is the node size rounded to whole pixels.
func (n *Node) CanvasSize() image.Point {
	return image.Pt(int(n.Size[0]+0.5), int(n.Size[1]+0.5))
}

func (n *Node) imageRatio() float64 {
	if n.Preview == nil {
		return 0
	}
	b := n.Preview.Bounds()
	return guides.AspectRatio(b.Dx(), b.Dy())
}
