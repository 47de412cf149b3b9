package node

import (
	"image"
	"math"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/guides"
)

func blank(w, h int) image.Image {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func TestNewNode(t *testing.T) {
	n := New("7")
	if n.Size != [2]float64{320, 520} {
		t.Errorf("Size = %v, want [320 520]", n.Size)
	}
	want := guides.Rect{X: 10, Y: 410, Width: 300, Height: 100}
	if got := n.DrawArea(); got != want {
		t.Errorf("DrawArea() = %+v, want %+v", got, want)
	}
}

func TestDrawAreaEmpty(t *testing.T) {
	n := New("1")
	n.OnResize(320, 415)
	if !n.DrawArea().Empty() {
		t.Errorf("DrawArea() = %+v, want empty", n.DrawArea())
	}
	if p := n.Plan(nil); p.Drawable {
		t.Error("plan for a collapsed node should not be drawable")
	}
}

func TestSetPreviewAutoResize(t *testing.T) {
	n := New("1")
	n.SetPreview(blank(600, 300))
	// 410 + 300/2 + 10
	if n.Size[1] != 570 {
		t.Errorf("height = %v, want 570", n.Size[1])
	}
	if n.Size[0] != 320 {
		t.Errorf("width changed to %v", n.Size[0])
	}

	// the image now fills the draw area exactly
	p := n.Plan(map[string]any{})
	if p.Placement != n.DrawArea() {
		t.Errorf("placement %+v should equal draw area %+v", p.Placement, n.DrawArea())
	}
}

func TestSetPreviewAfterManualResize(t *testing.T) {
	n := New("1")
	n.OnResize(400, 700)
	n.SetPreview(blank(100, 100))
	if n.Size != [2]float64{400, 700} {
		t.Errorf("Size = %v, manual size should be kept", n.Size)
	}
	if n.Preview == nil {
		t.Error("preview should still be stored")
	}
}

func TestRequest(t *testing.T) {
	n := New("1")
	req := n.Request(map[string]any{guides.KeyDiagonals: true, guides.KeyGrid: false})
	if req.ImageRatio != 0 {
		t.Errorf("ImageRatio = %v before any preview, want 0", req.ImageRatio)
	}
	if !req.Params.Diagonals || req.Params.Grid {
		t.Errorf("Params = %+v", req.Params)
	}

	p := guides.Compute(req)
	if p.HasImage || p.Placeholder != guides.Placeholder {
		t.Errorf("plan without preview should carry the placeholder, got %+v", p)
	}

	n.SetPreview(blank(300, 200))
	if r := n.Request(nil).ImageRatio; math.Abs(r-1.5) > 1e-12 {
		t.Errorf("ImageRatio = %v, want 1.5", r)
	}
}

func TestCanvasSize(t *testing.T) {
	n := New("1")
	n.OnResize(320.4, 519.6)
	if got := n.CanvasSize(); got != image.Pt(320, 520) {
		t.Errorf("CanvasSize() = %v", got)
	}
}
