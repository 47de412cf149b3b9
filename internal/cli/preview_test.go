package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/preview"
)

func messageLine(t *testing.T, nodeID string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 10, A: 255})
	msg, err := preview.Prepare(nodeID, img, preview.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDecodeDelivery(t *testing.T) {
	tests := []struct {
		name string
		line string
		code errors.Code
	}{
		{"not json", `{"node_id":`, errors.ErrCodeInvalidPayload},
		{"no node id", `{"image_data":"aGk="}`, errors.ErrCodeInvalidNodeID},
		{"no image", `{"node_id":"3"}`, errors.ErrCodeInvalidPayload},
		{"not an image", `{"node_id":"3","image_data":"aGVsbG8="}`, errors.ErrCodeDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDelivery([]byte(tt.line))
			if !errors.Is(err, tt.code) {
				t.Errorf("decodeDelivery(%s) err = %v, want %s", tt.line, err, tt.code)
			}
		})
	}

	d, err := decodeDelivery([]byte(messageLine(t, "7", 40, 20)))
	if err != nil {
		t.Fatal(err)
	}
	if d.NodeID != "7" || d.Image.Bounds().Dx() != 40 {
		t.Errorf("delivery = %s %v", d.NodeID, d.Image.Bounds())
	}
}

func TestPreviewCommandRepaintsKnownNodes(t *testing.T) {
	dir := t.TempDir()
	var in bytes.Buffer
	in.WriteString(messageLine(t, "1", 60, 30) + "\n")
	in.WriteString("\n")
	in.WriteString("garbage\n")
	in.WriteString(messageLine(t, "9", 30, 30) + "\n")
	in.WriteString(messageLine(t, "1", 30, 60) + "\n")

	if _, err := runCLI(t, &in, "preview", "--node", "1", "--dir", dir, "--diagonals"); err != nil {
		t.Fatalf("preview: %v", err)
	}

	for _, name := range []string{"node-1-1.png", "node-1-2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected repaint %s: %v", name, err)
		}
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "node-9-*")); len(matches) != 0 {
		t.Errorf("unknown node repainted: %v", matches)
	}
}

func TestPreviewCommandAutoRegister(t *testing.T) {
	dir := t.TempDir()
	in := bytes.NewBufferString(messageLine(t, "42", 50, 50) + "\n")

	if _, err := runCLI(t, in, "preview", "--auto", "--dir", dir, "-f", "json"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "node-42-1.json"))
	if err != nil {
		t.Fatalf("repaint: %v", err)
	}
	var out struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	// Square preview in a 320-wide node: 300px draw area plus header and padding.
	if out.Width != 320 || out.Height != 410+300+10 {
		t.Errorf("canvas = %dx%d, want 320x720", out.Width, out.Height)
	}
}

func TestPreviewCommandRequiresNodes(t *testing.T) {
	_, err := runCLI(t, bytes.NewBufferString(""), "preview", "--dir", t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}
