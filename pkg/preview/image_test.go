package preview

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/quasiblob/compositionguides/pkg/errors"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDownscale(t *testing.T) {
	src := solid(600, 300, color.NRGBA{200, 10, 10, 255})

	small := Downscale(src, 256)
	if got := small.Bounds().Size(); got != image.Pt(256, 128) {
		t.Fatalf("Downscale size = %v, want 256x128", got)
	}
	r, g, b, a := small.At(128, 64).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 10 || a>>8 != 255 {
		t.Errorf("interior pixel = %d,%d,%d,%d, want 200,10,10,255", r>>8, g>>8, b>>8, a>>8)
	}

	if same := Downscale(src, 1024); same != image.Image(src) {
		t.Error("image within limit should be returned unchanged")
	}
}

func TestDownscaleKeepsAspect(t *testing.T) {
	for _, sz := range []image.Point{{1920, 1080}, {1080, 1920}, {4096, 4096}, {5000, 700}} {
		out := Downscale(solid(sz.X, sz.Y, color.White), 512).Bounds()
		want := float64(sz.X) / float64(sz.Y)
		got := float64(out.Dx()) / float64(out.Dy())
		// truncation moves the ratio by at most one pixel on the short side
		if d := got/want - 1; d > 0.01 || d < -0.01 {
			t.Errorf("%v -> %v: ratio %.4f, want %.4f", sz, out.Size(), got, want)
		}
		if max(out.Dx(), out.Dy()) != 512 {
			t.Errorf("%v -> %v: long side should be 512", sz, out.Size())
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	src := solid(8, 4, color.NRGBA{1, 2, 3, 255})
	data, err := EncodePayload(src)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	for _, s := range []string{data, dataURLPrefix + data} {
		img, err := DecodePayload(s)
		if err != nil {
			t.Fatalf("DecodePayload: %v", err)
		}
		if img.Bounds().Size() != image.Pt(8, 4) {
			t.Errorf("decoded size = %v", img.Bounds().Size())
		}
		if r, g, b, _ := img.At(3, 2).RGBA(); r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
			t.Errorf("decoded pixel = %d,%d,%d", r>>8, g>>8, b>>8)
		}
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidPayload},
		{"not base64", "@@@", errors.ErrCodeInvalidPayload},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("hello")), errors.ErrCodeDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload(tt.in)
			if !errors.Is(err, tt.code) {
				t.Errorf("DecodePayload(%q) error = %v, want code %s", tt.in, err, tt.code)
			}
		})
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solid(16, 16, color.Gray{128}), nil); err != nil {
		t.Fatal(err)
	}
	_, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
}

func TestOpen(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(path); !errors.Is(err, errors.ErrCodeDecode) {
		t.Errorf("junk file error = %v, want DECODE_FAILED", err)
	}
}
