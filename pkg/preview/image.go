package preview

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/quasiblob/compositionguides/pkg/errors"
)

// dataURLPrefix is what the display side prepends before loading a payload.
const dataURLPrefix = "data:image/png;base64,"

// Downscale returns img resized so that its longer side is at most limit,
// using bilinear interpolation. Images within the limit are returned as is.
func Downscale(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := Size(b.Dx(), b.Dy(), limit)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodePayload encodes img as PNG and returns it base64 encoded with the
// standard alphabet and padding.
func EncodePayload(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncode, err, "encode preview png")
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodePayload reverses EncodePayload. A leading data URL prefix is
// accepted. Any registered image format decodes, not only PNG.
func DecodePayload(s string) (image.Image, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), dataURLPrefix)
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidPayload, "empty image data")
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPayload, err, "image data is not base64")
	}
	img, _, err := Decode(bytes.NewReader(raw))
	return img, err
}

// Decode reads an image in any supported format and reports the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeDecode, err, "decode image")
	}
	return img, format, nil
}

// Open decodes the image file at path.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s", path)
	}
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeDecode, err, "decode %s", path)
	}
	return img, format, nil
}
