package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// MinimalPNG 返回一张 1x1 的合法 PNG
func MinimalPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 20, G: 120, B: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
