package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// checkerboard gives JPEG something to compress so encoded sizes react to the
// quality setting.
func checkerboard(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 220, G: 120, B: 40, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 30, G: 60, B: 150, A: 255})
			}
		}
	}
	return img
}

// GenerateJPEG creates a JPEG image of the given size.
func GenerateJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, checkerboard(width, height), imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}
	return buf.Bytes()
}

// GeneratePNG creates a PNG image of the given size.
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, checkerboard(width, height)); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

// GenerateWebP creates a WebP image of the given size.
func GenerateWebP(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, checkerboard(width, height), &webp.Options{Quality: 80}); err != nil {
		t.Fatalf("webp encode failed: %v", err)
	}
	return buf.Bytes()
}
