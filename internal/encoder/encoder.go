package encoder

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/usecase/photo"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

// ImageEncoder resizes and re-encodes image buffers. Pure CPU work: it never
// touches network or disk.
type ImageEncoder struct{}

// compile-time check: *ImageEncoder must satisfy port.ImageEncoder
var _ port.ImageEncoder = (*ImageEncoder)(nil)

func NewImageEncoder() *ImageEncoder {
	log.Println("initialising image encoder...")
	return &ImageEncoder{}
}

// decode reads the source and applies any embedded EXIF orientation so the
// pixel buffer is correctly rotated before resizing. Camera originals
// frequently carry non-identity orientation tags.
func decode(src []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", photo.ErrDecode, err)
	}
	return img, nil
}

// Probe reports the orientation-corrected pixel dimensions of the source.
func (e *ImageEncoder) Probe(src []byte) (model.Dimensions, error) {
	img, err := decode(src)
	if err != nil {
		return model.Dimensions{}, err
	}
	b := img.Bounds()
	return model.Dimensions{Width: b.Dx(), Height: b.Dy()}, nil
}

// Encode produces a resized, re-encoded buffer for the given profile.
//   - cover fit (width+height): centered crop-to-fill at exactly W×H.
//   - inside fit (width only): scale to fit within the width, never enlarging
//     a source already smaller than the target.
func (e *ImageEncoder) Encode(src []byte, profile variant.SizeProfile, format port.ImageFormat) (port.EncodedImage, error) {
	img, err := decode(src)
	if err != nil {
		return port.EncodedImage{}, err
	}
	return encodeImage(resize(img, profile), profile.Quality, format)
}

func resize(img image.Image, profile variant.SizeProfile) image.Image {
	if profile.Fit == variant.FitCover && profile.Height > 0 {
		return imaging.Fill(img, profile.Width, profile.Height, imaging.Center, imaging.Lanczos)
	}
	if img.Bounds().Dx() <= profile.Width {
		// inside fit never upscales
		return img
	}
	return imaging.Resize(img, profile.Width, 0, imaging.Lanczos)
}

func encodeImage(img image.Image, quality int, format port.ImageFormat) (port.EncodedImage, error) {
	buf := &bytes.Buffer{}

	switch format {
	case port.FormatWebP:
		if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return port.EncodedImage{}, fmt.Errorf("%w: webp: %v", photo.ErrEncode, err)
		}
	default:
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return port.EncodedImage{}, fmt.Errorf("%w: jpeg: %v", photo.ErrEncode, err)
		}
	}

	b := img.Bounds()
	return port.EncodedImage{
		Bytes:  buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
