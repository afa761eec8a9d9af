package port

import (
	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

// ImageFormat selects the lossy output codec of an encode.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
)

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	if f == FormatWebP {
		return "image/webp"
	}
	return "image/jpeg"
}

// EncodedImage is a transient, in-memory encode result. It is owned by the
// encode call that produced it and discarded after upload.
type EncodedImage struct {
	Bytes  []byte
	Width  int
	Height int
}

// SizeKB returns the encoded size rounded to whole kilobytes.
func (e EncodedImage) SizeKB() int {
	return (len(e.Bytes) + 512) / 1024
}

// BudgetOptions tune the byte-budget quality search. Zero values fall back to
// the defaults (start 85, floor 60, step 5).
type BudgetOptions struct {
	StartQuality int
	QualityFloor int
	QualityStep  int
}

// BudgetResult is the outcome of a byte-budget search.
type BudgetResult struct {
	Image   EncodedImage
	Quality int
	SizeKB  int
}

// ImageEncoder is a pure buffer-to-buffer transform: no network or disk I/O,
// so it is unit-testable without external services.
type ImageEncoder interface {
	// Probe decodes only far enough to report the (orientation-corrected)
	// pixel dimensions of the source.
	Probe(src []byte) (model.Dimensions, error)
	// Encode produces a resized, re-encoded buffer for the given profile.
	Encode(src []byte, profile variant.SizeProfile, format ImageFormat) (EncodedImage, error)
	// FitToByteBudget lowers encode quality stepwise until the output fits
	// under targetSizeKB, giving up (best effort) at the quality floor.
	FitToByteBudget(src []byte, maxWidth, targetSizeKB int, opts BudgetOptions) (BudgetResult, error)
}
