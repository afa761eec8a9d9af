package port

import (
	"context"
	"time"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

type UUIDGen func() uuid.UUID

// Variant pipeline stages, used in per-variant error reports.
const (
	StageEncode = "encode"
	StageUpload = "upload"
)

// VariantError describes one variant's failure without aborting its siblings.
type VariantError struct {
	Profile string `json:"profile"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// OptimisePhotoOutput is the aggregate pipeline result. Keys are only set for
// variants that were encoded and uploaded successfully; LargeKey is always the
// original key. Dimensions are those of the original and are reported
// regardless of variant outcomes.
type OptimisePhotoOutput struct {
	ThumbnailKey string           `json:"thumbnail_key,omitempty"`
	MediumKey    string           `json:"medium_key,omitempty"`
	LargeKey     string           `json:"large_key"`
	Dimensions   model.Dimensions `json:"dimensions"`
	Errors       []VariantError   `json:"errors,omitempty"`
}

// Partial reports whether some variants failed while others succeeded.
func (o *OptimisePhotoOutput) Partial() bool {
	return len(o.Errors) > 0 && (o.ThumbnailKey != "" || o.MediumKey != "")
}

// PhotoOptimiser runs the image derivative pipeline for one original key.
// Callers must serialise concurrent invocations for the same key.
type PhotoOptimiser interface {
	OptimisePhoto(ctx context.Context, originalKey string) (*OptimisePhotoOutput, error)
}

// PhotoGetter retrieves photo information from the repository and resolves
// the public URL set.
type PhotoGetter interface {
	GetPhoto(ctx context.Context, id uuid.UUID) (*GetPhotoOutput, error)
}
type GetPhotoOutput struct {
	ValidUntil time.Time       `json:"valid_until"`
	Photo      model.Photo     `json:"photo"`
	URLs       variant.URLSet  `json:"urls"`
	SrcSetAttr string          `json:"srcset_attr"`
}

// PhotoDeleter deletes a photo record together with its whole blob family.
type PhotoDeleter interface {
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

// UploadLinkGenerator creates the photo record and returns a presigned link
// to upload the original.
type UploadLinkGenerator interface {
	GenerateUploadLink(ctx context.Context, in GenerateUploadLinkInput) (GenerateUploadLinkOutput, error)
}
type GenerateUploadLinkInput struct {
	Title    string
	Filename string
	Category string
}
type GenerateUploadLinkOutput struct {
	ID    uuid.UUID `json:"id"`
	S3Key string    `json:"s3_key"`
	URL   string    `json:"url"`
}

// BacklogOptimiser enqueues optimisation tasks for photos whose variants are
// missing.
type BacklogOptimiser interface {
	OptimiseBacklog(ctx context.Context) error
}
