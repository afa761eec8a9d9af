package port

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// VariantUpdate carries the variant columns the pipeline managed to produce.
// Nil fields are left untouched in the database so a partial run never
// overwrites previously-good keys with nulls.
type VariantUpdate struct {
	ThumbnailS3Key *string
	MediumS3Key    *string
	Dimensions     *model.Dimensions
}

// IsEmpty reports whether there is nothing to write.
func (u VariantUpdate) IsEmpty() bool {
	return u.ThumbnailS3Key == nil && u.MediumS3Key == nil && u.Dimensions == nil
}

// PhotoRepository defines persistence operations over the photos table.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Photo, error)
	GetByKey(ctx context.Context, s3Key string) (*model.Photo, error)
	UpdateVariants(ctx context.Context, id uuid.UUID, upd VariantUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListMissingVariants(ctx context.Context) ([]uuid.UUID, error)
}
