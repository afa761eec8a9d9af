package port

import (
	"context"
	"time"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// Cache provides caching capabilities for photo retrieval.
type Cache interface {
	GetPhotoDetails(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagPhotoDetails(ctx context.Context, id uuid.UUID) (string, error)
	SetPhotoDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time)
	SetEtagPhotoDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time)
	DeletePhotoDetails(ctx context.Context, id uuid.UUID) error
	DeleteEtagPhotoDetails(ctx context.Context, id uuid.UUID) error
}
