package port

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the photo getter use case.
// It provides caching capabilities and returns both the JSON representation
// of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetPhoto(ctx context.Context, getter PhotoGetter, id uuid.UUID) ([]byte, string, error)
}
