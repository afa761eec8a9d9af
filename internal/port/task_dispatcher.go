package port

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// TaskDispatcher enqueues background work.
type TaskDispatcher interface {
	EnqueueOptimisePhoto(ctx context.Context, id uuid.UUID) error
}
