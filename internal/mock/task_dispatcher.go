package mock

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	OptimiseCalled bool
	OptimiseIDs    []uuid.UUID
	OptimiseErr    error
}

func (m *MockDispatcher) EnqueueOptimisePhoto(ctx context.Context, id uuid.UUID) error {
	m.OptimiseCalled = true
	m.OptimiseIDs = append(m.OptimiseIDs, id)
	return m.OptimiseErr
}
