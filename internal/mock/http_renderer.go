package mock

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called bool
	Getter port.PhotoGetter
	ID     uuid.UUID
}

func (m *MockHTTPRenderer) RenderGetPhoto(ctx context.Context, getter port.PhotoGetter, id uuid.UUID) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	m.ID = id
	return m.Data, m.Etag, m.Err
}
