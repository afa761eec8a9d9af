package mock

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// MockPhotoGetter implements port.PhotoGetter for tests.
type MockPhotoGetter struct {
	Out    *port.GetPhotoOutput
	Err    error
	Called bool
}

func (m *MockPhotoGetter) GetPhoto(ctx context.Context, id uuid.UUID) (*port.GetPhotoOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockPhotoOptimiser implements port.PhotoOptimiser for tests.
type MockPhotoOptimiser struct {
	Out    *port.OptimisePhotoOutput
	Err    error
	Called bool
	GotKey string
}

func (m *MockPhotoOptimiser) OptimisePhoto(ctx context.Context, originalKey string) (*port.OptimisePhotoOutput, error) {
	m.Called = true
	m.GotKey = originalKey
	return m.Out, m.Err
}

// MockPhotoDeleter implements port.PhotoDeleter for tests.
type MockPhotoDeleter struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockPhotoDeleter) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockUploadLinkGenerator implements port.UploadLinkGenerator for tests.
type MockUploadLinkGenerator struct {
	Out    port.GenerateUploadLinkOutput
	Err    error
	Called bool
	GotIn  port.GenerateUploadLinkInput
}

func (m *MockUploadLinkGenerator) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	m.Called = true
	m.GotIn = in
	return m.Out, m.Err
}

// MockBacklogOptimiser implements port.BacklogOptimiser for tests.
type MockBacklogOptimiser struct {
	Err    error
	Called bool
}

func (m *MockBacklogOptimiser) OptimiseBacklog(ctx context.Context) error {
	m.Called = true
	return m.Err
}
