package mock

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// MockPhotoRepo implements repository operations for tests.
type MockPhotoRepo struct {
	PhotoRecord *model.Photo

	GetErr             error
	GetByKeyErr        error
	CreateErr          error
	UpdateVariantsErr  error
	DeleteErr          error
	ListVariantsErr    error
	ListVariantsOut    []uuid.UUID

	GetCalled          bool
	GetByKeyCalled     bool
	GotKey             string
	Created            *model.Photo
	UpdatedID          uuid.UUID
	UpdatedVariants    *port.VariantUpdate
	DeleteCalled       bool
	DeletedID          uuid.UUID
	ListVariantsCalled bool
}

func (m *MockPhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.PhotoRecord, nil
}

func (m *MockPhotoRepo) GetByKey(ctx context.Context, s3Key string) (*model.Photo, error) {
	m.GetByKeyCalled = true
	m.GotKey = s3Key
	if m.GetByKeyErr != nil {
		return nil, m.GetByKeyErr
	}
	return m.PhotoRecord, nil
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *model.Photo) error {
	m.Created = photo
	return m.CreateErr
}

func (m *MockPhotoRepo) UpdateVariants(ctx context.Context, id uuid.UUID, upd port.VariantUpdate) error {
	m.UpdatedID = id
	m.UpdatedVariants = &upd
	return m.UpdateVariantsErr
}

func (m *MockPhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockPhotoRepo) ListMissingVariants(ctx context.Context) ([]uuid.UUID, error) {
	m.ListVariantsCalled = true
	if m.ListVariantsErr != nil {
		return nil, m.ListVariantsErr
	}
	return m.ListVariantsOut, nil
}
