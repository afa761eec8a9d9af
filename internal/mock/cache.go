package mock

import (
	"context"
	"time"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	PhotoOut []byte

	// etag values
	EtagPhoto string

	// errors
	GetPhotoErr     error
	GetEtagPhotoErr error
	DelPhotoErr     error
	DelEtagPhotoErr error

	// call flags
	GetPhotoCalled     bool
	GetEtagPhotoCalled bool
	SetPhotoCalled     bool
	SetEtagPhotoCalled bool
	DelPhotoCalled     bool
	DelEtagPhotoCalled bool
}

func (c *Cache) GetPhotoDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c.GetPhotoCalled = true
	if c.GetPhotoErr != nil {
		return nil, c.GetPhotoErr
	}
	return c.PhotoOut, nil
}

func (c *Cache) GetEtagPhotoDetails(ctx context.Context, id uuid.UUID) (string, error) {
	c.GetEtagPhotoCalled = true
	if c.GetEtagPhotoErr != nil {
		return "", c.GetEtagPhotoErr
	}
	return c.EtagPhoto, nil
}

func (c *Cache) SetPhotoDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	c.SetPhotoCalled = true
	c.PhotoOut = data
}

func (c *Cache) SetEtagPhotoDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	c.SetEtagPhotoCalled = true
	c.EtagPhoto = etag
}

func (c *Cache) DeletePhotoDetails(ctx context.Context, id uuid.UUID) error {
	c.DelPhotoCalled = true
	return c.DelPhotoErr
}

func (c *Cache) DeleteEtagPhotoDetails(ctx context.Context, id uuid.UUID) error {
	c.DelEtagPhotoCalled = true
	return c.DelEtagPhotoErr
}
