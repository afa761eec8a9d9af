package photo

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

type deletePhotoSrv struct {
	repo   port.PhotoRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *deletePhotoSrv must satisfy port.PhotoDeleter
var _ port.PhotoDeleter = (*deletePhotoSrv)(nil)

// NewPhotoDeleter constructs a PhotoDeleter implementation.
func NewPhotoDeleter(repo port.PhotoRepository, cache port.Cache, strg port.Storage, bucket string) port.PhotoDeleter {
	return &deletePhotoSrv{repo: repo, cache: cache, strg: strg, bucket: bucket}
}

// DeletePhoto removes the derived variants and the original from storage,
// deletes the DB record and clears the cache. A variant that is already gone
// (pipeline never ran, or a previous partial delete) is not an error.
func (s *deletePhotoSrv) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}

	keys := variant.DeriveKeys(p.S3Key)
	for _, k := range []string{keys.Thumbnail, keys.Medium} {
		if err := s.strg.RemoveFile(ctx, s.bucket, k); err != nil && !errors.Is(err, ErrObjectNotFound) {
			log.Printf("failed to remove variant %q: %v", k, err)
		}
	}

	if err := s.strg.RemoveFile(ctx, s.bucket, p.S3Key); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	if err := s.cache.DeletePhotoDetails(ctx, p.ID); err != nil {
		log.Printf("failed deleting cache for photo #%s: %v", p.ID, err)
	}
	if err := s.cache.DeleteEtagPhotoDetails(ctx, p.ID); err != nil {
		log.Printf("failed deleting etag cache for photo #%s: %v", p.ID, err)
	}

	return nil
}
