package postgres

import (
	"context"
	"database/sql"
	"log"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

type PhotoRepository struct {
	db *sql.DB
}

// compile-time check: *PhotoRepository must satisfy port.PhotoRepository
var _ port.PhotoRepository = (*PhotoRepository)(nil)

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

const photoColumns = `id, title, description, s3_key, thumbnail_s3_key, medium_s3_key, category, tags, dimensions, featured, price, likes_count, created_at, updated_at`

func (r *PhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	log.Printf("creating database record for photo #%s with key %q...", photo.ID, photo.S3Key)

	const query = `
      INSERT INTO photos
        (id, title, description, s3_key, thumbnail_s3_key, medium_s3_key, category, tags, dimensions, featured, price)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.Title, photo.Description,
		photo.S3Key, photo.ThumbnailS3Key, photo.MediumS3Key,
		photo.Category, photo.Tags, photo.Dimensions,
		photo.Featured, photo.Price,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	log.Printf("fetching photo #%s from the database...", id)

	const query = `
      SELECT ` + photoColumns + `
      FROM photos
      WHERE id = $1
    `
	return r.scanPhoto(r.db.QueryRowContext(ctx, query, id))
}

func (r *PhotoRepository) GetByKey(ctx context.Context, s3Key string) (*model.Photo, error) {
	log.Printf("fetching photo with key %q from the database...", s3Key)

	const query = `
      SELECT ` + photoColumns + `
      FROM photos
      WHERE s3_key = $1
    `
	return r.scanPhoto(r.db.QueryRowContext(ctx, query, s3Key))
}

// UpdateVariants writes only the columns the pipeline produced; nil fields
// keep their previous values so a partial run never nulls out good keys.
func (r *PhotoRepository) UpdateVariants(ctx context.Context, id uuid.UUID, upd port.VariantUpdate) error {
	log.Printf("updating variant keys for photo #%s...", id)

	const query = `
      UPDATE photos
      SET
        thumbnail_s3_key = COALESCE($2, thumbnail_s3_key),
        medium_s3_key    = COALESCE($3, medium_s3_key),
        dimensions       = COALESCE($4, dimensions),
        updated_at       = NOW()
      WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, upd.ThumbnailS3Key, upd.MediumS3Key, upd.Dimensions)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting database record for photo #%s...", id)

	const query = `DELETE FROM photos WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// ListMissingVariants returns the IDs of photos the derivative pipeline has
// not (fully) processed yet.
func (r *PhotoRepository) ListMissingVariants(ctx context.Context) ([]uuid.UUID, error) {
	log.Println("listing photos with missing variant keys...")

	const query = `
      SELECT id
      FROM photos
      WHERE thumbnail_s3_key IS NULL OR medium_s3_key IS NULL
      ORDER BY created_at
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PhotoRepository) scanPhoto(row *sql.Row) (*model.Photo, error) {
	var photo model.Photo
	if err := row.Scan(
		&photo.ID, &photo.Title, &photo.Description,
		&photo.S3Key, &photo.ThumbnailS3Key, &photo.MediumS3Key,
		&photo.Category, &photo.Tags, &photo.Dimensions,
		&photo.Featured, &photo.Price, &photo.LikesCount,
		&photo.CreatedAt, &photo.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &photo, nil
}
