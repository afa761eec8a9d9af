package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avictorin/photos-ms-go/internal/db"
	"github.com/avictorin/photos-ms-go/internal/migration"
	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/repository/postgres"
	"github.com/avictorin/photos-ms-go/internal/task"
	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
	"github.com/avictorin/photos-ms-go/test/testutil"
)

func setupWorker(t *testing.T) (*postgres.PhotoRepository, func()) {
	t.Helper()

	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	dbConn := testDB.DB
	if err := migration.MigrateUp(dbConn); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	bCleanup, err := testutil.SetupTestBucket(GlobalMinioClient)
	if err != nil {
		t.Fatalf("setup bucket: %v", err)
	}

	repo := postgres.NewPhotoRepository(dbConn)
	workerStop := testutil.StartWorker(&db.Database{DB: dbConn}, GlobalStrg, RedisAddr, testutil.TestBucket)

	cleanup := func() {
		workerStop()
		_ = bCleanup()
		_ = testDB.Cleanup()
	}

	return repo, cleanup
}

func waitVariants(t *testing.T, repo *postgres.PhotoRepository, id msuuid.UUID) *model.Photo {
	t.Helper()
	deadline := time.Now().Add(15 * time.Second)
	for {
		out, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if out.HasVariants() {
			return out
		}
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for variants of %s", id)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func TestOptimiseTaskIntegration_SuccessJPEG(t *testing.T) {
	ctx := context.Background()

	repo, cleanup := setupWorker(t)
	defer cleanup()

	id := msuuid.UUID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	objectKey := "gallery/nature/forest.jpg"
	width, height := 1600, 900
	content := testutil.GenerateJPEG(t, width, height)
	p := &model.Photo{
		ID:       id,
		Title:    "Forest",
		S3Key:    objectKey,
		Category: "Nature",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("insert photo: %v", err)
	}
	if err := GlobalStrg.SaveFile(ctx, testutil.TestBucket, objectKey, bytes.NewReader(content), int64(len(content)), map[string]string{"Content-Type": "image/jpeg"}); err != nil {
		t.Fatalf("upload file: %v", err)
	}

	dispatcher := task.NewDispatcher(RedisAddr, "")
	if err := dispatcher.EnqueueOptimisePhoto(ctx, id); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	out := waitVariants(t, repo, id)

	keys := variant.DeriveKeys(objectKey)
	if out.ThumbnailS3Key == nil || *out.ThumbnailS3Key != keys.Thumbnail {
		t.Errorf("ThumbnailS3Key = %v; want %q", out.ThumbnailS3Key, keys.Thumbnail)
	}
	if out.MediumS3Key == nil || *out.MediumS3Key != keys.Medium {
		t.Errorf("MediumS3Key = %v; want %q", out.MediumS3Key, keys.Medium)
	}
	if out.Dimensions == nil || out.Dimensions.Width != width || out.Dimensions.Height != height {
		t.Errorf("Dimensions = %+v; want %dx%d", out.Dimensions, width, height)
	}

	for _, key := range []string{keys.Thumbnail, keys.Medium, keys.Large} {
		exists, err := GlobalStrg.FileExists(ctx, testutil.TestBucket, key)
		if err != nil || !exists {
			t.Fatalf("variant %q missing: %v", key, err)
		}
	}

	// the original must be left untouched
	info, err := GlobalStrg.StatFile(ctx, testutil.TestBucket, objectKey)
	if err != nil {
		t.Fatalf("stat original: %v", err)
	}
	if info.SizeBytes != int64(len(content)) {
		t.Errorf("original size changed: %d != %d", info.SizeBytes, len(content))
	}
}

func TestOptimiseTaskIntegration_SuccessWebPSource(t *testing.T) {
	ctx := context.Background()

	repo, cleanup := setupWorker(t)
	defer cleanup()

	id := msuuid.UUID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	objectKey := "gallery/abstract/waves.webp"
	content := testutil.GenerateWebP(t, 800, 600)
	p := &model.Photo{
		ID:       id,
		Title:    "Waves",
		S3Key:    objectKey,
		Category: "Abstract",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("insert photo: %v", err)
	}
	if err := GlobalStrg.SaveFile(ctx, testutil.TestBucket, objectKey, bytes.NewReader(content), int64(len(content)), map[string]string{"Content-Type": "image/webp"}); err != nil {
		t.Fatalf("upload file: %v", err)
	}

	dispatcher := task.NewDispatcher(RedisAddr, "")
	if err := dispatcher.EnqueueOptimisePhoto(ctx, id); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	out := waitVariants(t, repo, id)

	keys := variant.DeriveKeys(objectKey)
	if out.ThumbnailS3Key == nil || *out.ThumbnailS3Key != keys.Thumbnail {
		t.Errorf("ThumbnailS3Key = %v; want %q", out.ThumbnailS3Key, keys.Thumbnail)
	}
	if out.Dimensions == nil || out.Dimensions.Width != 800 || out.Dimensions.Height != 600 {
		t.Errorf("Dimensions = %+v; want 800x600", out.Dimensions)
	}
	exists, err := GlobalStrg.FileExists(ctx, testutil.TestBucket, keys.Medium)
	if err != nil || !exists {
		t.Fatalf("medium variant missing: %v", err)
	}
}

func TestOptimiseTaskIntegration_ErrorMissingFile(t *testing.T) {
	ctx := context.Background()

	repo, cleanup := setupWorker(t)
	defer cleanup()

	id := msuuid.UUID(uuid.MustParse("33333333-3333-3333-3333-333333333333"))
	p := &model.Photo{
		ID:       id,
		Title:    "Ghost",
		S3Key:    "gallery/nature/ghost.jpg",
		Category: "Nature",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("insert photo: %v", err)
	}
	// Note: file is not uploaded to storage

	dispatcher := task.NewDispatcher(RedisAddr, "")
	if err := dispatcher.EnqueueOptimisePhoto(ctx, id); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// wait a short period
	time.Sleep(3 * time.Second)
	out, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if out.HasVariants() {
		t.Error("unexpected variants when file missing")
	}
}
