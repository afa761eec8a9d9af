package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avictorin/photos-ms-go/internal/handler/api"
	"github.com/avictorin/photos-ms-go/internal/migration"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/repository/postgres"
	photoSvc "github.com/avictorin/photos-ms-go/internal/usecase/photo"
	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/test/testutil"
)

func TestGenerateUploadLinkIntegration_Success(t *testing.T) {
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer testDB.Cleanup()
	database := testDB.DB
	if err := migration.MigrateUp(database); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	bCleanup, err := testutil.SetupTestBucket(GlobalMinioClient)
	if err != nil {
		t.Fatalf("setup bucket: %v", err)
	}
	defer bCleanup()

	photoRepo := postgres.NewPhotoRepository(database)
	svc := photoSvc.NewUploadLinkGenerator(photoRepo, GlobalStrg, msuuid.NewUUID, testutil.TestBucket)

	in := port.GenerateUploadLinkInput{
		Filename: "Forest At Dawn.JPG",
		Category: "Nature",
	}

	out, err := svc.GenerateUploadLink(context.Background(), in)
	if err != nil {
		t.Fatalf("GenerateUploadLink returned error: %v", err)
	}

	if out.ID == msuuid.UUID(uuid.Nil) {
		t.Fatal("expected non-empty ID")
	}
	wantKey := "gallery/nature/forest-at-dawn.jpg"
	if out.S3Key != wantKey {
		t.Errorf("S3Key = %q; want %q", out.S3Key, wantKey)
	}

	if out.URL == "" {
		t.Fatal("expected non-empty presigned URL")
	}
	u, err := url.Parse(out.URL)
	if err != nil {
		t.Fatalf("invalid URL %q: %v", out.URL, err)
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		t.Fatalf("unexpected URL path: %s", u.Path)
	}
	bucketName, objectKey := parts[0], parts[1]
	if bucketName != testutil.TestBucket {
		t.Errorf("expected bucket %q, got %q", testutil.TestBucket, bucketName)
	}
	if objectKey != wantKey {
		t.Errorf("expected objectKey %q, got %q", wantKey, objectKey)
	}

	var (
		id        msuuid.UUID
		title     string
		category  string
		thumbnail *string
		medium    *string
	)
	row := database.QueryRowContext(context.Background(),
		"SELECT id, title, category, thumbnail_s3_key, medium_s3_key FROM photos WHERE s3_key = $1", wantKey)
	if err := row.Scan(&id, &title, &category, &thumbnail, &medium); err != nil {
		t.Fatalf("failed to scan photo record: %v", err)
	}

	if id != out.ID {
		t.Errorf("expected ID %q, got %q", out.ID, id)
	}
	// title falls back to the filename base, unslugged
	if title != "Forest At Dawn" {
		t.Errorf("title = %q; want %q", title, "Forest At Dawn")
	}
	if category != in.Category {
		t.Errorf("category = %q; want %q", category, in.Category)
	}
	if thumbnail != nil || medium != nil {
		t.Errorf("variant keys should start empty, got %v / %v", thumbnail, medium)
	}
}

func TestGenerateUploadLinkIntegration_ErrorValidation(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/photos/generate_upload_link", api.GenerateUploadLinkHandler(nil))

	// Missing `filename` and `category` entirely
	req := httptest.NewRequest(http.MethodPost, "/photos/generate_upload_link", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", res.StatusCode, http.StatusBadRequest)
	}

	var errMap map[string]string
	if err := json.NewDecoder(res.Body).Decode(&errMap); err != nil {
		t.Fatalf("decoding validation JSON: %v", err)
	}
	for _, field := range []string{"filename", "category"} {
		msg, ok := errMap[field]
		if !ok {
			t.Fatalf("expected a %q key in error map, got %v", field, errMap)
		}
		if !strings.Contains(msg, "required") {
			t.Errorf("%s error = %q; want to mention \"required\"", field, msg)
		}
	}
}
