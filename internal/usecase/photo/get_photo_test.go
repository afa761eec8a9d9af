package photo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/avictorin/photos-ms-go/internal/mock"
	"github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

func TestGetPhoto_NotFound(t *testing.T) {
	repo := &mock.MockPhotoRepo{GetErr: sql.ErrNoRows}
	svc := NewPhotoGetter(repo, variant.NewResolver("photos", "eu-west-3", ""))

	_, err := svc.GetPhoto(context.Background(), uuid.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestGetPhoto_RepoError(t *testing.T) {
	repo := &mock.MockPhotoRepo{GetErr: errors.New("db fail")}
	svc := NewPhotoGetter(repo, variant.NewResolver("photos", "eu-west-3", ""))

	if _, err := svc.GetPhoto(context.Background(), uuid.NewUUID()); err == nil || err.Error() != "db fail" {
		t.Fatalf("expected db fail, got %v", err)
	}
}

func TestGetPhoto_Success(t *testing.T) {
	rec := testRecord()
	repo := &mock.MockPhotoRepo{PhotoRecord: rec}
	svc := NewPhotoGetter(repo, variant.NewResolver("photos", "eu-west-3", "cdn.example.com"))

	out, err := svc.GetPhoto(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Photo.ID != rec.ID {
		t.Errorf("photo mismatch: got %+v", out.Photo)
	}
	if out.URLs.Thumbnail != "https://cdn.example.com/gallery/nature/forest-thumb.jpg" {
		t.Errorf("thumbnail URL: got %q", out.URLs.Thumbnail)
	}
	if out.URLs.Full != out.URLs.Large {
		t.Errorf("full must alias large: %q vs %q", out.URLs.Full, out.URLs.Large)
	}
	if out.SrcSetAttr != out.URLs.SrcSetAttr() {
		t.Error("srcset attribute must come from the resolved URL set")
	}
	if !out.ValidUntil.After(time.Now()) {
		t.Errorf("ValidUntil should be in the future, got %s", out.ValidUntil)
	}
}
