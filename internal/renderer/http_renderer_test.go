package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/avictorin/photos-ms-go/internal/mock"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
)

func TestRenderGetPhoto_Cases(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewUUID()

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{PhotoOut: []byte(`{"ok":true}`), EtagPhoto: "\"1234\""}
		r := NewHTTPRenderer(c)
		getter := &mock.MockPhotoGetter{}

		out, etag, err := r.RenderGetPhoto(ctx, getter, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(c.PhotoOut) {
			t.Errorf("raw mismatch: got %s want %s", out, c.PhotoOut)
		}
		if etag != c.EtagPhoto {
			t.Errorf("etag mismatch: got %s want %s", etag, c.EtagPhoto)
		}
		if getter.Called {
			t.Error("getter should not be called on cache hit")
		}
		if c.SetPhotoCalled || c.SetEtagPhotoCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		now := time.Now().Add(time.Hour)
		resp := &port.GetPhotoOutput{ValidUntil: now}
		getter := &mock.MockPhotoGetter{Out: resp}
		r := NewHTTPRenderer(c)

		out, etag, err := r.RenderGetPhoto(ctx, getter, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if !getter.Called {
			t.Error("getter should be called on cache miss")
		}
		if !c.SetPhotoCalled || !c.SetEtagPhotoCalled {
			t.Error("cache should be written on miss")
		}
		if string(c.PhotoOut) != string(expected) {
			t.Errorf("cache data mismatch: got %s want %s", c.PhotoOut, expected)
		}
		if c.EtagPhoto != expEtag {
			t.Errorf("cached etag mismatch: got %s want %s", c.EtagPhoto, expEtag)
		}
	})

	t.Run("getter error", func(t *testing.T) {
		c := &mock.Cache{}
		g := &mock.MockPhotoGetter{Err: errors.New("fail")}
		r := NewHTTPRenderer(c)

		_, _, err := r.RenderGetPhoto(ctx, g, id)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !g.Called {
			t.Error("getter should be called when cache miss")
		}
		if c.SetPhotoCalled || c.SetEtagPhotoCalled {
			t.Error("cache should not be written on error")
		}
	})

	t.Run("cache error", func(t *testing.T) {
		c := &mock.Cache{GetPhotoErr: errors.New("boom")}
		now := time.Now().Add(time.Hour)
		resp := &port.GetPhotoOutput{ValidUntil: now}
		g := &mock.MockPhotoGetter{Out: resp}
		r := NewHTTPRenderer(c)

		_, _, err := r.RenderGetPhoto(ctx, g, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.Called {
			t.Error("getter should be called when cache returns error")
		}
		if !c.SetPhotoCalled || !c.SetEtagPhotoCalled {
			t.Error("cache should be written when missing due to error")
		}
	})
}
