package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	guuid "github.com/google/uuid"

	"github.com/avictorin/photos-ms-go/internal/api_context"
	"github.com/avictorin/photos-ms-go/internal/mock"
	photoUC "github.com/avictorin/photos-ms-go/internal/usecase/photo"
	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
)

func TestGetPhotoHandler(t *testing.T) {
	validID := msuuid.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	tests := []struct {
		name           string
		ctxID          *msuuid.UUID
		renderer       *mock.MockHTTPRenderer
		ifNoneMatch    string
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			renderer:       &mock.MockHTTPRenderer{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "not found",
			ctxID:          &validID,
			renderer:       &mock.MockHTTPRenderer{Err: photoUC.ErrObjectNotFound},
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Photo not found",
		},
		{
			name:           "renderer error",
			ctxID:          &validID,
			renderer:       &mock.MockHTTPRenderer{Err: errors.New("boom")},
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not get photo details",
		},
		{
			name:           "happy path",
			ctxID:          &validID,
			renderer:       &mock.MockHTTPRenderer{Data: []byte(`{"photo":{}}`), Etag: `"cafebabe"`},
			wantStatus:     http.StatusOK,
			wantBodySubstr: `{"photo":{}}`,
		},
		{
			name:        "etag match",
			ctxID:       &validID,
			renderer:    &mock.MockHTTPRenderer{Data: []byte(`{"photo":{}}`), Etag: `"cafebabe"`},
			ifNoneMatch: `"cafebabe"`,
			wantStatus:  http.StatusNotModified,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := GetPhotoHandler(tc.renderer, &mock.MockPhotoGetter{})

			req := httptest.NewRequest(http.MethodGet, "/photos/"+validID.String(), nil)
			if tc.ctxID != nil {
				req = req.WithContext(context.WithValue(req.Context(), api_context.PhotoIDKey, *tc.ctxID))
			}
			if tc.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tc.ifNoneMatch)
			}

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantBodySubstr != "" && !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodySubstr)
			}
			if tc.wantStatus == http.StatusOK {
				if got := rec.Header().Get("ETag"); got != tc.renderer.Etag {
					t.Errorf("ETag = %q; want %q", got, tc.renderer.Etag)
				}
				if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
					t.Errorf("Cache-Control = %q", got)
				}
			}
			if tc.wantStatus == http.StatusNotModified && rec.Body.Len() != 0 {
				t.Errorf("304 must have an empty body, got %q", rec.Body.String())
			}
		})
	}
}
