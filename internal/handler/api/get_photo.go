package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/avictorin/photos-ms-go/internal/api_context"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/usecase/photo"
)

func GetPhotoHandler(renderer port.HTTPRenderer, svc port.PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.PhotoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetPhoto(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, photo.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get photo details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached photo #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for photo #%s", id)
	}
}
