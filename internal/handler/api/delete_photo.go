package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/avictorin/photos-ms-go/internal/api_context"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/usecase/photo"
)

// DeletePhotoHandler deletes a photo and its whole blob family by ID.
func DeletePhotoHandler(svc port.PhotoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.PhotoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeletePhoto(r.Context(), id); err != nil {
			if errors.Is(err, photo.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete photo", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted photo #%s", id)
	}
}
