package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avictorin/photos-ms-go/internal/flight"
	"github.com/avictorin/photos-ms-go/internal/logger"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/usecase/photo"
	"github.com/avictorin/photos-ms-go/internal/validation"
)

type OptimisePhotoRequest struct {
	S3Key string `json:"s3_key" validate:"required,max=255"`
}

// OptimisePhotoHandler runs the derivative pipeline for one original key.
// Concurrent calls for the same key are rejected with 409; re-running a key
// that already finished is fine, the pipeline is idempotent.
func OptimisePhotoHandler(svc port.PhotoOptimiser, guard *flight.KeyGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OptimisePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if !guard.TryAcquire(req.S3Key) {
			WriteError(w, http.StatusConflict, "Optimisation already in progress for this key", nil)
			return
		}
		defer guard.Release(req.S3Key)

		out, err := svc.OptimisePhoto(r.Context(), req.S3Key)
		if err != nil {
			switch {
			case errors.Is(err, photo.ErrObjectNotFound):
				WriteError(w, http.StatusNotFound, "Original photo not found", nil)
			case errors.Is(err, photo.ErrDecode):
				WriteError(w, http.StatusUnprocessableEntity, "Source is not a decodable image", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Failed to optimise photo", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully optimised photo %q (%d variant error(s))", req.S3Key, len(out.Errors))
	}
}
