package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/avictorin/photos-ms-go/internal/flight"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/task"
	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
)

// OptimisePhotoHandler handles an optimise-photo task. The queue payload
// carries the photo ID; the original key is looked up from the record before
// delegating to the pipeline. The guard serialises concurrent tasks for the
// same key: a busy key returns an error so asynq retries the task later.
func OptimisePhotoHandler(ctx context.Context, p task.OptimisePhotoPayload, repo port.PhotoRepository, svc port.PhotoOptimiser, guard *flight.KeyGuard) error {
	id, err := uuid.Parse(p.PhotoID)
	if err != nil {
		log.Printf("❌  Invalid photo ID %q: %v", p.PhotoID, err)
		return err
	}

	rec, err := repo.GetByID(ctx, msuuid.UUID(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// record deleted since enqueue, nothing left to optimise
			log.Printf("⚠️  Photo #%s no longer exists, skipping", id)
			return nil
		}
		log.Printf("❌  Failed to load photo #%s: %v", id, err)
		return err
	}

	if !guard.TryAcquire(rec.S3Key) {
		log.Printf("⚠️  Optimisation already in progress for key %q, retrying later", rec.S3Key)
		return fmt.Errorf("optimisation already in progress for key %q", rec.S3Key)
	}
	defer guard.Release(rec.S3Key)

	out, err := svc.OptimisePhoto(ctx, rec.S3Key)
	if err != nil {
		log.Printf("❌  Failed to optimise photo #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully optimised photo #%s (%d variant error(s))", id, len(out.Errors))
	return nil
}
