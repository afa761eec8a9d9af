package photo

import (
	"context"

	"github.com/avictorin/photos-ms-go/internal/logger"
	"github.com/avictorin/photos-ms-go/internal/port"
)

type backlogOptimiserSrv struct {
	repo  port.PhotoRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogOptimiserSrv must satisfy port.BacklogOptimiser
var _ port.BacklogOptimiser = (*backlogOptimiserSrv)(nil)

// NewBacklogOptimiser constructs a BacklogOptimiser implementation.
func NewBacklogOptimiser(repo port.PhotoRepository, tasks port.TaskDispatcher) port.BacklogOptimiser {
	return &backlogOptimiserSrv{repo, tasks}
}

// OptimiseBacklog looks for photos whose variant keys are still missing and
// enqueues optimisation tasks for them. Re-running is harmless: the pipeline
// is idempotent and re-derives the same keys.
func (s *backlogOptimiserSrv) OptimiseBacklog(ctx context.Context) error {
	ids, err := s.repo.ListMissingVariants(ctx)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no photos found to optimise")
	}

	for _, id := range ids {
		logger.Infof(ctx, "starting optimisation for photo #%s", id)
		if err := s.tasks.EnqueueOptimisePhoto(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue optimise task for photo #%s: %v", id, err)
		}
	}
	return nil
}
