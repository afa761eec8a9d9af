package testutil

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"github.com/avictorin/photos-ms-go/internal/cache"
	"github.com/avictorin/photos-ms-go/internal/db"
	"github.com/avictorin/photos-ms-go/internal/encoder"
	"github.com/avictorin/photos-ms-go/internal/flight"
	workerHandler "github.com/avictorin/photos-ms-go/internal/handler/worker"
	"github.com/avictorin/photos-ms-go/internal/logger"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/repository/postgres"
	"github.com/avictorin/photos-ms-go/internal/task"
	photoSvc "github.com/avictorin/photos-ms-go/internal/usecase/photo"
)

// StartWorker starts an asynq worker processing optimisation tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(dbConn *db.Database, strg port.Storage, redisAddr, bucket string) func() {
	repo := postgres.NewPhotoRepository(dbConn.DB)
	ca := cache.NewNoop()
	optimiseSvc := photoSvc.NewPhotoOptimiser(repo, strg, encoder.NewImageEncoder(), ca, photoSvc.PipelineConfig{
		Bucket:      bucket,
		CallTimeout: 10 * time.Second,
	})

	guard := flight.NewKeyGuard()
	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeOptimisePhoto, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseOptimisePhotoPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.OptimisePhotoHandler(ctx, p, repo, optimiseSvc, guard)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
