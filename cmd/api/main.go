package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avictorin/photos-ms-go/internal/cache"
	"github.com/avictorin/photos-ms-go/internal/config"
	"github.com/avictorin/photos-ms-go/internal/db"
	"github.com/avictorin/photos-ms-go/internal/encoder"
	"github.com/avictorin/photos-ms-go/internal/flight"
	"github.com/avictorin/photos-ms-go/internal/handler"
	"github.com/avictorin/photos-ms-go/internal/handler/api"
	"github.com/avictorin/photos-ms-go/internal/logger"
	cMiddleware "github.com/avictorin/photos-ms-go/internal/middleware"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/renderer"
	"github.com/avictorin/photos-ms-go/internal/repository/postgres"
	"github.com/avictorin/photos-ms-go/internal/storage"
	photoSvc "github.com/avictorin/photos-ms-go/internal/usecase/photo"
	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.Bucket)

	photoRepo := postgres.NewPhotoRepository(database.DB)
	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	admin := cMiddleware.WithAdminAuth(cfg.JWTSecret)

	uploadLinkGeneratorSvc := photoSvc.NewUploadLinkGenerator(photoRepo, strg, msuuid.NewUUID, cfg.Bucket)
	r.With(admin).
		Post("/photos/generate_upload_link", api.GenerateUploadLinkHandler(uploadLinkGeneratorSvc))

	optimiseSvc := photoSvc.NewPhotoOptimiser(photoRepo, strg, encoder.NewImageEncoder(), ca, photoSvc.PipelineConfig{
		Bucket:                cfg.Bucket,
		CallTimeout:           cfg.ExternalCallTimeout,
		ReencodeLarge:         cfg.ReencodeLarge,
		ThumbnailTargetSizeKB: cfg.ThumbnailTargetSizeKB,
	})
	guard := flight.NewKeyGuard()
	r.With(admin).
		Post("/photos/optimise", api.OptimisePhotoHandler(optimiseSvc, guard))

	getPhotoSvc := photoSvc.NewPhotoGetter(photoRepo, variant.NewResolver(cfg.Bucket, cfg.S3Region, cfg.CDNDomain))
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithPhotoID()).
		Get("/photos/{id}", api.GetPhotoHandler(rendererSvc, getPhotoSvc))

	deletePhotoSvc := photoSvc.NewPhotoDeleter(photoRepo, ca, strg, cfg.Bucket)
	r.With(admin, cMiddleware.WithPhotoID()).
		Delete("/photos/{id}", api.DeletePhotoHandler(deletePhotoSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
