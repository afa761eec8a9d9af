package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/avictorin/photos-ms-go/internal/logger"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

// Variants are immutable once written; browsers and the CDN may cache them
// for a year because a re-upload under the same key is byte-equivalent.
const variantCacheControl = "public, max-age=31536000, immutable"

// PipelineConfig carries the static knobs of the optimise pipeline.
type PipelineConfig struct {
	Bucket string
	// CallTimeout bounds each external call (blob fetch, blob upload, record
	// write) individually. Zero disables the per-call budget.
	CallTimeout time.Duration
	// ReencodeLarge re-encodes `large` at its profile quality instead of
	// keeping the original bytes under the original key.
	ReencodeLarge bool
	// ThumbnailTargetSizeKB switches the thumbnail to the byte-budget quality
	// search when > 0.
	ThumbnailTargetSizeKB int
}

type optimisePhotoSrv struct {
	repo  port.PhotoRepository
	strg  port.Storage
	enc   port.ImageEncoder
	cache port.Cache
	cfg   PipelineConfig
}

// compile-time check: *optimisePhotoSrv must satisfy port.PhotoOptimiser
var _ port.PhotoOptimiser = (*optimisePhotoSrv)(nil)

// NewPhotoOptimiser constructs the derivative pipeline orchestrator.
func NewPhotoOptimiser(repo port.PhotoRepository, strg port.Storage, enc port.ImageEncoder, cache port.Cache, cfg PipelineConfig) port.PhotoOptimiser {
	return &optimisePhotoSrv{repo, strg, enc, cache, cfg}
}

type variantResult struct {
	profile string
	key     string
	failure *port.VariantError
}

// OptimisePhoto fetches the original once, probes it, then encodes and
// uploads every derived variant concurrently. A variant failing never aborts
// its siblings; failures are aggregated in the output. The record is updated
// in one write, only when at least one variant made it to storage, and only
// for the columns that did.
func (s *optimisePhotoSrv) OptimisePhoto(ctx context.Context, originalKey string) (*port.OptimisePhotoOutput, error) {
	logger.Infof(ctx, "optimising photo %q...", originalKey)

	fetchCtx, cancel := s.callCtx(ctx)
	defer cancel()
	reader, err := s.strg.GetFile(fetchCtx, s.cfg.Bucket, originalKey)
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(reader)
	_ = reader.Close()
	if err != nil {
		return nil, fmt.Errorf("reading original %q: %w", originalKey, err)
	}

	dims, err := s.enc.Probe(src)
	if err != nil {
		return nil, err
	}

	keys := variant.DeriveKeys(originalKey)
	out := &port.OptimisePhotoOutput{LargeKey: keys.Large, Dimensions: dims}

	type job struct {
		profile variant.SizeProfile
		key     string
	}
	jobs := []job{
		{variant.Thumbnail, keys.Thumbnail},
		{variant.Medium, keys.Medium},
	}
	if s.cfg.ReencodeLarge {
		jobs = append(jobs, job{variant.Large, keys.Large})
	}

	results := make(chan variantResult, len(jobs))
	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			results <- s.processVariant(ctx, j.profile, j.key, src)
		}(j)
	}
	wg.Wait()
	close(results)

	for r := range results {
		if r.failure != nil {
			out.Errors = append(out.Errors, *r.failure)
			continue
		}
		switch r.profile {
		case variant.Thumbnail.Name:
			out.ThumbnailKey = r.key
		case variant.Medium.Name:
			out.MediumKey = r.key
		}
	}
	// stable ordering, fan-out completion order is not deterministic
	sort.Slice(out.Errors, func(i, j int) bool { return out.Errors[i].Profile < out.Errors[j].Profile })

	if out.ThumbnailKey == "" && out.MediumKey == "" {
		logger.Warnf(ctx, "no variant of photo %q reached storage; record left untouched", originalKey)
		return out, nil
	}

	if err := s.updateRecord(ctx, originalKey, out); err != nil {
		// variants are uploaded but the record does not reflect them
		return out, fmt.Errorf("%w: %v", ErrRecordUpdate, err)
	}

	logger.Infof(ctx, "✅  optimised photo %q (%d variant error(s))", originalKey, len(out.Errors))
	return out, nil
}

func (s *optimisePhotoSrv) processVariant(ctx context.Context, p variant.SizeProfile, key string, src []byte) variantResult {
	var (
		img port.EncodedImage
		err error
	)
	if p.Name == variant.Thumbnail.Name && s.cfg.ThumbnailTargetSizeKB > 0 {
		var res port.BudgetResult
		res, err = s.enc.FitToByteBudget(src, p.Width, s.cfg.ThumbnailTargetSizeKB, port.BudgetOptions{})
		img = res.Image
	} else {
		img, err = s.enc.Encode(src, p, port.FormatJPEG)
	}
	if err != nil {
		logger.Warnf(ctx, "encoding %q variant of key %q failed: %v", p.Name, key, err)
		return variantResult{profile: p.Name, failure: &port.VariantError{
			Profile: p.Name,
			Stage:   port.StageEncode,
			Message: err.Error(),
		}}
	}

	saveCtx, cancel := s.callCtx(ctx)
	defer cancel()
	opts := map[string]string{
		"Content-Type":  port.FormatJPEG.ContentType(),
		"Cache-Control": variantCacheControl,
	}
	if err := s.strg.SaveFile(saveCtx, s.cfg.Bucket, key, bytes.NewReader(img.Bytes), int64(len(img.Bytes)), opts); err != nil {
		logger.Warnf(ctx, "uploading %q variant to key %q failed: %v", p.Name, key, err)
		return variantResult{profile: p.Name, failure: &port.VariantError{
			Profile: p.Name,
			Stage:   port.StageUpload,
			Message: err.Error(),
		}}
	}

	return variantResult{profile: p.Name, key: key}
}

func (s *optimisePhotoSrv) updateRecord(ctx context.Context, originalKey string, out *port.OptimisePhotoOutput) error {
	getCtx, cancel := s.callCtx(ctx)
	defer cancel()
	rec, err := s.repo.GetByKey(getCtx, originalKey)
	if err != nil {
		return fmt.Errorf("fetching record for key %q: %v", originalKey, err)
	}

	upd := port.VariantUpdate{}
	if out.ThumbnailKey != "" {
		upd.ThumbnailS3Key = &out.ThumbnailKey
	}
	if out.MediumKey != "" {
		upd.MediumS3Key = &out.MediumKey
	}
	upd.Dimensions = &out.Dimensions

	updCtx, cancel := s.callCtx(ctx)
	defer cancel()
	if err := s.repo.UpdateVariants(updCtx, rec.ID, upd); err != nil {
		return err
	}

	// rendered details are stale now
	if err := s.cache.DeletePhotoDetails(ctx, rec.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for photo #%s: %v", rec.ID, err)
	}
	if err := s.cache.DeleteEtagPhotoDetails(ctx, rec.ID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for photo #%s: %v", rec.ID, err)
	}
	return nil
}

func (s *optimisePhotoSrv) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.CallTimeout)
}
