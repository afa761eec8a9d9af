package photo

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/port"
)

const uploadLinkTTL = 5 * time.Minute

type uploadLinkGeneratorSrv struct {
	repo    port.PhotoRepository
	strg    port.Storage
	genUUID port.UUIDGen
	bucket  string
}

// compile-time check: *uploadLinkGeneratorSrv must satisfy port.UploadLinkGenerator
var _ port.UploadLinkGenerator = (*uploadLinkGeneratorSrv)(nil)

// NewUploadLinkGenerator constructs an UploadLinkGenerator implementation.
func NewUploadLinkGenerator(repo port.PhotoRepository, strg port.Storage, genUUID port.UUIDGen, bucket string) port.UploadLinkGenerator {
	return &uploadLinkGeneratorSrv{repo: repo, strg: strg, genUUID: genUUID, bucket: bucket}
}

// GenerateUploadLink creates the photo record (variant keys empty, to be
// filled by the pipeline) under a slugged gallery key and returns a presigned
// PUT URL for the original. The key's uniqueness is enforced by the record's
// unique constraint: a colliding slug fails the Create, nothing is presigned.
func (s *uploadLinkGeneratorSrv) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	ext := strings.ToLower(path.Ext(in.Filename))
	base := strings.TrimSuffix(in.Filename, path.Ext(in.Filename))

	title := in.Title
	if title == "" {
		title = base
	}

	objectKey := fmt.Sprintf("gallery/%s/%s%s", slugify(in.Category), slugify(base), ext)
	photo := &model.Photo{
		ID:       s.genUUID(),
		Title:    title,
		S3Key:    objectKey,
		Category: in.Category,
	}

	if err := s.repo.Create(ctx, photo); err != nil {
		return port.GenerateUploadLinkOutput{}, err
	}

	url, err := s.strg.GeneratePresignedUploadURL(ctx, s.bucket, objectKey, uploadLinkTTL)
	if err != nil {
		return port.GenerateUploadLinkOutput{}, err
	}

	return port.GenerateUploadLinkOutput{
		ID:    photo.ID,
		S3Key: objectKey,
		URL:   url,
	}, nil
}

// slugify lowercases and collapses anything outside [a-z0-9] into single
// hyphens, so keys stay URL- and S3-safe.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // trims leading hyphens
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
