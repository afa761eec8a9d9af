package photo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/uuid"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

// detailsTTL bounds how long a rendered photo payload may be served from
// cache before being rebuilt.
const detailsTTL = time.Hour

type getPhotoSrv struct {
	repo port.PhotoRepository
	res  variant.Resolver
}

// compile-time check: *getPhotoSrv must satisfy port.PhotoGetter
var _ port.PhotoGetter = (*getPhotoSrv)(nil)

// NewPhotoGetter constructs a PhotoGetter implementation.
func NewPhotoGetter(repo port.PhotoRepository, res variant.Resolver) port.PhotoGetter {
	return &getPhotoSrv{repo: repo, res: res}
}

// GetPhoto returns the photo record together with its resolved public URL
// family. URLs are derived from the original key alone; a photo whose
// pipeline never ran still resolves, just to dangling variant URLs.
func (s *getPhotoSrv) GetPhoto(ctx context.Context, id uuid.UUID) (*port.GetPhotoOutput, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	urls := s.res.ResolveURLs(p.S3Key)

	return &port.GetPhotoOutput{
		ValidUntil: time.Now().Add(detailsTTL),
		Photo:      *p,
		URLs:       urls,
		SrcSetAttr: urls.SrcSetAttr(),
	}, nil
}
