package model

import (
	"time"

	"github.com/avictorin/photos-ms-go/internal/uuid"
)

// Photo mirrors the photos table. S3Key is the original (and large) blob key;
// ThumbnailS3Key and MediumS3Key stay nil until the derivative pipeline has
// populated them.
type Photo struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	S3Key          string      `json:"s3_key"`
	ThumbnailS3Key *string     `json:"thumbnail_s3_key"`
	MediumS3Key    *string     `json:"medium_s3_key"`
	Category       string      `json:"category"`
	Tags           StringList  `json:"tags"`
	Dimensions     *Dimensions `json:"dimensions"`
	Featured       bool        `json:"featured"`
	Price          *float64    `json:"price"`
	LikesCount     int         `json:"likes_count"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// HasVariants reports whether the derivative pipeline already ran to
// completion for this photo.
func (p *Photo) HasVariants() bool {
	return p.ThumbnailS3Key != nil && p.MediumS3Key != nil
}
