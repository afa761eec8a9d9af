package storage

import (
	"fmt"

	"github.com/avictorin/photos-ms-go/internal/usecase/photo"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return photo.ErrObjectNotFound
	case "NoSuchBucket":
		return photo.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return photo.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", photo.ErrInternal, err)
	}
}
