package photo

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	// ErrDecode means the source bytes are not a decodable raster image.
	// Fatal for the whole optimise call: nothing can be produced.
	ErrDecode = errors.New("encoder: source is not a decodable image")
	// ErrEncode is an internal encoder failure for one variant. Non-fatal to
	// sibling variants.
	ErrEncode = errors.New("encoder: encoding failed")

	// ErrRecordUpdate wraps a metadata write failure after variants were
	// already uploaded. The blobs exist but the record does not reflect them,
	// so it must reach the caller loudly instead of being swallowed.
	ErrRecordUpdate = errors.New("repository: variant record update failed")
)
