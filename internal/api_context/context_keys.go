package api_context

import (
	"context"

	msuuid "github.com/avictorin/photos-ms-go/internal/uuid"
)

type contextKey string

const (
	// PhotoIDKey carries the photo UUID extracted from the route.
	PhotoIDKey contextKey = "photoID"
	// AuthSubjectKey carries the JWT subject of the authenticated admin.
	AuthSubjectKey contextKey = "authSubject"
)

func PhotoIDFromContext(ctx context.Context) (msuuid.UUID, bool) {
	id, ok := ctx.Value(PhotoIDKey).(msuuid.UUID)
	return id, ok
}

func WithAuthSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, AuthSubjectKey, sub)
}

func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthSubjectKey).(string)
	return sub, ok && sub != ""
}
