// internal/reqctx/reqctx.go
package reqctx

import (
	"context"

	"conduit/internal/models"
)

type key int

const (
	keyRequestID key = iota
	keyIdentity
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

func GetIdentity(ctx context.Context) (models.Identity, bool) {
	v, ok := ctx.Value(keyIdentity).(models.Identity)
	return v, ok
}

// Viewer возвращает identity зрителя или nil для анонимного запроса.
func Viewer(ctx context.Context) *models.Identity {
	if id, ok := GetIdentity(ctx); ok {
		return &id
	}
	return nil
}
