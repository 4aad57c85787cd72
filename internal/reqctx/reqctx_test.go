package reqctx

import (
	"context"
	"testing"

	"conduit/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, Viewer(ctx))

	ctx = WithIdentity(ctx, models.Identity{UserID: 7, Token: "tok"})
	id, ok := GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id.UserID)
	assert.Equal(t, "tok", Viewer(ctx).Token)
}

func TestRequestID(t *testing.T) {
	_, ok := GetRequestID(context.Background())
	assert.False(t, ok)

	rid, ok := GetRequestID(WithRequestID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", rid)
}
