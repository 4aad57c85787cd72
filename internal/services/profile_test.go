package services

import (
	"context"
	"testing"

	"conduit/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUnfollow(t *testing.T) {
	auth, store := newAuth()
	jake := register(t, auth, "jake")
	register(t, auth, "jane")
	s := NewProfileService(store)
	ctx := context.Background()

	p, err := s.Follow(ctx, jake, "jane")
	require.NoError(t, err)
	assert.True(t, p.Following)

	p, err = s.Follow(ctx, jake, "jane")
	require.NoError(t, err, "повторная подписка идемпотентна")
	assert.True(t, p.Following)

	p, err = s.Get(ctx, "jane", nil)
	require.NoError(t, err)
	assert.False(t, p.Following)

	p, err = s.Unfollow(ctx, jake, "jane")
	require.NoError(t, err)
	assert.False(t, p.Following)

	p, err = s.Unfollow(ctx, jake, "jane")
	require.NoError(t, err)
	assert.False(t, p.Following)
}

func TestFollow_SelfAndMissing(t *testing.T) {
	auth, store := newAuth()
	jake := register(t, auth, "jake")
	s := NewProfileService(store)
	ctx := context.Background()

	_, err := s.Follow(ctx, jake, "jake")
	assert.True(t, apperr.Is(err, apperr.KindUnprocessable))
	assert.Equal(t, "cannot follow yourself", apperr.From(err).Message)

	_, err = s.Unfollow(ctx, jake, "jake")
	assert.Equal(t, "cannot unfollow yourself", apperr.From(err).Message)

	_, err = s.Follow(ctx, jake, "ghost")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
