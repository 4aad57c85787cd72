package services

import (
	"context"
	"testing"

	"conduit/internal/apperr"
	"conduit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newAuth() (*AuthService, *memStore) {
	store := newMemStore()
	return NewAuthService(store, stubTokens{}, NewValidator()), store
}

func register(t *testing.T, s *AuthService, username string) models.Identity {
	t.Helper()
	v, err := s.Register(context.Background(), models.RegisterUser{
		Username: username,
		Email:    username + "@conduit.io",
		Password: "password123",
	})
	require.NoError(t, err)
	u, err := s.repo.GetUserByEmail(context.Background(), username+"@conduit.io")
	require.NoError(t, err)
	return models.Identity{UserID: u.ID, Token: v.Token}
}

func TestRegisterThenLogin(t *testing.T) {
	s, store := newAuth()
	ctx := context.Background()

	v, err := s.Register(ctx, models.RegisterUser{Username: " jake ", Email: "jake@jake.jake", Password: "jakejake"})
	require.NoError(t, err)
	assert.Equal(t, "jake", v.Username)
	assert.Equal(t, "token-1", v.Token)

	stored := store.users[1]
	assert.NotEqual(t, "jakejake", stored.PasswordHash)

	v, err = s.Login(ctx, models.LoginUser{Email: "jake@jake.jake", Password: "jakejake"})
	require.NoError(t, err)
	assert.Equal(t, "jake@jake.jake", v.Email)
	assert.Equal(t, "token-1", v.Token)
}

func TestRegister_Validation(t *testing.T) {
	s, _ := newAuth()

	_, err := s.Register(context.Background(), models.RegisterUser{Username: "", Email: "nope", Password: "short"})
	require.Error(t, err)

	e := apperr.From(err)
	assert.Equal(t, apperr.KindUnprocessable, e.Kind)
	assert.Equal(t, []string{"can't be blank"}, e.Fields["username"])
	assert.Equal(t, []string{"is invalid"}, e.Fields["email"])
	assert.Equal(t, []string{"is too short (minimum is 8 characters)"}, e.Fields["password"])
}

func TestRegister_ControlCharsInUsername(t *testing.T) {
	s, _ := newAuth()

	_, err := s.Register(context.Background(), models.RegisterUser{Username: "ja\x00ke", Email: "a@b.c", Password: "password123"})
	e := apperr.From(err)
	assert.Equal(t, []string{"is invalid"}, e.Fields["username"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newAuth()
	register(t, s, "jake")

	_, err := s.Register(context.Background(), models.RegisterUser{Username: "other", Email: "jake@conduit.io", Password: "password123"})
	e := apperr.From(err)
	assert.Equal(t, apperr.KindUnprocessable, e.Kind)
	assert.Equal(t, []string{"has already been taken"}, e.Fields["email"])
}

func TestLogin_Failures(t *testing.T) {
	s, _ := newAuth()
	register(t, s, "jake")
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginUser{Email: "jake@conduit.io", Password: "wrong-password"})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = s.Login(ctx, models.LoginUser{Email: "ghost@conduit.io", Password: "password123"})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	assert.Equal(t, "email or password is invalid", apperr.From(err).Message)
}

func TestCurrent_EchoesToken(t *testing.T) {
	s, _ := newAuth()
	id := register(t, s, "jake")
	id.Token = "presented"

	v, err := s.Current(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "presented", v.Token)

	_, err = s.Current(context.Background(), models.Identity{UserID: 999})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdate_PartialFields(t *testing.T) {
	s, store := newAuth()
	id := register(t, s, "jake")
	ctx := context.Background()
	oldHash := store.users[id.UserID].PasswordHash

	v, err := s.Update(ctx, id, models.UpdateUser{Bio: strPtr("I work at statefarm")})
	require.NoError(t, err)
	assert.Equal(t, "I work at statefarm", *v.Bio)
	assert.Equal(t, "jake", v.Username)
	assert.Equal(t, "jake@conduit.io", v.Email)
	assert.Equal(t, oldHash, store.users[id.UserID].PasswordHash)

	_, err = s.Update(ctx, id, models.UpdateUser{Password: strPtr("new-password")})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, store.users[id.UserID].PasswordHash)

	_, err = s.Login(ctx, models.LoginUser{Email: "jake@conduit.io", Password: "new-password"})
	assert.NoError(t, err)
}

func TestUpdate_ConflictAndEmpty(t *testing.T) {
	s, _ := newAuth()
	jake := register(t, s, "jake")
	register(t, s, "jane")
	ctx := context.Background()

	_, err := s.Update(ctx, jake, models.UpdateUser{Username: strPtr("jane")})
	assert.Equal(t, []string{"has already been taken"}, apperr.From(err).Fields["username"])

	_, err = s.Update(ctx, jake, models.UpdateUser{Username: strPtr("  ")})
	assert.Equal(t, []string{"can't be blank"}, apperr.From(err).Fields["username"])

	v, err := s.Update(ctx, jake, models.UpdateUser{})
	require.NoError(t, err)
	assert.Equal(t, "jake", v.Username)
}
