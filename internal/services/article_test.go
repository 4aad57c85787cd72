package services

import (
	"context"
	"fmt"
	"testing"

	"conduit/internal/apperr"
	"conduit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type articleFixture struct {
	auth     *AuthService
	store    *memStore
	articles ArticleService
	jake     models.Identity
	jane     models.Identity
}

func newArticleFixture(t *testing.T) *articleFixture {
	auth, store := newAuth()
	return &articleFixture{
		auth:     auth,
		store:    store,
		articles: NewArticleService(store, NewValidator()),
		jake:     register(t, auth, "jake"),
		jane:     register(t, auth, "jane"),
	}
}

func (f *articleFixture) create(t *testing.T, actor models.Identity, title string, tags ...string) *models.Article {
	t.Helper()
	a, err := f.articles.Create(context.Background(), actor, models.CreateArticle{
		Title:       title,
		Description: "about " + title,
		Body:        "body of " + title,
		TagList:     tags,
	})
	require.NoError(t, err)
	return a
}

func TestCreateArticle_SlugAndTags(t *testing.T) {
	f := newArticleFixture(t)

	a := f.create(t, f.jake, "My Title", "go", " dragons ", "go", "")
	assert.Equal(t, "my-title", a.Slug)
	assert.Equal(t, []string{"dragons", "go"}, a.TagList)
	assert.Equal(t, "jake", a.Author.Username)
	assert.False(t, a.Favorited)
	assert.Zero(t, a.FavoritesCount)

	_, err := f.articles.Create(context.Background(), f.jane, models.CreateArticle{Title: "my title", Description: "d", Body: "b"})
	assert.Equal(t, []string{"has already been taken"}, apperr.From(err).Fields["slug"])
}

func TestCreateArticle_Validation(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	_, err := f.articles.Create(ctx, f.jake, models.CreateArticle{Title: " ", Description: "d", Body: "b"})
	assert.Equal(t, []string{"can't be blank"}, apperr.From(err).Fields["title"])

	_, err = f.articles.Create(ctx, f.jake, models.CreateArticle{Title: "???", Description: "d", Body: "b"})
	assert.Equal(t, []string{"is invalid"}, apperr.From(err).Fields["title"])

	_, err = f.articles.Create(ctx, f.jake, models.CreateArticle{Title: "Scripts", Description: "d", Body: "<script>alert(1)</script>"})
	assert.Equal(t, []string{"can't be blank"}, apperr.From(err).Fields["body"])
}

func TestCreateArticle_SanitizesBody(t *testing.T) {
	f := newArticleFixture(t)

	a, err := f.articles.Create(context.Background(), f.jake, models.CreateArticle{
		Title:       "Html",
		Description: "d",
		Body:        `<p onclick="x()">hi</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", a.Body)
}

func TestUpdateArticle(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()
	f.create(t, f.jake, "Old Title", "a", "b")

	a, err := f.articles.Update(ctx, f.jake, "old-title", models.UpdateArticle{Title: strPtr("New Title")})
	require.NoError(t, err)
	assert.Equal(t, "new-title", a.Slug)
	assert.Equal(t, []string{"a", "b"}, a.TagList, "без tagList теги не меняются")

	tags := []string{"c"}
	a, err = f.articles.Update(ctx, f.jake, "new-title", models.UpdateArticle{TagList: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, a.TagList)

	_, err = f.articles.Update(ctx, f.jane, "new-title", models.UpdateArticle{Body: strPtr("hijack")})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	assert.Equal(t, "not authorized to update this article", apperr.From(err).Message)

	_, err = f.articles.Update(ctx, f.jake, "old-title", models.UpdateArticle{Body: strPtr("x")})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateArticle_SlugCollision(t *testing.T) {
	f := newArticleFixture(t)
	f.create(t, f.jake, "First")
	f.create(t, f.jake, "Second")

	_, err := f.articles.Update(context.Background(), f.jake, "second", models.UpdateArticle{Title: strPtr("First")})
	assert.Equal(t, []string{"has already been taken"}, apperr.From(err).Fields["slug"])
}

func TestDeleteArticle_Ownership(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()
	f.create(t, f.jake, "Mine")

	err := f.articles.Delete(ctx, f.jane, "mine")
	assert.Equal(t, "not authorized to delete this article", apperr.From(err).Message)

	require.NoError(t, f.articles.Delete(ctx, f.jake, "mine"))

	_, err = f.articles.Get(ctx, "mine", nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestFavorite(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()
	f.create(t, f.jake, "My Title")

	a, err := f.articles.Favorite(ctx, f.jane, "my-title")
	require.NoError(t, err)
	assert.True(t, a.Favorited)
	assert.EqualValues(t, 1, a.FavoritesCount)

	anon, err := f.articles.Get(ctx, "my-title", nil)
	require.NoError(t, err)
	assert.False(t, anon.Favorited)
	assert.EqualValues(t, 1, anon.FavoritesCount)

	_, err = f.articles.Favorite(ctx, f.jane, "my-title")
	assert.Equal(t, "article already favorited", apperr.From(err).Message)

	a, err = f.articles.Unfavorite(ctx, f.jane, "my-title")
	require.NoError(t, err)
	assert.False(t, a.Favorited)
	assert.Zero(t, a.FavoritesCount)

	_, err = f.articles.Unfavorite(ctx, f.jane, "my-title")
	assert.NoError(t, err)
}

func TestListArticles_ClampsLimit(t *testing.T) {
	f := newArticleFixture(t)
	for i := 0; i < 105; i++ {
		f.create(t, f.jake, fmt.Sprintf("Post %d", i))
	}

	list, err := f.articles.List(context.Background(), models.ArticleFilter{Limit: 500}, nil)
	require.NoError(t, err)
	assert.Len(t, list, models.MaxLimit)

	list, err = f.articles.List(context.Background(), models.ArticleFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, list, models.DefaultLimit)
	assert.Equal(t, "post-104", list[0].Slug)
}

func TestFeed(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()
	f.create(t, f.jane, "Jane Post")
	f.create(t, f.jake, "Jake Post")

	list, err := f.articles.Feed(ctx, f.jake, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = NewProfileService(f.store).Follow(ctx, f.jake, "jane")
	require.NoError(t, err)

	list, err = f.articles.Feed(ctx, f.jake, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "jane-post", list[0].Slug)
	assert.True(t, list[0].Author.Following)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, normalizeTags(nil))
	assert.Equal(t, []string{"a", "b"}, normalizeTags([]string{"b", " a", "b ", " "}))
}
