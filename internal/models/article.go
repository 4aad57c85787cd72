package models

import "time"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Article: проекция статьи относительно зрителя (favorited, author.following).
type Article struct {
	ID             int64     `json:"-"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int64     `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleDraft: новая статья, готовая к записи.
type ArticleDraft struct {
	AuthorID    int64
	Slug        string
	Title       string
	Description string
	Body        string
	TagList     []string
}

// ArticleChanges: частичное обновление; TagList != nil заменяет набор тегов целиком.
type ArticleChanges struct {
	Slug        *string
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

type ArticleFilter struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

// NormalizePage применяет дефолты и верхнюю границу limit.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// swagger:model CreateArticle
type CreateArticle struct {
	Title       string   `json:"title"       validate:"required,max=255" example:"How to train your dragon"`
	Description string   `json:"description" validate:"required"         example:"Ever wonder how?"`
	Body        string   `json:"body"        validate:"required"         example:"You have to believe"`
	TagList     []string `json:"tagList"                                 example:"dragons,training"`
}

type CreateArticleRequest struct {
	Article CreateArticle `json:"article"`
}

// swagger:model UpdateArticle
type UpdateArticle struct {
	Title       *string   `json:"title,omitempty"       validate:"omitnil,min=1,max=255"`
	Description *string   `json:"description,omitempty" validate:"omitnil,min=1"`
	Body        *string   `json:"body,omitempty"        validate:"omitnil,min=1"`
	TagList     *[]string `json:"tagList,omitempty"`
}

type UpdateArticleRequest struct {
	Article UpdateArticle `json:"article"`
}

type ArticleResponse struct {
	Article *Article `json:"article"`
}

type ArticlesResponse struct {
	Articles      []*Article `json:"articles"`
	ArticlesCount int        `json:"articlesCount"`
}
