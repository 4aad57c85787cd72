package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"conduit/internal/apperr"
	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/repository"
	"conduit/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleRepo interface {
	ListArticles(ctx context.Context, f models.ArticleFilter, viewerID *int64) ([]*models.Article, error)
	FeedArticles(ctx context.Context, viewerID int64, limit, offset int) ([]*models.Article, error)
	GetArticle(ctx context.Context, slug string, viewerID *int64) (*models.Article, error)
	CreateArticle(ctx context.Context, d *models.ArticleDraft) (int64, error)
	UpdateArticle(ctx context.Context, id int64, ch *models.ArticleChanges) error
	DeleteArticle(ctx context.Context, id int64) error
	Favorite(ctx context.Context, userID, articleID int64) error
	Unfavorite(ctx context.Context, userID, articleID int64) error
}

type ArticleService interface {
	List(ctx context.Context, f models.ArticleFilter, viewer *models.Identity) ([]*models.Article, error)
	Feed(ctx context.Context, actor models.Identity, limit, offset int) ([]*models.Article, error)
	Get(ctx context.Context, slug string, viewer *models.Identity) (*models.Article, error)
	Create(ctx context.Context, actor models.Identity, in models.CreateArticle) (*models.Article, error)
	Update(ctx context.Context, actor models.Identity, slug string, in models.UpdateArticle) (*models.Article, error)
	Delete(ctx context.Context, actor models.Identity, slug string) error
	Favorite(ctx context.Context, actor models.Identity, slug string) (*models.Article, error)
	Unfavorite(ctx context.Context, actor models.Identity, slug string) (*models.Article, error)
}

type articleService struct {
	repo     ArticleRepo
	validate *Validator
	policy   *bluemonday.Policy
}

func NewArticleService(repo ArticleRepo, v *Validator) ArticleService {
	return &articleService{repo: repo, validate: v, policy: newBodyPolicy()}
}

// newBodyPolicy: санитайзер для текстов статей и комментариев.
func newBodyPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}

func (s *articleService) List(ctx context.Context, f models.ArticleFilter, viewer *models.Identity) ([]*models.Article, error) {
	f.Limit, f.Offset = models.NormalizePage(f.Limit, f.Offset)
	logger.WithCtx(ctx).Debug("Список статей (service)",
		zap.String("tag", f.Tag),
		zap.String("author", f.Author),
		zap.String("favorited", f.Favorited),
		zap.Int("limit", f.Limit),
		zap.Int("offset", f.Offset),
	)

	list, err := s.repo.ListArticles(ctx, f, viewerID(viewer))
	return s.page(ctx, list, err)
}

func (s *articleService) Feed(ctx context.Context, actor models.Identity, limit, offset int) ([]*models.Article, error) {
	limit, offset = models.NormalizePage(limit, offset)
	list, err := s.repo.FeedArticles(ctx, actor.UserID, limit, offset)
	return s.page(ctx, list, err)
}

func (s *articleService) page(ctx context.Context, list []*models.Article, err error) ([]*models.Article, error) {
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка статей", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if list == nil {
		list = []*models.Article{}
	}
	return list, nil
}

func (s *articleService) Get(ctx context.Context, slug string, viewer *models.Identity) (*models.Article, error) {
	a, err := s.repo.GetArticle(ctx, slug, viewerID(viewer))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("Ошибка получения статьи", zap.String("slug", slug), zap.Error(err))
		}
		return nil, storageErr(err, "article not found")
	}
	return a, nil
}

func (s *articleService) Create(ctx context.Context, actor models.Identity, in models.CreateArticle) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Body = strings.TrimSpace(in.Body)
	log.Info("Создание статьи (service)", zap.String("title", in.Title), zap.Int("tags_count", len(in.TagList)))

	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	slug := utils.Slugify(in.Title)
	if slug == "" {
		return nil, apperr.Field("title", "is invalid")
	}
	body, err := s.sanitize(in.Body)
	if err != nil {
		return nil, err
	}

	draft := &models.ArticleDraft{
		AuthorID:    actor.UserID,
		Slug:        slug,
		Title:       in.Title,
		Description: in.Description,
		Body:        body,
		TagList:     normalizeTags(in.TagList),
	}
	id, err := s.repo.CreateArticle(ctx, draft)
	if err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) {
			log.Error("Ошибка создания статьи", zap.Error(err))
		}
		return nil, storageErr(err, "article not found")
	}

	log.Info("Статья создана (service)", zap.Int64("id", id), zap.String("slug", slug))
	return s.Get(ctx, slug, &actor)
}

// Update меняет переданные поля; новый заголовок даёт новый slug, tagList заменяет теги целиком.
func (s *articleService) Update(ctx context.Context, actor models.Identity, slug string, in models.UpdateArticle) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи (service)", zap.String("slug", slug))

	a, err := s.Get(ctx, slug, &actor)
	if err != nil {
		return nil, err
	}
	if err := AssertOwnsArticle(actor, a, "update"); err != nil {
		log.Warn("Попытка изменить чужую статью", zap.Int64("author_id", a.Author.ID))
		return nil, err
	}

	in.Title = trimPtr(in.Title)
	in.Description = trimPtr(in.Description)
	in.Body = trimPtr(in.Body)
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	ch := &models.ArticleChanges{Title: in.Title, Description: in.Description}
	if in.Title != nil {
		newSlug := utils.Slugify(*in.Title)
		if newSlug == "" {
			return nil, apperr.Field("title", "is invalid")
		}
		if newSlug != a.Slug {
			ch.Slug = &newSlug
		}
	}
	if in.Body != nil {
		body, err := s.sanitize(*in.Body)
		if err != nil {
			return nil, err
		}
		ch.Body = &body
	}
	if in.TagList != nil {
		tags := normalizeTags(*in.TagList)
		ch.TagList = &tags
	}
	if ch.Title == nil && ch.Description == nil && ch.Body == nil && ch.TagList == nil {
		return a, nil
	}

	if err := s.repo.UpdateArticle(ctx, a.ID, ch); err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) && !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка обновления статьи", zap.Error(err))
		}
		return nil, storageErr(err, "article not found")
	}

	if ch.Slug != nil {
		slug = *ch.Slug
	}
	return s.Get(ctx, slug, &actor)
}

func (s *articleService) Delete(ctx context.Context, actor models.Identity, slug string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи (service)", zap.String("slug", slug))

	a, err := s.Get(ctx, slug, &actor)
	if err != nil {
		return err
	}
	if err := AssertOwnsArticle(actor, a, "delete"); err != nil {
		log.Warn("Попытка удалить чужую статью", zap.Int64("author_id", a.Author.ID))
		return err
	}
	if err := s.repo.DeleteArticle(ctx, a.ID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка удаления статьи", zap.Error(err))
		}
		return storageErr(err, "article not found")
	}
	return nil
}

// Favorite: повторное добавление в избранное даёт 422, его ловит ограничение уникальности.
func (s *articleService) Favorite(ctx context.Context, actor models.Identity, slug string) (*models.Article, error) {
	a, err := s.Get(ctx, slug, &actor)
	if err != nil {
		return nil, err
	}
	err = s.repo.Favorite(ctx, actor.UserID, a.ID)
	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		return nil, apperr.Unprocessable("article already favorited")
	case err != nil:
		logger.WithCtx(ctx).Error("Ошибка добавления в избранное", zap.Error(err))
		return nil, storageErr(err, "article not found")
	}
	return s.Get(ctx, slug, &actor)
}

// Unfavorite идемпотентен.
func (s *articleService) Unfavorite(ctx context.Context, actor models.Identity, slug string) (*models.Article, error) {
	a, err := s.Get(ctx, slug, &actor)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Unfavorite(ctx, actor.UserID, a.ID); err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления из избранного", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, slug, &actor)
}

func (s *articleService) sanitize(body string) (string, error) {
	clean := strings.TrimSpace(s.policy.Sanitize(body))
	if clean == "" {
		return "", apperr.Field("body", "can't be blank")
	}
	return clean, nil
}

// normalizeTags: без пробелов по краям, без пустых и повторов, по алфавиту.
func normalizeTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
