package services

import (
	"context"
	"errors"
	"strings"

	"conduit/internal/apperr"
	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CommentRepo interface {
	ListComments(ctx context.Context, articleID int64, viewerID *int64) ([]*models.Comment, error)
	CreateComment(ctx context.Context, articleID, authorID int64, body string) (*models.Comment, error)
	GetComment(ctx context.Context, articleID, commentID int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// ArticleLookup: разрешение slug в статью.
type ArticleLookup interface {
	GetArticle(ctx context.Context, slug string, viewerID *int64) (*models.Article, error)
}

type CommentService struct {
	articles ArticleLookup
	repo     CommentRepo
	validate *Validator
	policy   *bluemonday.Policy
}

func NewCommentService(articles ArticleLookup, repo CommentRepo, v *Validator) *CommentService {
	return &CommentService{articles: articles, repo: repo, validate: v, policy: newBodyPolicy()}
}

func (s *CommentService) List(ctx context.Context, slug string, viewer *models.Identity) ([]*models.Comment, error) {
	a, err := s.article(ctx, slug)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListComments(ctx, a.ID, viewerID(viewer))
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения комментариев", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if list == nil {
		list = []*models.Comment{}
	}
	return list, nil
}

func (s *CommentService) Add(ctx context.Context, actor models.Identity, slug string, in models.CreateComment) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Добавление комментария (service)", zap.String("slug", slug))

	in.Body = strings.TrimSpace(in.Body)
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}
	body := strings.TrimSpace(s.policy.Sanitize(in.Body))
	if body == "" {
		return nil, apperr.Field("body", "can't be blank")
	}

	a, err := s.article(ctx, slug)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.CreateComment(ctx, a.ID, actor.UserID, body)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка создания комментария", zap.Error(err))
		}
		return nil, storageErr(err, "article not found")
	}
	return c, nil
}

// Delete удаляет комментарий; удалить может только автор.
func (s *CommentService) Delete(ctx context.Context, actor models.Identity, slug string, commentID int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление комментария (service)", zap.String("slug", slug), zap.Int64("comment_id", commentID))

	a, err := s.article(ctx, slug)
	if err != nil {
		return err
	}
	c, err := s.repo.GetComment(ctx, a.ID, commentID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка получения комментария", zap.Error(err))
		}
		return storageErr(err, "comment not found")
	}
	if err := AssertOwnsComment(actor, c); err != nil {
		return err
	}
	if err := s.repo.DeleteComment(ctx, c.ID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка удаления комментария", zap.Error(err))
		}
		return storageErr(err, "comment not found")
	}
	return nil
}

func (s *CommentService) article(ctx context.Context, slug string) (*models.Article, error) {
	a, err := s.articles.GetArticle(ctx, slug, nil)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("Ошибка получения статьи", zap.String("slug", slug), zap.Error(err))
		}
		return nil, storageErr(err, "article not found")
	}
	return a, nil
}
