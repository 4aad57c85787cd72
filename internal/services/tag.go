package services

import (
	"context"

	"conduit/internal/apperr"
	"conduit/internal/logger"

	"go.uber.org/zap"
)

type TagRepo interface {
	ListTags(ctx context.Context) ([]string, error)
}

type TagService struct{ repo TagRepo }

func NewTagService(r TagRepo) *TagService {
	return &TagService{repo: r}
}

// List: теги по убыванию частоты использования.
func (s *TagService) List(ctx context.Context) ([]string, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения тегов", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
