package services

import (
	"context"

	"conduit/internal/logger"
	"conduit/internal/models"

	"go.uber.org/zap"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, username string, viewerID *int64) (*models.Profile, error)
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
}

type ProfileService struct {
	repo ProfileRepo
}

func NewProfileService(repo ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, username string, viewer *models.Identity) (*models.Profile, error) {
	p, err := s.repo.GetProfile(ctx, username, viewerID(viewer))
	return p, storageErr(err, "profile not found")
}

// Follow идемпотентен: повторная подписка возвращает тот же профиль.
func (s *ProfileService) Follow(ctx context.Context, actor models.Identity, username string) (*models.Profile, error) {
	logger.WithCtx(ctx).Info("Подписка (service)", zap.String("username", username))
	return s.mutate(ctx, actor, username, "follow", s.repo.Follow)
}

// Unfollow без подписки ничего не делает и ошибкой не считается.
func (s *ProfileService) Unfollow(ctx context.Context, actor models.Identity, username string) (*models.Profile, error) {
	logger.WithCtx(ctx).Info("Отписка (service)", zap.String("username", username))
	return s.mutate(ctx, actor, username, "unfollow", s.repo.Unfollow)
}

func (s *ProfileService) mutate(
	ctx context.Context,
	actor models.Identity,
	username, action string,
	op func(ctx context.Context, followerID, followeeID int64) error,
) (*models.Profile, error) {
	target, err := s.Get(ctx, username, &actor)
	if err != nil {
		return nil, err
	}
	if err := AssertNotSelf(actor, target, action); err != nil {
		return nil, err
	}
	if err := op(ctx, actor.UserID, target.ID); err != nil {
		logger.WithCtx(ctx).Error("Ошибка изменения подписки", zap.String("action", action), zap.Error(err))
		return nil, storageErr(err, "profile not found")
	}
	return s.Get(ctx, username, &actor)
}
