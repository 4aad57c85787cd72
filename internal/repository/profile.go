package repository

import (
	"context"

	"conduit/internal/logger"
	"conduit/internal/models"

	"go.uber.org/zap"
)

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile: профиль по username; following считается относительно viewerID (nil для анонима).
func (r *ProfileRepository) GetProfile(ctx context.Context, username string, viewerID *int64) (*models.Profile, error) {
	logger.Log.Debug("Получение профиля (repo)", zap.String("username", username))
	const q = `
		SELECT u.id, u.username, u.bio, u.image,
		       EXISTS (SELECT 1 FROM follows f WHERE f.followee_id = u.id AND f.follower_id = $2)
		FROM users u
		WHERE u.username = $1
	`
	var p models.Profile
	if err := r.db.QueryRow(ctx, q, username, viewerID).Scan(
		&p.ID, &p.Username, &p.Bio, &p.Image, &p.Following,
	); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Follow идемпотентен: повторная подписка не ошибка.
func (r *ProfileRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	logger.Log.Info("Подписка (repo)", zap.Int64("follower_id", followerID), zap.Int64("followee_id", followeeID))
	const q = `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, q, followerID, followeeID)
	return translate(err)
}

func (r *ProfileRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	logger.Log.Info("Отписка (repo)", zap.Int64("follower_id", followerID), zap.Int64("followee_id", followeeID))
	_, err := r.db.Exec(ctx, `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`, followerID, followeeID)
	return translate(err)
}
