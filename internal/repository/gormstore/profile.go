package gormstore

import (
	"context"

	"conduit/internal/models"

	"gorm.io/gorm/clause"
)

func (s *Store) GetProfile(ctx context.Context, username string, viewerID *int64) (*models.Profile, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return nil, translate(err, "")
	}

	following := false
	if viewerID != nil {
		var n int64
		err := s.db.WithContext(ctx).Model(&followRow{}).
			Where("follower_id = ? AND followee_id = ?", *viewerID, row.ID).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		following = n > 0
	}

	p := row.toProfile(following)
	return &p, nil
}

func (s *Store) Follow(ctx context.Context, followerID, followeeID int64) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&followRow{FollowerID: followerID, FolloweeID: followeeID}).Error
	return translate(err, "follow")
}

func (s *Store) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	err := s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&followRow{}).Error
	return translate(err, "")
}
