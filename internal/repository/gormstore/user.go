package gormstore

import (
	"context"
	"time"

	"conduit/internal/models"
	"conduit/internal/repository"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	row := userRow{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Bio:          user.Bio,
		Image:        user.Image,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicate(err) {
			return &repository.ConflictError{Field: s.takenUserField(ctx, row.Email, 0), Err: err}
		}
		return err
	}
	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

// takenUserField определяет, какое уникальное поле пользователя занято.
// Текст ошибки драйвера для этого не годится: gorm может его перевести.
func (s *Store) takenUserField(ctx context.Context, email string, exceptID int64) string {
	var n int64
	s.db.WithContext(ctx).Model(&userRow{}).Where("email = ? AND id <> ?", email, exceptID).Count(&n)
	if n > 0 {
		return "email"
	}
	return "username"
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return row.toModel(), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, translate(err, "")
	}
	return row.toModel(), nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, in *models.UserChanges) (*models.User, error) {
	updates := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("email", in.Email)
	set("username", in.Username)
	set("password_hash", in.PasswordHash)
	set("bio", in.Bio)
	set("image", in.Image)

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		res := s.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			if isDuplicate(res.Error) {
				email := ""
				if in.Email != nil {
					email = *in.Email
				}
				return nil, &repository.ConflictError{Field: s.takenUserField(ctx, email, id), Err: res.Error}
			}
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
	}
	return s.GetUserByID(ctx, id)
}

func (r *userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Bio:          r.Bio,
		Image:        r.Image,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *userRow) toProfile(following bool) models.Profile {
	return models.Profile{
		ID:        r.ID,
		Username:  r.Username,
		Bio:       r.Bio,
		Image:     r.Image,
		Following: following,
	}
}
