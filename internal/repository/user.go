package repository

import (
	"context"
	"fmt"
	"strings"

	"conduit/internal/logger"
	"conduit/internal/models"

	"go.uber.org/zap"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, bio, image, created_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	query := `
	INSERT INTO users (username, email, password_hash, bio, image)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Bio,
		user.Image,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return translate(err)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.Int64("id", id))
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по email (repo)", zap.String("email", email))
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateUser обновляет только переданные поля и возвращает итоговую запись.
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, in *models.UserChanges) (*models.User, error) {
	logger.Log.Info("Обновление пользователя (repo)", zap.Int64("id", id))

	fields := []string{}
	args := []interface{}{}
	i := 1

	add := func(column string, v *string) {
		if v == nil {
			return
		}
		fields = append(fields, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, *v)
		i++
	}
	add("email", in.Email)
	add("username", in.Username)
	add("password_hash", in.PasswordHash)
	add("bio", in.Bio)
	add("image", in.Image)

	if len(fields) == 0 {
		return r.GetUserByID(ctx, id)
	}

	fields = append(fields, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(fields, ", "), i, userColumns)
	args = append(args, id)

	var user models.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления пользователя (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, translate(err)
	}
	return &user, nil
}
